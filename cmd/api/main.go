package main

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"

	interactiondb "github.com/vidloom/vidloom/cmd/interaction/dal/db"
	relationdb "github.com/vidloom/vidloom/cmd/relation/dal/db"
	userdb "github.com/vidloom/vidloom/cmd/user/dal/db"
	videodb "github.com/vidloom/vidloom/cmd/video/dal/db"
	"github.com/vidloom/vidloom/config"
	"github.com/vidloom/vidloom/pkg/cache"
	"github.com/vidloom/vidloom/pkg/errno"
	"github.com/vidloom/vidloom/pkg/jwt"
	"github.com/vidloom/vidloom/pkg/mq"
	"github.com/vidloom/vidloom/pkg/oss"
	"github.com/vidloom/vidloom/pkg/utils"
)

func Init() {
	config.Init()
	userdb.Init()
	videodb.Init()
	interactiondb.Init()
	relationdb.Init()
	cache.Init()
	oss.Init()
	jwt.Init()
}

func main() {
	Init()

	producer, err := mq.NewProducer(utils.GetRabbitMqURL())
	if err != nil {
		panic(err)
	}
	defer producer.Close()

	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(4*1024*1024*1024),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("internal error: %v", err),
			})
		})))

	register(r, producer)

	r.Spin()
}
