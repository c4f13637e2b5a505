package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	interactiondb "github.com/vidloom/vidloom/cmd/interaction/dal/db"
	"github.com/vidloom/vidloom/cmd/processor/service"
	relationdb "github.com/vidloom/vidloom/cmd/relation/dal/db"
	videodb "github.com/vidloom/vidloom/cmd/video/dal/db"
	"github.com/vidloom/vidloom/config"
	"github.com/vidloom/vidloom/pkg/cache"
	"github.com/vidloom/vidloom/pkg/mq"
	"github.com/vidloom/vidloom/pkg/oss"
	"github.com/vidloom/vidloom/pkg/utils"
)

func Init() {
	config.Init()
	videodb.Init()
	interactiondb.Init()
	relationdb.Init()
	cache.Init()
	oss.Init()
}

func main() {
	Init()

	consumer, err := mq.NewConsumer(utils.GetRabbitMqURL())
	if err != nil {
		panic(err)
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.ConsumeUploadEvents(ctx, service.NewPipelineWorker()); err != nil {
		panic(err)
	}
	if err := consumer.ConsumeCascadeEvents(ctx, service.NewCascadeWorker()); err != nil {
		panic(err)
	}
	hlog.Info("processor started, waiting for events")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	hlog.Info("processor shutting down")
	cancel()
}
