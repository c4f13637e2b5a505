package jwt

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/jwt"

	"github.com/vidloom/vidloom/cmd/model"
	userservice "github.com/vidloom/vidloom/cmd/user/service"
	"github.com/vidloom/vidloom/config"
	"github.com/vidloom/vidloom/pkg/constants"
	"github.com/vidloom/vidloom/pkg/errno"
)

const (
	IdentityKey = "user_id"
	RoleKey     = "role"

	loginUserKey = "login_user"
)

var AuthMiddleware *jwt.HertzJWTMiddleware

type loginParam struct {
	UserName string `json:"user_name" form:"user_name"`
	Password string `json:"password" form:"password"`
}

func Init() {
	var err error
	AuthMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:       "vidloom",
		Key:         []byte(config.ConfigInfo.Jwt.Secret),
		Timeout:     24 * time.Hour,
		MaxRefresh:  24 * time.Hour,
		IdentityKey: IdentityKey,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if user, ok := data.(*model.User); ok {
				return jwt.MapClaims{
					IdentityKey: user.UserId,
					RoleKey:     user.Role,
				}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			role, _ := claims[RoleKey].(string)
			c.Set(RoleKey, role)
			// numeric claims round-trip through JSON as float64
			id, _ := claims[IdentityKey].(float64)
			return int64(id)
		},
		Authenticator: func(ctx context.Context, c *app.RequestContext) (interface{}, error) {
			var param loginParam
			if err := c.Bind(&param); err != nil {
				return nil, errno.ParamErr
			}
			user, err := userservice.NewLoginUserService(ctx).LoginUser(ctx, param.UserName, param.Password)
			if err != nil {
				return nil, err
			}
			c.Set(loginUserKey, user)
			return user, nil
		},
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			data := map[string]interface{}{
				"token":  token,
				"expire": expire.Format(time.RFC3339),
			}
			if v, ok := c.Get(loginUserKey); ok {
				data["user"] = v
			}
			c.JSON(consts.StatusOK, map[string]interface{}{
				"code":    errno.SuccessCode,
				"message": "success",
				"data":    data,
			})
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(code, map[string]interface{}{
				"code":    errno.TokenInvalidErrCode,
				"message": message,
			})
		},
		TokenLookup:   "header: Authorization, query: token",
		TokenHeadName: "Bearer",
		TimeFunc:      time.Now,
	})
	if err != nil {
		panic(err)
	}
}

// OptionalAuth resolves the caller's identity when a valid token is
// attached but lets anonymous requests through. Public listing and
// detail routes use it so visibility checks know the viewer.
func OptionalAuth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		claims, err := AuthMiddleware.GetClaimsFromJWT(ctx, c)
		if err == nil {
			if id, ok := claims[IdentityKey].(float64); ok {
				c.Set(IdentityKey, int64(id))
			}
			if role, ok := claims[RoleKey].(string); ok {
				c.Set(RoleKey, role)
			}
		}
		c.Next(ctx)
	}
}

// GetUserId returns the authenticated user id, or 0 for anonymous callers.
func GetUserId(c *app.RequestContext) int64 {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}

func IsAdmin(c *app.RequestContext) bool {
	v, ok := c.Get(RoleKey)
	if !ok {
		return false
	}
	role, _ := v.(string)
	return role == constants.RoleAdmin
}

// RequireAdmin sits behind the auth middleware and rejects non-admins.
func RequireAdmin() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if !IsAdmin(c) {
			c.JSON(consts.StatusOK, map[string]interface{}{
				"code":    errno.ForbiddenErrCode,
				"message": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next(ctx)
	}
}
