package main

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	adminhandlers "github.com/vidloom/vidloom/cmd/api/handlers/admin"
	channelhandlers "github.com/vidloom/vidloom/cmd/api/handlers/channel"
	interactionhandlers "github.com/vidloom/vidloom/cmd/api/handlers/interaction"
	relationhandlers "github.com/vidloom/vidloom/cmd/api/handlers/relation"
	userhandlers "github.com/vidloom/vidloom/cmd/api/handlers/user"
	videohandlers "github.com/vidloom/vidloom/cmd/api/handlers/video"
	"github.com/vidloom/vidloom/pkg/jwt"
	"github.com/vidloom/vidloom/pkg/mq"
)

func register(r *server.Hertz, producer *mq.Producer) {
	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", userhandlers.Register)
		auth.POST("/login", jwt.AuthMiddleware.LoginHandler)
		auth.POST("/refresh", jwt.AuthMiddleware.RefreshHandler)
	}

	users := v1.Group("/users")
	{
		users.GET("/me", jwt.AuthMiddleware.MiddlewareFunc(), userhandlers.GetUserInfo)
		users.PUT("/me/channel", jwt.AuthMiddleware.MiddlewareFunc(), userhandlers.UpdateChannel)
		users.GET("/:user_id", userhandlers.GetUserById)
	}

	videos := v1.Group("/videos")
	{
		videos.GET("", jwt.OptionalAuth(), videohandlers.Feed)
		videos.POST("", jwt.AuthMiddleware.MiddlewareFunc(), videohandlers.UploadVideo(producer))
		videos.GET("/mine", jwt.AuthMiddleware.MiddlewareFunc(), videohandlers.MyVideos)
		videos.GET("/:video_id", jwt.OptionalAuth(), videohandlers.GetVideo)
		videos.PUT("/:video_id", jwt.AuthMiddleware.MiddlewareFunc(), videohandlers.UpdateVideo)
		videos.DELETE("/:video_id", jwt.AuthMiddleware.MiddlewareFunc(), videohandlers.DeleteVideo)
		videos.POST("/:video_id/view", jwt.OptionalAuth(), videohandlers.RecordView)
		videos.POST("/:video_id/like", jwt.AuthMiddleware.MiddlewareFunc(), interactionhandlers.LikeVideo)
		videos.GET("/:video_id/like", jwt.AuthMiddleware.MiddlewareFunc(), interactionhandlers.VideoLikeStatus)
		videos.GET("/:video_id/comments", jwt.OptionalAuth(), interactionhandlers.ListComments)
		videos.POST("/:video_id/comments", jwt.AuthMiddleware.MiddlewareFunc(), interactionhandlers.CreateComment)
	}

	comments := v1.Group("/comments")
	{
		comments.PUT("/:comment_id", jwt.AuthMiddleware.MiddlewareFunc(), interactionhandlers.EditComment)
		comments.DELETE("/:comment_id", jwt.AuthMiddleware.MiddlewareFunc(), interactionhandlers.DeleteComment)
		comments.POST("/:comment_id/like", jwt.AuthMiddleware.MiddlewareFunc(), interactionhandlers.LikeComment)
	}

	me := v1.Group("/me", jwt.AuthMiddleware.MiddlewareFunc())
	{
		me.GET("/likes", interactionhandlers.LikedVideos)
		me.GET("/subscriptions", relationhandlers.Subscriptions)
		me.GET("/history", channelhandlers.WatchHistory)
	}

	channels := v1.Group("/channels")
	{
		channels.GET("/:channel_id", channelhandlers.Summary)
		channels.GET("/:channel_id/subscribers", relationhandlers.Subscribers)
		channels.POST("/:channel_id/subscribe", jwt.AuthMiddleware.MiddlewareFunc(), relationhandlers.Subscribe)
		channels.GET("/:channel_id/subscription", jwt.AuthMiddleware.MiddlewareFunc(), relationhandlers.IsSubscribed)
	}

	admin := v1.Group("/admin", jwt.AuthMiddleware.MiddlewareFunc(), jwt.RequireAdmin())
	{
		admin.GET("/stats", adminhandlers.Stats)
		admin.GET("/users", adminhandlers.ListUsers(producer))
		admin.PUT("/users/:user_id/role", adminhandlers.UpdateUserRole(producer))
		admin.DELETE("/users/:user_id", adminhandlers.DeleteUser(producer))
		admin.GET("/videos", adminhandlers.ListVideos)
		admin.POST("/channels/:channel_id/reconcile", relationhandlers.Reconcile)
	}
}
