package service

import (
	"context"

	interactiondb "github.com/vidloom/vidloom/cmd/interaction/dal/db"
	"github.com/vidloom/vidloom/cmd/model"
	userdb "github.com/vidloom/vidloom/cmd/user/dal/db"
	videodb "github.com/vidloom/vidloom/cmd/video/dal/db"
)

type AdminStatsService struct {
	ctx context.Context
}

func NewAdminStatsService(ctx context.Context) *AdminStatsService {
	return &AdminStatsService{ctx: ctx}
}

type DashboardStats struct {
	TotalUsers    int64          `json:"total_users"`
	TotalVideos   int64          `json:"total_videos"`
	TotalComments int64          `json:"total_comments"`
	RecentUsers   []*model.User  `json:"recent_users"`
	RecentVideos  []*model.Video `json:"recent_videos"`
	TopChannels   []*model.User  `json:"top_channels"`
}

const (
	recentLimit      = 5
	topChannelsLimit = 10
)

// Stats assembles the admin dashboard: collection totals plus the newest
// accounts and uploads and the biggest channels by subscriber count.
func (s *AdminStatsService) Stats(ctx context.Context) (*DashboardStats, error) {
	totalUsers, err := userdb.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	totalVideos, err := videodb.CountVideos(ctx)
	if err != nil {
		return nil, err
	}
	totalComments, err := interactiondb.CountComments(ctx)
	if err != nil {
		return nil, err
	}
	recentUsers, err := userdb.RecentUsers(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	recentVideos, err := videodb.RecentVideos(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	topChannels, err := userdb.TopChannels(ctx, topChannelsLimit)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalUsers:    totalUsers,
		TotalVideos:   totalVideos,
		TotalComments: totalComments,
		RecentUsers:   recentUsers,
		RecentVideos:  recentVideos,
		TopChannels:   topChannels,
	}, nil
}
