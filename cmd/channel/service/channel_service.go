package service

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vidloom/vidloom/cmd/model"
	userdb "github.com/vidloom/vidloom/cmd/user/dal/db"
	videodb "github.com/vidloom/vidloom/cmd/video/dal/db"
	"github.com/vidloom/vidloom/pkg/errno"
)

type ChannelService struct {
	ctx context.Context
}

func NewChannelService(ctx context.Context) *ChannelService {
	return &ChannelService{ctx: ctx}
}

type ChannelSummary struct {
	UserId          int64          `json:"user_id"`
	UserName        string         `json:"user_name"`
	AvatarUrl       string         `json:"avatar_url"`
	ChannelName     string         `json:"channel_name"`
	Description     string         `json:"channel_description"`
	Banner          string         `json:"channel_banner"`
	SubscriberCount int64          `json:"subscriber_count"`
	Videos          []*model.Video `json:"videos"`
	TotalVideos     int64          `json:"total_videos"`
	TotalViews      int64          `json:"total_views"`
}

// Summary builds the channel page: profile, the owner's completed public
// videos, and totals. TotalViews is summed from the live per-video counters
// on every call so it always reflects the current view counts.
func (s *ChannelService) Summary(ctx context.Context, channelId int64) (*ChannelSummary, error) {
	user, err := userdb.GetUserById(ctx, channelId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("channel not found")
		}
		return nil, err
	}

	videos, err := videodb.GetChannelVideos(ctx, channelId)
	if err != nil {
		return nil, err
	}

	var totalViews int64
	for _, v := range videos {
		totalViews += v.Views
	}

	return &ChannelSummary{
		UserId:          user.UserId,
		UserName:        user.UserName,
		AvatarUrl:       user.AvatarUrl,
		ChannelName:     user.ChannelName,
		Description:     user.ChannelDescription,
		Banner:          user.ChannelBanner,
		SubscriberCount: user.SubscriberCount,
		Videos:          videos,
		TotalVideos:     int64(len(videos)),
		TotalViews:      totalViews,
	}, nil
}
