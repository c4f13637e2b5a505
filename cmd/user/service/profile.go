package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vidloom/vidloom/cmd/model"
	"github.com/vidloom/vidloom/cmd/user/dal/db"
	"github.com/vidloom/vidloom/pkg/constants"
	"github.com/vidloom/vidloom/pkg/errno"
)

type ProfileService struct {
	ctx context.Context
}

func NewProfileService(ctx context.Context) *ProfileService {
	return &ProfileService{ctx: ctx}
}

func (s *ProfileService) GetUserInfo(ctx context.Context, userId int64) (*model.User, error) {
	user, err := db.GetUserById(ctx, userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("user not found")
		}
		return nil, err
	}
	return user, nil
}

type ChannelProfileParams struct {
	ChannelName        *string
	ChannelDescription *string
	ChannelBanner      *string
	AvatarUrl          *string
}

// UpdateChannelProfile edits the caller's own channel presentation fields.
func (s *ProfileService) UpdateChannelProfile(ctx context.Context, userId int64, params *ChannelProfileParams) (*model.User, error) {
	fields := make(map[string]interface{})
	if params.ChannelName != nil {
		name := strings.TrimSpace(*params.ChannelName)
		if name == "" || utf8.RuneCountInString(name) > constants.MaxChannelNameLen {
			return nil, errno.ValidationErr.WithMessage("channel name must be 1-50 characters")
		}
		fields["channel_name"] = name
	}
	if params.ChannelDescription != nil {
		fields["channel_description"] = strings.TrimSpace(*params.ChannelDescription)
	}
	if params.ChannelBanner != nil {
		fields["channel_banner"] = *params.ChannelBanner
	}
	if params.AvatarUrl != nil {
		fields["avatar_url"] = *params.AvatarUrl
	}

	if len(fields) > 0 {
		if err := db.UpdateChannelProfile(ctx, userId, fields); err != nil {
			return nil, err
		}
	}
	return s.GetUserInfo(ctx, userId)
}
