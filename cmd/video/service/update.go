package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vidloom/vidloom/cmd/model"
	"github.com/vidloom/vidloom/cmd/video/dal/db"
	"github.com/vidloom/vidloom/pkg/errno"
)

type VideoUpdateService struct {
	ctx context.Context
}

func NewVideoUpdateService(ctx context.Context) *VideoUpdateService {
	return &VideoUpdateService{ctx: ctx}
}

type UpdateParams struct {
	Title       *string
	Description *string
	Category    *string
	Tags        *string
	IsPublic    *bool
}

// Update is owner-only and touches only the author-editable fields; the
// owner and the media locator are immutable after intake.
func (s *VideoUpdateService) Update(ctx context.Context, videoId, actorId int64, params *UpdateParams) (*model.Video, error) {
	video, err := db.GetVideo(ctx, videoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("video not found")
		}
		return nil, err
	}
	if video.UserId != actorId {
		return nil, errno.ForbiddenErr.WithMessage("only the uploader can edit this video")
	}

	fields := make(map[string]interface{})
	if params.Title != nil {
		if err := validateTitle(*params.Title); err != nil {
			return nil, err
		}
		fields["title"] = strings.TrimSpace(*params.Title)
	}
	if params.Description != nil {
		if err := validateDescription(*params.Description); err != nil {
			return nil, err
		}
		fields["description"] = strings.TrimSpace(*params.Description)
	}
	if params.Category != nil {
		category, err := validateCategory(*params.Category)
		if err != nil {
			return nil, err
		}
		fields["category"] = category
	}
	if params.Tags != nil {
		tags, err := NormalizeTags(*params.Tags)
		if err != nil {
			return nil, err
		}
		fields["tags"] = strings.Join(tags, ",")
	}
	if params.IsPublic != nil {
		fields["is_public"] = *params.IsPublic
	}

	if len(fields) == 0 {
		return video, nil
	}
	if err := db.UpdateVideoInfo(ctx, videoId, fields); err != nil {
		return nil, err
	}
	return db.GetVideo(ctx, videoId)
}
