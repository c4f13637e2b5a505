package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vidloom/vidloom/cmd/model"
	userdb "github.com/vidloom/vidloom/cmd/user/dal/db"
	"github.com/vidloom/vidloom/pkg/constants"
	"github.com/vidloom/vidloom/pkg/errno"
	"github.com/vidloom/vidloom/pkg/mq"
	"github.com/vidloom/vidloom/pkg/utils"
	"gorm.io/gorm"
)

type AdminUserService struct {
	ctx      context.Context
	producer *mq.Producer
}

func NewAdminUserService(ctx context.Context, producer *mq.Producer) *AdminUserService {
	return &AdminUserService{ctx: ctx, producer: producer}
}

func (s *AdminUserService) List(ctx context.Context, keyword, role string, page, pageSize int64) ([]*model.User, model.Pagination, error) {
	page, pageSize = utils.NormalizePage(page, pageSize)
	users, total, err := userdb.QueryUsers(ctx, keyword, role, page, pageSize)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	return users, model.NewPagination(page, pageSize, total), nil
}

// UpdateRole promotes or demotes an account. An admin may not change
// their own role, which keeps the system from losing its last admin
// by accident.
func (s *AdminUserService) UpdateRole(ctx context.Context, adminId, userId int64, role string) (*model.User, error) {
	if role != constants.RoleUser && role != constants.RoleAdmin {
		return nil, errno.ValidationErr.WithMessage("role must be user or admin")
	}
	if adminId == userId {
		return nil, errno.InvalidOperationErr.WithMessage("cannot change your own role")
	}
	if err := userdb.UpdateUserRole(ctx, userId, role); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errno.NotFoundErr.WithMessage("user not found")
		}
		return nil, err
	}
	return userdb.GetUserById(ctx, userId)
}

// Delete removes the account row and hands the rest to the cascade
// worker. Videos, comments, likes, subscriptions and watch history are
// cleaned up asynchronously, so reads may briefly see orphaned content.
func (s *AdminUserService) Delete(ctx context.Context, adminId, userId int64) error {
	if adminId == userId {
		return errno.InvalidOperationErr.WithMessage("cannot delete your own account")
	}
	target, err := userdb.GetUserById(ctx, userId)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errno.NotFoundErr.WithMessage("user not found")
		}
		return err
	}
	if target.IsAdmin() {
		return errno.ForbiddenErr.WithMessage("cannot delete another admin")
	}
	if err := userdb.DeleteUser(ctx, userId); err != nil {
		return err
	}

	s.producer.PublishCascadeEvent(ctx, &mq.CascadeEvent{
		UserID:    userId,
		DeletedBy: adminId,
		Timestamp: time.Now().Unix(),
		EventID:   uuid.NewString(),
	})
	logrus.WithFields(logrus.Fields{
		"user_id":    userId,
		"deleted_by": adminId,
	}).Info("user deleted, cascade scheduled")
	return nil
}
