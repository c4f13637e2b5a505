package service

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vidloom/vidloom/cmd/model"
	"github.com/vidloom/vidloom/cmd/user/dal/db"
	"github.com/vidloom/vidloom/pkg/errno"
	"github.com/vidloom/vidloom/pkg/utils"
)

type LoginUserService struct {
	ctx context.Context
}

func NewLoginUserService(ctx context.Context) *LoginUserService {
	return &LoginUserService{ctx: ctx}
}

// LoginUser checks credentials and returns the account. The same error is
// returned for an unknown username and a bad password.
func (s *LoginUserService) LoginUser(ctx context.Context, userName, password string) (*model.User, error) {
	user, err := db.GetUserByName(ctx, userName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.ForbiddenErr.WithMessage("invalid username or password")
		}
		return nil, err
	}
	if !utils.VerifyPassword(user.Password, password) {
		return nil, errno.ForbiddenErr.WithMessage("invalid username or password")
	}
	return user, nil
}
