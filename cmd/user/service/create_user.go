package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/vidloom/vidloom/cmd/model"
	"github.com/vidloom/vidloom/cmd/user/dal/db"
	"github.com/vidloom/vidloom/pkg/constants"
	"github.com/vidloom/vidloom/pkg/errno"
	"github.com/vidloom/vidloom/pkg/utils"
)

type CreateUserService struct {
	ctx context.Context
}

func NewCreateUserService(ctx context.Context) *CreateUserService {
	return &CreateUserService{ctx: ctx}
}

type RegisterParams struct {
	UserName string
	Email    string
	Password string
}

func (s *CreateUserService) validate(params *RegisterParams) error {
	name := strings.TrimSpace(params.UserName)
	if l := utf8.RuneCountInString(name); l < 3 || l > 30 {
		return errno.ValidationErr.WithMessage("username must be 3-30 characters")
	}
	email := strings.ToLower(strings.TrimSpace(params.Email))
	if email == "" || !strings.Contains(email, "@") {
		return errno.ValidationErr.WithMessage("a valid email is required")
	}
	if len(params.Password) < 6 {
		return errno.ValidationErr.WithMessage("password must be at least 6 characters")
	}
	return nil
}

// CreateUser registers an account. The channel name defaults to the
// username, matching what the channel page shows before any customization.
func (s *CreateUserService) CreateUser(ctx context.Context, params *RegisterParams) (*model.User, error) {
	if err := s.validate(params); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(params.UserName)
	email := strings.ToLower(strings.TrimSpace(params.Email))

	exists, err := db.CheckUserExists(ctx, name, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errno.InvalidOperationErr.WithMessage("username or email already taken")
	}

	hash, err := utils.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserId:      utils.GenerateID(),
		UserName:    name,
		Email:       email,
		Password:    hash,
		Role:        constants.RoleUser,
		ChannelName: name,
	}
	if err := db.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
