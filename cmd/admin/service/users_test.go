package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/vidloom/vidloom/cmd/model"
	userdb "github.com/vidloom/vidloom/cmd/user/dal/db"
	"github.com/vidloom/vidloom/config"
	"github.com/vidloom/vidloom/pkg/constants"
	"github.com/vidloom/vidloom/pkg/utils"
)

func TestAdminUserListNormalizesPaging(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	config.Init()
	userdb.Init()
	ctx := context.Background()

	id := utils.GenerateID()
	user := &model.User{
		UserId:   id,
		UserName: fmt.Sprintf("listed-%d", id),
		Email:    fmt.Sprintf("listed-%d@test.local", id),
	}
	if err := userdb.DB.Create(user).Error; err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		userdb.DB.Where("user_id = ?", id).Delete(&model.User{})
	})

	svc := NewAdminUserService(ctx, nil)

	// page 0 used to flow straight into the offset math
	users, pagination, err := svc.List(ctx, user.UserName, "", 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if pagination.CurrentPage != constants.DefaultPage {
		t.Errorf("CurrentPage = %d, want %d", pagination.CurrentPage, constants.DefaultPage)
	}
	if len(users) != 1 || users[0].UserId != id {
		t.Errorf("got %d users for keyword %q, want the seeded one", len(users), user.UserName)
	}
	if pagination.TotalCount != 1 {
		t.Errorf("TotalCount = %d, want 1", pagination.TotalCount)
	}
}
