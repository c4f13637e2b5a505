package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vidloom/vidloom/cmd/model"
)

func CreateUser(ctx context.Context, user *model.User) error {
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		return errors.Wrapf(err, "CreateUser failed for %s", user.UserName)
	}
	return nil
}

func GetUserById(ctx context.Context, userId int64) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Where("user_id = ?", userId).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByName(ctx context.Context, userName string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Where("user_name = ?", userName).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckUserExists reports whether the username or email is already taken.
func CheckUserExists(ctx context.Context, userName, email string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).
		Where("user_name = ? OR email = ?", userName, email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func UpdateChannelProfile(ctx context.Context, userId int64, fields map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userId).Updates(fields).Error; err != nil {
		return errors.Wrapf(err, "UpdateChannelProfile failed for user %d", userId)
	}
	return nil
}

func UpdateUserRole(ctx context.Context, userId int64, role string) error {
	result := DB.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userId).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func DeleteUser(ctx context.Context, userId int64) error {
	return DB.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.User{}).Error
}

// QueryUsers is the admin listing: optional fuzzy match on username/email
// and optional role filter, newest first.
func QueryUsers(ctx context.Context, keyword, role string, page, pageSize int64) ([]*model.User, int64, error) {
	query := DB.WithContext(ctx).Model(&model.User{})
	if keyword != "" {
		query = query.Where("user_name LIKE ? OR email LIKE ?", "%"+keyword+"%", "%"+keyword+"%")
	}
	if role != "" && role != "all" {
		query = query.Where("role = ?", role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []*model.User
	if err := query.Order("created_at DESC").
		Limit(int(pageSize)).Offset(int((page - 1) * pageSize)).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func RecentUsers(ctx context.Context, limit int) ([]*model.User, error) {
	var users []*model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).
		Order("created_at DESC").Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func TopChannels(ctx context.Context, limit int) ([]*model.User, error) {
	var users []*model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).
		Order("subscriber_count DESC").Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
