package repository

import (
	"context"

	"gorm.io/gorm"

	"ContactBook/internal/model"
)

// UserRepository 账号持久化接口
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	CountByUsername(ctx context.Context, username string) (int64, error)
	UpdateFields(ctx context.Context, username string, changes map[string]interface{}) error
}

type gormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *gormUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormUserRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("username = ?", username).Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *gormUserRepository) UpdateFields(ctx context.Context, username string, changes map[string]interface{}) error {
	tx := r.db.WithContext(ctx).Model(&model.User{}).Where("username = ?", username).Updates(changes)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
