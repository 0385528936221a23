// Package repository 是持久化网关。联系人的每一条查询都从 scoped 出发，
// 没有不带 username 谓词的访问路径。
package repository

import (
	"context"

	"gorm.io/gorm"

	"ContactBook/internal/model"
)

// SearchFilter 联系人搜索条件。所有出现的谓词取与，
// Name 命中 first_name 或 last_name 的子串
type SearchFilter struct {
	Name   string
	Email  string
	Phone  string
	Offset int
	Limit  int
}

// ContactRepository 联系人持久化接口，全部操作按 username 限定
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	FirstByIDAndOwner(ctx context.Context, username string, id int64) (*model.Contact, error)
	UpdateFields(ctx context.Context, username string, id int64, changes map[string]interface{}) error
	Delete(ctx context.Context, username string, id int64) error
	Search(ctx context.Context, username string, filter SearchFilter) ([]model.Contact, error)
	Count(ctx context.Context, username string, filter SearchFilter) (int64, error)
}

type gormContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &gormContactRepository{db: db}
}

// scoped 所有权前提：任何读写都在这个查询上追加条件
func (r *gormContactRepository) scoped(ctx context.Context, username string) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Contact{}).Where("username = ?", username)
}

func (r *gormContactRepository) applyFilter(tx *gorm.DB, filter SearchFilter) *gorm.DB {
	if filter.Name != "" {
		pattern := "%" + filter.Name + "%"
		tx = tx.Where(
			r.db.Where("first_name LIKE ?", pattern).Or("last_name LIKE ?", pattern),
		)
	}
	if filter.Email != "" {
		tx = tx.Where("email LIKE ?", "%"+filter.Email+"%")
	}
	if filter.Phone != "" {
		tx = tx.Where("phone LIKE ?", "%"+filter.Phone+"%")
	}
	return tx
}

func (r *gormContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *gormContactRepository) FirstByIDAndOwner(ctx context.Context, username string, id int64) (*model.Contact, error) {
	var contact model.Contact
	err := r.scoped(ctx, username).Where("id = ?", id).First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *gormContactRepository) UpdateFields(ctx context.Context, username string, id int64, changes map[string]interface{}) error {
	tx := r.scoped(ctx, username).Where("id = ?", id).Updates(changes)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gormContactRepository) Delete(ctx context.Context, username string, id int64) error {
	tx := r.scoped(ctx, username).Where("id = ?", id).Delete(&model.Contact{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Search 取一页数据。和 Count 是两次独立查询，并发写入下两者可能
// 基于不同瞬间的数据，这是接口约定里记录过的限制
func (r *gormContactRepository) Search(ctx context.Context, username string, filter SearchFilter) ([]model.Contact, error) {
	var contacts []model.Contact
	err := r.applyFilter(r.scoped(ctx, username), filter).
		Order("id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *gormContactRepository) Count(ctx context.Context, username string, filter SearchFilter) (int64, error) {
	var total int64
	err := r.applyFilter(r.scoped(ctx, username), filter).Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
