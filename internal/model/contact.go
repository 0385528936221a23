package model

import "time"

// Contact 通讯录条目，归属且仅归属一个用户。
// 删除是物理删除，没有软删除字段。
type Contact struct {
	ID        int64     `gorm:"primaryKey" json:"id"` // snowflake 分配，不用自增
	Username  string    `gorm:"type:varchar(100);not null;index:idx_contacts_username" json:"username"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100);not null;default:''" json:"last_name"`
	Email     string    `gorm:"type:varchar(200);not null;default:''" json:"email"`
	Phone     string    `gorm:"type:varchar(20);not null;default:''" json:"phone"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

// TableName 指定表名
func (Contact) TableName() string {
	return "contacts"
}
