package model

import "time"

// User 账号模型，username 同时是所有联系人查询的租户键
type User struct {
	Username  string    `gorm:"primaryKey;type:varchar(100)" json:"username"`
	Password  string    `gorm:"type:varchar(100);not null" json:"-"` // bcrypt 哈希
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
