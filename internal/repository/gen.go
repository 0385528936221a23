package repository

import (
	"gorm.io/gen"
)

// ========== Contact 相关查询接口 ==========
// cmd/gen 读取这里的注释模板生成类型安全的查询代码

// ContactQuerier 联系人查询接口
type ContactQuerier interface {
	// GetByIDAndUsername 按主键和归属用户查询，两个条件缺一不可
	// SELECT * FROM @@table WHERE id = @id AND username = @username LIMIT 1
	GetByIDAndUsername(id int64, username string) (*gen.T, error)

	// SearchByOwner 按归属用户搜索，可选的子串过滤条件全部取与
	// SELECT * FROM @@table
	// WHERE username = @username
	//   {{if name != ""}}
	//   AND (first_name LIKE concat('%', @name, '%') OR last_name LIKE concat('%', @name, '%'))
	//   {{end}}
	//   {{if email != ""}}
	//   AND email LIKE concat('%', @email, '%')
	//   {{end}}
	//   {{if phone != ""}}
	//   AND phone LIKE concat('%', @phone, '%')
	//   {{end}}
	// ORDER BY id
	// LIMIT @limit OFFSET @offset
	SearchByOwner(username, name, email, phone string, limit, offset int) ([]*gen.T, error)
}
