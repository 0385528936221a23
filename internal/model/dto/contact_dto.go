package dto

import (
	"net/mail"
	"unicode/utf8"

	pkgerrors "ContactBook/pkg/errors"
)

// ========== Contact 相关 DTO ==========

// ContactResponse 联系人对外投影，不含 username
type ContactResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// CreateContactRequest 创建联系人请求
type CreateContactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Validate 创建 schema：first_name 必填，其余可选但有长度上限
func (r CreateContactRequest) Validate() error {
	fields := map[string]string{}

	checkRequired(fields, "first_name", r.FirstName, 100)
	checkOptional(fields, "last_name", r.LastName, 100)
	checkEmail(fields, "email", r.Email)
	checkOptional(fields, "phone", r.Phone, 20)

	if len(fields) > 0 {
		return pkgerrors.Validation(fields)
	}
	return nil
}

// UpdateContactRequest 部分更新请求，指针区分"未提供"和"空值"
type UpdateContactRequest struct {
	ID        int64   `json:"-"` // 来自路径参数
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// Validate 更新 schema：id 必填，出现的字段按创建时的约束检查
func (r UpdateContactRequest) Validate() error {
	fields := map[string]string{}

	if r.ID <= 0 {
		fields["id"] = "is required"
	}
	if r.FirstName != nil {
		checkRequired(fields, "first_name", *r.FirstName, 100)
	}
	if r.LastName != nil {
		checkOptional(fields, "last_name", *r.LastName, 100)
	}
	if r.Email != nil {
		checkEmail(fields, "email", *r.Email)
	}
	if r.Phone != nil {
		checkOptional(fields, "phone", *r.Phone, 20)
	}

	if len(fields) > 0 {
		return pkgerrors.Validation(fields)
	}
	return nil
}

// Changes 返回请求中出现的字段，作为部分更新的列集合
func (r UpdateContactRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.FirstName != nil {
		changes["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		changes["last_name"] = *r.LastName
	}
	if r.Email != nil {
		changes["email"] = *r.Email
	}
	if r.Phone != nil {
		changes["phone"] = *r.Phone
	}
	return changes
}

// SearchContactRequest 搜索条件，不落库
type SearchContactRequest struct {
	Name  string `json:"name" query:"name"`
	Email string `json:"email" query:"email"`
	Phone string `json:"phone" query:"phone"`
	Page  int    `json:"page" query:"page"`
	Size  int    `json:"size" query:"size"`
}

// Validate 搜索 schema：page >= 1，1 <= size <= 100，过滤串只限长度
func (r SearchContactRequest) Validate() error {
	fields := map[string]string{}

	if r.Page < 1 {
		fields["page"] = "must be at least 1"
	}
	if r.Size < 1 {
		fields["size"] = "must be at least 1"
	} else if r.Size > 100 {
		fields["size"] = "must be at most 100"
	}
	checkOptional(fields, "name", r.Name, 100)
	checkOptional(fields, "email", r.Email, 200)
	checkOptional(fields, "phone", r.Phone, 20)

	if len(fields) > 0 {
		return pkgerrors.Validation(fields)
	}
	return nil
}

func checkRequired(fields map[string]string, name, value string, max int) {
	if value == "" {
		fields[name] = "is required"
		return
	}
	if utf8.RuneCountInString(value) > max {
		fields[name] = "is too long"
	}
}

func checkOptional(fields map[string]string, name, value string, max int) {
	if value != "" && utf8.RuneCountInString(value) > max {
		fields[name] = "is too long"
	}
}

func checkEmail(fields map[string]string, name, value string) {
	if value == "" {
		return
	}
	if utf8.RuneCountInString(value) > 200 {
		fields[name] = "is too long"
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		fields[name] = "is not a valid email"
	}
}
