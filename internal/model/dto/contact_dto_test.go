package dto

import (
	"errors"
	"strings"
	"testing"

	scgerror "github.com/next-trace/scg-error/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "ContactBook/pkg/errors"
)

// validationFields 从校验错误里取出字段明细
func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()

	var appErr *scgerror.Error
	require.True(t, errors.As(err, &appErr), "expected a validation error, got: %v", err)
	require.Equal(t, pkgerrors.KeyValidation, appErr.Key())

	fields, ok := appErr.Context()[pkgerrors.FieldsContextKey].(map[string]string)
	require.True(t, ok, "validation error should carry field details")
	return fields
}

func strPtr(s string) *string { return &s }

func TestCreateContactRequestValidate(t *testing.T) {
	t.Run("valid full request", func(t *testing.T) {
		req := CreateContactRequest{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Phone:     "+7123456789",
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("only first name is enough", func(t *testing.T) {
		req := CreateContactRequest{FirstName: "Ada"}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing first name", func(t *testing.T) {
		req := CreateContactRequest{LastName: "Lovelace"}
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "first_name")
	})

	t.Run("first name too long", func(t *testing.T) {
		req := CreateContactRequest{FirstName: strings.Repeat("a", 101)}
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "first_name")
	})

	t.Run("invalid email", func(t *testing.T) {
		req := CreateContactRequest{FirstName: "Ada", Email: "not-an-email"}
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "email")
	})

	t.Run("phone too long", func(t *testing.T) {
		req := CreateContactRequest{FirstName: "Ada", Phone: strings.Repeat("1", 21)}
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "phone")
	})

	t.Run("multiple invalid fields reported together", func(t *testing.T) {
		req := CreateContactRequest{
			Email: "broken",
			Phone: strings.Repeat("1", 21),
		}
		fields := validationFields(t, req.Validate())
		assert.Len(t, fields, 3)
		assert.Contains(t, fields, "first_name")
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "phone")
	})
}

func TestUpdateContactRequestValidate(t *testing.T) {
	t.Run("absent fields are not checked", func(t *testing.T) {
		req := UpdateContactRequest{ID: 1}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing id", func(t *testing.T) {
		req := UpdateContactRequest{}
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "id")
	})

	t.Run("first name present but empty", func(t *testing.T) {
		req := UpdateContactRequest{ID: 1, FirstName: strPtr("")}
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "first_name")
	})

	t.Run("email present but invalid", func(t *testing.T) {
		req := UpdateContactRequest{ID: 1, Email: strPtr("broken")}
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "email")
	})

	t.Run("clearing optional fields is allowed", func(t *testing.T) {
		req := UpdateContactRequest{ID: 1, LastName: strPtr(""), Email: strPtr(""), Phone: strPtr("")}
		assert.NoError(t, req.Validate())
	})
}

func TestUpdateContactRequestChanges(t *testing.T) {
	t.Run("only supplied fields", func(t *testing.T) {
		req := UpdateContactRequest{ID: 1, FirstName: strPtr("Ada"), Phone: strPtr("")}
		changes := req.Changes()
		assert.Equal(t, map[string]interface{}{
			"first_name": "Ada",
			"phone":      "",
		}, changes)
	})

	t.Run("no fields supplied", func(t *testing.T) {
		req := UpdateContactRequest{ID: 1}
		assert.Empty(t, req.Changes())
	})
}

func TestSearchContactRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := SearchContactRequest{Name: "ada", Page: 1, Size: 10}
		assert.NoError(t, req.Validate())
	})

	t.Run("page below one", func(t *testing.T) {
		req := SearchContactRequest{Page: 0, Size: 10}
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "page")
	})

	t.Run("size zero", func(t *testing.T) {
		req := SearchContactRequest{Page: 1, Size: 0}
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "size")
	})

	t.Run("size above limit", func(t *testing.T) {
		req := SearchContactRequest{Page: 1, Size: 101}
		fields := validationFields(t, req.Validate())
		assert.Contains(t, fields, "size")
	})
}
