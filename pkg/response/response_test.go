package response

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"

	pkgerrors "ContactBook/pkg/errors"
)

func TestSuccess(t *testing.T) {
	c := ut.CreateUtRequestContext("GET", "/v1/contacts/1", nil)

	Success(context.Background(), c, map[string]string{"first_name": "Ada"})

	assert.Equal(t, 200, c.Response.StatusCode())
	assert.JSONEq(t, `{"data":{"first_name":"Ada"}}`, string(c.Response.Body()))
}

func TestSuccessWithPaging(t *testing.T) {
	c := ut.CreateUtRequestContext("GET", "/v1/contacts", nil)

	SuccessWithPaging(context.Background(), c, []string{}, Paging{
		CurrentPage: 2,
		Size:        10,
		TotalPage:   3,
	})

	assert.Equal(t, 200, c.Response.StatusCode())
	assert.JSONEq(t,
		`{"data":[],"paging":{"current_page":2,"size":10,"total_page":3}}`,
		string(c.Response.Body()),
	)
}

func TestErrorTranslation(t *testing.T) {
	t.Run("business error keeps its status and detail", func(t *testing.T) {
		c := ut.CreateUtRequestContext("GET", "/v1/contacts/1", nil)

		Error(context.Background(), c, pkgerrors.ContactNotFound())

		assert.Equal(t, 404, c.Response.StatusCode())
		assert.JSONEq(t, `{"errors":"Contact is not found"}`, string(c.Response.Body()))
	})

	t.Run("validation error is a flat 400, field details stay server-side", func(t *testing.T) {
		c := ut.CreateUtRequestContext("POST", "/v1/contacts", nil)

		Error(context.Background(), c, pkgerrors.Validation(map[string]string{
			"first_name": "is required",
		}))

		assert.Equal(t, 400, c.Response.StatusCode())
		assert.JSONEq(t, `{"errors":"Validation Error"}`, string(c.Response.Body()))
		assert.NotContains(t, string(c.Response.Body()), "first_name")
	})

	t.Run("wrapped business error is still recognized", func(t *testing.T) {
		c := ut.CreateUtRequestContext("GET", "/v1/contacts/1", nil)

		wrapped := errorsJoin("lookup failed", pkgerrors.ContactNotFound())
		Error(context.Background(), c, wrapped)

		assert.Equal(t, 404, c.Response.StatusCode())
	})

	t.Run("unknown error becomes a 500", func(t *testing.T) {
		c := ut.CreateUtRequestContext("GET", "/v1/contacts/1", nil)

		Error(context.Background(), c, errors.New("connection reset"))

		assert.Equal(t, 500, c.Response.StatusCode())
		assert.JSONEq(t, `{"errors":"connection reset"}`, string(c.Response.Body()))
	})
}

func TestBindError(t *testing.T) {
	c := ut.CreateUtRequestContext("POST", "/v1/contacts", nil)

	BindError(context.Background(), c, errors.New("unexpected end of JSON input"))

	assert.Equal(t, 400, c.Response.StatusCode())
	assert.JSONEq(t, `{"errors":"Validation Error"}`, string(c.Response.Body()))
}

// errorsJoin 模拟 service 层用 fmt.Errorf %w 包装后的错误
func errorsJoin(msg string, cause error) error {
	return &wrappedError{msg: msg, cause: cause}
}

type wrappedError struct {
	msg   string
	cause error
}

func (e *wrappedError) Error() string { return e.msg + ": " + e.cause.Error() }
func (e *wrappedError) Unwrap() error { return e.cause }
