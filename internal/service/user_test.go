package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ContactBook/internal/model"
	"ContactBook/internal/model/dto"
)

func TestUserServiceGet(t *testing.T) {
	users := newFakeUserRepo()
	users.users["ada"] = model.User{Username: "ada", Name: "Ada Lovelace", Password: "hash"}
	svc := NewUserService(users)

	t.Run("projection has no password", func(t *testing.T) {
		resp, err := svc.Get(context.Background(), "ada")
		require.NoError(t, err)
		assert.Equal(t, &dto.UserResponse{Username: "ada", Name: "Ada Lovelace"}, resp)
	})

	t.Run("deleted user behind a valid token", func(t *testing.T) {
		_, err := svc.Get(context.Background(), "ghost")
		requireStatus(t, err, 404)
	})
}

func TestUserServiceUpdate(t *testing.T) {
	users := newFakeUserRepo()
	users.users["ada"] = model.User{Username: "ada", Name: "Ada"}
	svc := NewUserService(users)

	t.Run("rename", func(t *testing.T) {
		name := "Ada Lovelace"
		resp, err := svc.Update(context.Background(), "ada", dto.UpdateUserRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", resp.Name)
	})

	t.Run("empty request is a validation error", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "ada", dto.UpdateUserRequest{})
		requireStatus(t, err, 400)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		password := "short"
		_, err := svc.Update(context.Background(), "ada", dto.UpdateUserRequest{Password: &password})
		requireStatus(t, err, 400)
	})

	t.Run("unknown user", func(t *testing.T) {
		name := "Nobody"
		_, err := svc.Update(context.Background(), "ghost", dto.UpdateUserRequest{Name: &name})
		requireStatus(t, err, 404)
	})
}
