package service

import (
	"context"
	"errors"
	"os"
	"testing"

	scgerror "github.com/next-trace/scg-error/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ContactBook/internal/model"
	"ContactBook/internal/model/dto"
	"ContactBook/internal/repository"
	pkgerrors "ContactBook/pkg/errors"
	"ContactBook/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// --- fakes ---

// fakeContactRepo 内存实现，按 (username, id) 存储
type fakeContactRepo struct {
	contacts map[int64]model.Contact

	lastFilter repository.SearchFilter

	searchOut []model.Contact
	countOut  int64

	failWith error
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: map[int64]model.Contact{}}
}

func (f *fakeContactRepo) Create(ctx context.Context, contact *model.Contact) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.contacts[contact.ID] = *contact
	return nil
}

func (f *fakeContactRepo) FirstByIDAndOwner(ctx context.Context, username string, id int64) (*model.Contact, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	contact, ok := f.contacts[id]
	if !ok || contact.Username != username {
		return nil, gorm.ErrRecordNotFound
	}
	return &contact, nil
}

func (f *fakeContactRepo) UpdateFields(ctx context.Context, username string, id int64, changes map[string]interface{}) error {
	contact, ok := f.contacts[id]
	if !ok || contact.Username != username {
		return gorm.ErrRecordNotFound
	}
	for column, value := range changes {
		s := value.(string)
		switch column {
		case "first_name":
			contact.FirstName = s
		case "last_name":
			contact.LastName = s
		case "email":
			contact.Email = s
		case "phone":
			contact.Phone = s
		}
	}
	f.contacts[id] = contact
	return nil
}

func (f *fakeContactRepo) Delete(ctx context.Context, username string, id int64) error {
	contact, ok := f.contacts[id]
	if !ok || contact.Username != username {
		return gorm.ErrRecordNotFound
	}
	delete(f.contacts, id)
	return nil
}

func (f *fakeContactRepo) Search(ctx context.Context, username string, filter repository.SearchFilter) ([]model.Contact, error) {
	f.lastFilter = filter
	return f.searchOut, nil
}

func (f *fakeContactRepo) Count(ctx context.Context, username string, filter repository.SearchFilter) (int64, error) {
	return f.countOut, nil
}

func sequentialIDs() func() (int64, error) {
	var next int64
	return func() (int64, error) {
		next++
		return next, nil
	}
}

func newTestContactService(repo repository.ContactRepository) *ContactService {
	return NewContactService(repo, sequentialIDs())
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var appErr *scgerror.Error
	require.True(t, errors.As(err, &appErr), "expected app error, got: %v", err)
	assert.Equal(t, status, appErr.HTTPStatus())
}

// --- tests ---

func TestContactServiceCreate(t *testing.T) {
	repo := newFakeContactRepo()
	svc := newTestContactService(repo)

	resp, err := svc.Create(context.Background(), "ada", dto.CreateContactRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Phone:     "+1555",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Grace", resp.FirstName)
	assert.Equal(t, "Hopper", resp.LastName)
	assert.Equal(t, "grace@example.com", resp.Email)
	assert.Equal(t, "+1555", resp.Phone)

	// 归属来自认证身份，不来自请求体
	stored := repo.contacts[resp.ID]
	assert.Equal(t, "ada", stored.Username)
}

func TestContactServiceCreateValidation(t *testing.T) {
	repo := newFakeContactRepo()
	svc := newTestContactService(repo)

	_, err := svc.Create(context.Background(), "ada", dto.CreateContactRequest{Email: "broken"})
	requireStatus(t, err, 400)
	assert.Empty(t, repo.contacts, "invalid request must not touch the store")
}

func TestContactServiceGet(t *testing.T) {
	repo := newFakeContactRepo()
	repo.contacts[7] = model.Contact{ID: 7, Username: "ada", FirstName: "Grace"}
	svc := newTestContactService(repo)

	t.Run("owner sees the contact", func(t *testing.T) {
		resp, err := svc.Get(context.Background(), "ada", 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "Grace", resp.FirstName)
	})

	t.Run("missing contact is 404", func(t *testing.T) {
		_, err := svc.Get(context.Background(), "ada", 999)
		requireStatus(t, err, 404)
	})

	t.Run("someone else's contact is the same 404", func(t *testing.T) {
		_, err := svc.Get(context.Background(), "mallory", 7)
		requireStatus(t, err, 404)
	})
}

func TestContactServiceUpdate(t *testing.T) {
	repo := newFakeContactRepo()
	repo.contacts[7] = model.Contact{
		ID: 7, Username: "ada",
		FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com",
	}
	svc := newTestContactService(repo)

	t.Run("only supplied fields change", func(t *testing.T) {
		phone := "+1555"
		resp, err := svc.Update(context.Background(), "ada", dto.UpdateContactRequest{
			ID:    7,
			Phone: &phone,
		})
		require.NoError(t, err)

		assert.Equal(t, "+1555", resp.Phone)
		assert.Equal(t, "Grace", resp.FirstName)
		assert.Equal(t, "Hopper", resp.LastName)
		assert.Equal(t, "grace@example.com", resp.Email)

		stored := repo.contacts[7]
		assert.Equal(t, "+1555", stored.Phone)
		assert.Equal(t, "Grace", stored.FirstName)
	})

	t.Run("empty update returns current state", func(t *testing.T) {
		resp, err := svc.Update(context.Background(), "ada", dto.UpdateContactRequest{ID: 7})
		require.NoError(t, err)
		assert.Equal(t, "Grace", resp.FirstName)
	})

	t.Run("not owner is 404", func(t *testing.T) {
		name := "Eve"
		_, err := svc.Update(context.Background(), "mallory", dto.UpdateContactRequest{
			ID:        7,
			FirstName: &name,
		})
		requireStatus(t, err, 404)
		assert.Equal(t, "Grace", repo.contacts[7].FirstName)
	})
}

func TestContactServiceRemove(t *testing.T) {
	repo := newFakeContactRepo()
	repo.contacts[7] = model.Contact{ID: 7, Username: "ada", FirstName: "Grace"}
	svc := newTestContactService(repo)

	resp, err := svc.Remove(context.Background(), "ada", 7)
	require.NoError(t, err)

	// 响应是删除前的最后状态
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "Grace", resp.FirstName)
	assert.Empty(t, repo.contacts)

	// 重复删除和删除不存在的记录表现一致
	_, err = svc.Remove(context.Background(), "ada", 7)
	requireStatus(t, err, 404)
}

func TestContactServiceSearch(t *testing.T) {
	repo := newFakeContactRepo()
	repo.searchOut = []model.Contact{
		{ID: 11, Username: "ada", FirstName: "Grace"},
		{ID: 12, Username: "ada", FirstName: "Alan"},
	}
	repo.countOut = 25
	svc := newTestContactService(repo)

	items, paging, err := svc.Search(context.Background(), "ada", dto.SearchContactRequest{
		Name: "a",
		Page: 2,
		Size: 10,
	})
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, int64(11), items[0].ID)

	assert.Equal(t, 2, paging.CurrentPage)
	assert.Equal(t, 10, paging.Size)
	assert.Equal(t, 3, paging.TotalPage) // ceil(25/10)

	assert.Equal(t, 10, repo.lastFilter.Offset)
	assert.Equal(t, 10, repo.lastFilter.Limit)
	assert.Equal(t, "a", repo.lastFilter.Name)
}

func TestContactServiceSearchValidation(t *testing.T) {
	svc := newTestContactService(newFakeContactRepo())

	_, _, err := svc.Search(context.Background(), "ada", dto.SearchContactRequest{Page: 1, Size: 0})
	requireStatus(t, err, 400)

	var appErr *scgerror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, pkgerrors.KeyValidation, appErr.Key())
}
