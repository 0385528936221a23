package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ContactBook/internal/model"
	"ContactBook/internal/model/dto"
	"ContactBook/internal/queue"
	"ContactBook/internal/repository"
	pkgerrors "ContactBook/pkg/errors"
	"ContactBook/pkg/logger"
	"ContactBook/pkg/response"
	"ContactBook/pkg/snowflake"
	"ContactBook/storage/database"
)

var (
	contactService *ContactService
	contactOnce    sync.Once
)

func Contact() *ContactService {
	contactOnce.Do(func() {
		contactService = NewContactService(
			repository.NewContactRepository(database.DB()),
			snowflake.NextID,
		)
	})

	return contactService
}

// ContactService 联系人业务逻辑：校验、所有权保证、响应投影
type ContactService struct {
	repo  repository.ContactRepository
	newID func() (int64, error)
}

func NewContactService(repo repository.ContactRepository, newID func() (int64, error)) *ContactService {
	return &ContactService{repo: repo, newID: newID}
}

// Create 创建联系人，归属自动落在当前认证用户上，不信任请求体
func (s *ContactService) Create(
	ctx context.Context,
	username string,
	req dto.CreateContactRequest,
) (*dto.ContactResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate contact id: %w", err)
	}

	contact := model.Contact{
		ID:        id,
		Username:  username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	if err := s.repo.Create(ctx, &contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	logger.Logger.Info("Contact created",
		zap.String("username", username),
		zap.Int64("contact_id", contact.ID),
	)
	queue.PublishContactEvent(queue.ActionCreated, username, contact.ID)

	return toContactResponse(&contact), nil
}

// mustExist 所有权保证：id 和 username 同时命中才算存在。
// 别人的联系人和不存在的联系人表现完全一致，都是 404。
func (s *ContactService) mustExist(ctx context.Context, username string, contactID int64) (*model.Contact, error) {
	contact, err := s.repo.FirstByIDAndOwner(ctx, username, contactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.ContactNotFound()
		}
		return nil, fmt.Errorf("failed to query contact: %w", err)
	}

	return contact, nil
}

// Get 查询单个联系人
func (s *ContactService) Get(
	ctx context.Context,
	username string,
	contactID int64,
) (*dto.ContactResponse, error) {
	contact, err := s.mustExist(ctx, username, contactID)
	if err != nil {
		return nil, err
	}

	return toContactResponse(contact), nil
}

// Update 部分更新，只落请求里出现的字段
func (s *ContactService) Update(
	ctx context.Context,
	username string,
	req dto.UpdateContactRequest,
) (*dto.ContactResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	contact, err := s.mustExist(ctx, username, req.ID)
	if err != nil {
		return nil, err
	}

	changes := req.Changes()
	if len(changes) == 0 {
		return toContactResponse(contact), nil
	}

	if err := s.repo.UpdateFields(ctx, username, contact.ID, changes); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.ContactNotFound()
		}
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	applyChanges(contact, req)

	logger.Logger.Info("Contact updated",
		zap.String("username", username),
		zap.Int64("contact_id", contact.ID),
	)
	queue.PublishContactEvent(queue.ActionUpdated, username, contact.ID)

	return toContactResponse(contact), nil
}

// Remove 物理删除，响应带的是删除前的最后状态
func (s *ContactService) Remove(
	ctx context.Context,
	username string,
	contactID int64,
) (*dto.ContactResponse, error) {
	contact, err := s.mustExist(ctx, username, contactID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, username, contactID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.ContactNotFound()
		}
		return nil, fmt.Errorf("failed to delete contact: %w", err)
	}

	logger.Logger.Info("Contact deleted",
		zap.String("username", username),
		zap.Int64("contact_id", contactID),
	)
	queue.PublishContactEvent(queue.ActionDeleted, username, contactID)

	return toContactResponse(contact), nil
}

// Search 条件搜索加分页。取数和计数是两次独立查询，
// 并发写入下 total_page 可能和当前切片对应不上，接受这个误差
func (s *ContactService) Search(
	ctx context.Context,
	username string,
	req dto.SearchContactRequest,
) ([]dto.ContactResponse, response.Paging, error) {
	if err := req.Validate(); err != nil {
		return nil, response.Paging{}, err
	}

	filter := repository.SearchFilter{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Offset: (req.Page - 1) * req.Size,
		Limit:  req.Size,
	}

	contacts, err := s.repo.Search(ctx, username, filter)
	if err != nil {
		return nil, response.Paging{}, fmt.Errorf("failed to search contacts: %w", err)
	}

	total, err := s.repo.Count(ctx, username, filter)
	if err != nil {
		return nil, response.Paging{}, fmt.Errorf("failed to count contacts: %w", err)
	}

	items := make([]dto.ContactResponse, 0, len(contacts))
	for i := range contacts {
		items = append(items, *toContactResponse(&contacts[i]))
	}

	paging := response.Paging{
		CurrentPage: req.Page,
		Size:        req.Size,
		TotalPage:   int((total + int64(req.Size) - 1) / int64(req.Size)),
	}

	return items, paging, nil
}

// toContactResponse 对外投影，去掉归属字段
func toContactResponse(contact *model.Contact) *dto.ContactResponse {
	return &dto.ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}

func applyChanges(contact *model.Contact, req dto.UpdateContactRequest) {
	if req.FirstName != nil {
		contact.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		contact.LastName = *req.LastName
	}
	if req.Email != nil {
		contact.Email = *req.Email
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
}
