package service

import (
	"context"

	"inkwell/internal/media"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// stubUserRepo implements repository.UserRepository with overridable behavior.
type stubUserRepo struct {
	createFn     func(ctx context.Context, user *models.User) error
	getByIDFn    func(ctx context.Context, id uint) (*models.User, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)
	updateFn     func(ctx context.Context, user *models.User) error
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

// stubBlogRepo implements repository.BlogRepository with overridable behavior.
type stubBlogRepo struct {
	createFn      func(ctx context.Context, blog *models.Blog) error
	getByIDFn     func(ctx context.Context, id uint) (*models.Blog, error)
	listFn        func(ctx context.Context, limit, page int) ([]models.Blog, error)
	countFn       func(ctx context.Context) (int64, error)
	getByUserIDFn func(ctx context.Context, userID uint) ([]models.Blog, error)
	updateFn      func(ctx context.Context, id, userID uint, update repository.BlogUpdate) (*models.Blog, error)
	deleteFn      func(ctx context.Context, id, userID uint) error
}

func (s *stubBlogRepo) Create(ctx context.Context, blog *models.Blog) error {
	return s.createFn(ctx, blog)
}

func (s *stubBlogRepo) GetByID(ctx context.Context, id uint) (*models.Blog, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubBlogRepo) List(ctx context.Context, limit, page int) ([]models.Blog, error) {
	return s.listFn(ctx, limit, page)
}

func (s *stubBlogRepo) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func (s *stubBlogRepo) GetByUserID(ctx context.Context, userID uint) ([]models.Blog, error) {
	return s.getByUserIDFn(ctx, userID)
}

func (s *stubBlogRepo) Update(ctx context.Context, id, userID uint, update repository.BlogUpdate) (*models.Blog, error) {
	return s.updateFn(ctx, id, userID, update)
}

func (s *stubBlogRepo) Delete(ctx context.Context, id, userID uint) error {
	return s.deleteFn(ctx, id, userID)
}

// stubUploader records upload calls and returns a fixed URL or error.
type stubUploader struct {
	url   string
	err   error
	calls []media.UploadInput
}

func (s *stubUploader) Upload(ctx context.Context, in media.UploadInput) (string, error) {
	s.calls = append(s.calls, in)
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}
