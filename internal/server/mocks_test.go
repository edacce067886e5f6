package server

import (
	"context"
	"time"

	"inkwell/internal/config"
	"inkwell/internal/media"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/service"
	"inkwell/internal/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockBlogRepository is a mock of the BlogRepository interface
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *MockBlogRepository) GetByID(ctx context.Context, id uint) (*models.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

func (m *MockBlogRepository) List(ctx context.Context, limit, page int) ([]models.Blog, error) {
	args := m.Called(ctx, limit, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Blog), args.Error(1)
}

func (m *MockBlogRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBlogRepository) GetByUserID(ctx context.Context, userID uint) ([]models.Blog, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Blog), args.Error(1)
}

func (m *MockBlogRepository) Update(ctx context.Context, id, userID uint, update repository.BlogUpdate) (*models.Blog, error) {
	args := m.Called(ctx, id, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

func (m *MockBlogRepository) Delete(ctx context.Context, id, userID uint) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// fakeUploader returns a deterministic URL without touching a media host.
type fakeUploader struct {
	url   string
	err   error
	calls []media.UploadInput
}

func (f *fakeUploader) Upload(ctx context.Context, in media.UploadInput) (string, error) {
	f.calls = append(f.calls, in)
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

// newTestServer wires a Server with mock stores and a fake uploader, plus a
// Fiber app with the full route table.
func newTestServer() (*Server, *fiber.App, *MockUserRepository, *MockBlogRepository, *fakeUploader) {
	userRepo := new(MockUserRepository)
	blogRepo := new(MockBlogRepository)
	uploader := &fakeUploader{url: "https://media.example.com/blog-platform/uploaded.jpg"}
	tokens := token.NewManager("test-secret", time.Hour)
	cfg := &config.Config{
		Port:             "5000",
		JWTSecret:        "test-secret",
		JWTExpireHours:   1,
		DefaultAvatarURL: "https://media.example.com/blog-platform/avatars/default.png",
	}

	s := &Server{
		config:      cfg,
		userRepo:    userRepo,
		blogRepo:    blogRepo,
		tokens:      tokens,
		uploader:    uploader,
		userService: service.NewUserService(userRepo, tokens, uploader, cfg.DefaultAvatarURL),
		blogService: service.NewBlogService(blogRepo, uploader),
	}

	app := fiber.New()
	s.SetupRoutes(app)

	return s, app, userRepo, blogRepo, uploader
}
