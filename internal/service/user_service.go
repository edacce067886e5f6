// Package service orchestrates validation, stores and the media host.
package service

import (
	"context"

	"inkwell/internal/media"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/token"

	"golang.org/x/crypto/bcrypt"
)

// UserService implements registration, login and profile management.
type UserService struct {
	users         repository.UserRepository
	tokens        *token.Manager
	uploader      media.Uploader
	defaultAvatar string
}

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Bio      string
}

// UpdateProfileInput carries the mutable profile fields. Avatar is nil when
// no new image was supplied; the stored avatar URL is then left unchanged.
type UpdateProfileInput struct {
	UserID uint
	Name   string
	Bio    string
	Avatar *media.UploadInput
}

// NewUserService returns a new UserService.
func NewUserService(users repository.UserRepository, tokens *token.Manager, uploader media.Uploader, defaultAvatar string) *UserService {
	return &UserService{
		users:         users,
		tokens:        tokens,
		uploader:      uploader,
		defaultAvatar: defaultAvatar,
	}
}

// Register creates a credential record and issues a token. The returned user
// has the password hash stripped.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	existing, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", models.NewValidationError("User with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Bio:      in.Bio,
		Avatar:   s.defaultAvatar,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}

	user.Password = ""
	return user, tok, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password fail identically so callers cannot probe for accounts.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", models.NewUnauthorizedError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", models.NewUnauthorizedError("Invalid credentials")
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}

	user.Password = ""
	return user, tok, nil
}

// GetByID returns the user without the password hash.
func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// UpdateProfile writes profile changes through the credential store. When a
// new avatar is supplied it is relocated to the media host first and the
// returned URL substituted into the update.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Avatar != nil {
		in.Avatar.Folder = media.AvatarFolder
		url, err := s.uploader.Upload(ctx, *in.Avatar)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Avatar = url
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Bio != "" {
		user.Bio = in.Bio
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	user.Password = ""
	return user, nil
}
