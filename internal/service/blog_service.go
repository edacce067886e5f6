package service

import (
	"context"

	"inkwell/internal/media"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// BlogService implements blog post CRUD with image relocation.
type BlogService struct {
	blogs    repository.BlogRepository
	uploader media.Uploader
}

// CreateBlogInput carries the fields of a new post. Image is mandatory.
type CreateBlogInput struct {
	Title   string
	Content string
	UserID  uint
	Image   *media.UploadInput
}

// UpdateBlogInput carries the mutable fields of a post. Nil fields are
// untouched; Image is nil when no replacement was supplied.
type UpdateBlogInput struct {
	ID      uint
	UserID  uint
	Title   *string
	Content *string
	Image   *media.UploadInput
}

// NewBlogService returns a new BlogService.
func NewBlogService(blogs repository.BlogRepository, uploader media.Uploader) *BlogService {
	return &BlogService{blogs: blogs, uploader: uploader}
}

// Create relocates the mandatory image, then writes the post. An upload that
// succeeds before a failing store write leaves the object orphaned on the
// media host; there is no compensation step.
func (s *BlogService) Create(ctx context.Context, in CreateBlogInput) (*models.Blog, error) {
	if in.Image == nil {
		return nil, models.NewValidationError("Please upload an image")
	}

	in.Image.Folder = media.BlogFolder
	url, err := s.uploader.Upload(ctx, *in.Image)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	blog := &models.Blog{
		Title:   in.Title,
		Content: in.Content,
		Image:   url,
		UserID:  in.UserID,
	}
	if err := s.blogs.Create(ctx, blog); err != nil {
		return nil, err
	}

	// Reload to resolve the owner projection for the response.
	return s.blogs.GetByID(ctx, blog.ID)
}

// GetAll returns one page of posts plus the total count and page count.
func (s *BlogService) GetAll(ctx context.Context, limit, page int) (*models.BlogPage, error) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}

	blogs, err := s.blogs.List(ctx, limit, page)
	if err != nil {
		return nil, err
	}
	total, err := s.blogs.Count(ctx)
	if err != nil {
		return nil, err
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return &models.BlogPage{Blogs: blogs, Total: total, Pages: pages}, nil
}

// GetByID returns a single post or a not-found error.
func (s *BlogService) GetByID(ctx context.Context, id uint) (*models.Blog, error) {
	return s.blogs.GetByID(ctx, id)
}

// GetByUser returns the complete, unpaginated list for one owner.
func (s *BlogService) GetByUser(ctx context.Context, userID uint) ([]models.Blog, error) {
	return s.blogs.GetByUserID(ctx, userID)
}

// Update relocates a replacement image when supplied, then applies an
// ownership-conditioned write. A zero-row match surfaces as "not found or
// unauthorized" without distinguishing the two cases.
func (s *BlogService) Update(ctx context.Context, in UpdateBlogInput) (*models.Blog, error) {
	update := repository.BlogUpdate{
		Title:   in.Title,
		Content: in.Content,
	}

	if in.Image != nil {
		in.Image.Folder = media.BlogFolder
		url, err := s.uploader.Upload(ctx, *in.Image)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		update.Image = &url
	}

	return s.blogs.Update(ctx, in.ID, in.UserID, update)
}

// Delete removes a post under the same ownership-conditioned semantics as Update.
func (s *BlogService) Delete(ctx context.Context, id, userID uint) error {
	return s.blogs.Delete(ctx, id, userID)
}
