package repository

import (
	"context"
	"errors"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// BlogUpdate carries the mutable fields of a post. Nil fields are untouched.
type BlogUpdate struct {
	Title   *string
	Content *string
	Image   *string
}

// BlogRepository defines persistence operations for the content store.
// Update and Delete are ownership-conditioned: a write matches only when the
// stored owner equals the given user ID, and a zero-row match deliberately
// does not distinguish "missing" from "not yours".
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, id uint) (*models.Blog, error)
	List(ctx context.Context, limit, page int) ([]models.Blog, error)
	Count(ctx context.Context) (int64, error)
	GetByUserID(ctx context.Context, userID uint) ([]models.Blog, error)
	Update(ctx context.Context, id, userID uint, update BlogUpdate) (*models.Blog, error)
	Delete(ctx context.Context, id, userID uint) error
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository returns a new BlogRepository implementation.
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

// withOwner preloads the owning user restricted to the projected columns.
func withOwner(db *gorm.DB) *gorm.DB {
	return db.Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "name", "email", "avatar")
	})
}

func resolveOwners(blogs []models.Blog) {
	for i := range blogs {
		blogs[i].ResolveOwner()
	}
}

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if err := r.db.WithContext(ctx).Create(blog).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, id uint) (*models.Blog, error) {
	var blog models.Blog
	if err := withOwner(r.db.WithContext(ctx)).First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Blog", id)
		}
		return nil, models.NewInternalError(err)
	}
	blog.ResolveOwner()
	return &blog, nil
}

// List returns one page of posts ordered newest-first. The id tie-break keeps
// ordering deterministic when creation timestamps collide.
func (r *blogRepository) List(ctx context.Context, limit, page int) ([]models.Blog, error) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	var blogs []models.Blog
	if err := withOwner(r.db.WithContext(ctx)).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&blogs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	resolveOwners(blogs)
	return blogs, nil
}

func (r *blogRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Blog{}).Count(&total).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return total, nil
}

func (r *blogRepository) GetByUserID(ctx context.Context, userID uint) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := withOwner(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&blogs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	resolveOwners(blogs)
	return blogs, nil
}

// Update applies a single conditional write; concurrent updates race at this
// granularity with last-write-wins semantics.
func (r *blogRepository) Update(ctx context.Context, id, userID uint, update BlogUpdate) (*models.Blog, error) {
	fields := map[string]interface{}{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Content != nil {
		fields["content"] = *update.Content
	}
	if update.Image != nil {
		fields["image"] = *update.Image
	}

	if len(fields) > 0 {
		res := r.db.WithContext(ctx).
			Model(&models.Blog{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(fields)
		if res.Error != nil {
			return nil, models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, models.NewNotFoundOrUnauthorizedError("Blog")
		}
	} else {
		// Nothing to write; still enforce the ownership match.
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&models.Blog{}).
			Where("id = ? AND user_id = ?", id, userID).
			Count(&count).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
		if count == 0 {
			return nil, models.NewNotFoundOrUnauthorizedError("Blog")
		}
	}

	return r.GetByID(ctx, id)
}

func (r *blogRepository) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Blog{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundOrUnauthorizedError("Blog")
	}
	return nil
}
