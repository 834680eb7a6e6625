package repository

import (
	"context"
	"errors"

	"github.com/clubops/clubops-api/internal/domain/entity"
	domainRepo "github.com/clubops/clubops-api/internal/domain/repository"
	"github.com/clubops/clubops-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type boardRepository struct {
	db *gorm.DB
}

// NewBoardRepository creates a new board repository
func NewBoardRepository(db *gorm.DB) domainRepo.BoardRepository {
	return &boardRepository{db: db}
}

func (r *boardRepository) Create(ctx context.Context, post *entity.BoardPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *boardRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.BoardPost, error) {
	var post entity.BoardPost
	err := r.db.WithContext(ctx).Scopes(VenueScope(ctx)).
		Preload("Author").
		First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &post, err
}

func (r *boardRepository) Update(ctx context.Context, post *entity.BoardPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *boardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(VenueScope(ctx)).Delete(&entity.BoardPost{}, "id = ?", id).Error
}

func (r *boardRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.BoardPost, int64, error) {
	var posts []entity.BoardPost
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.BoardPost{}).Scopes(VenueScope(ctx))

	if search != "" {
		query = query.Where("title ILIKE ? OR body ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Author").
		Order("pinned DESC, created_at DESC").
		Find(&posts).Error

	return posts, total, err
}
