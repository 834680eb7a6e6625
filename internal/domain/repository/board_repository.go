package repository

import (
	"context"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/clubops/clubops-api/pkg/pagination"
	"github.com/google/uuid"
)

// BoardRepository defines the interface for bulletin board data operations
type BoardRepository interface {
	Create(ctx context.Context, post *entity.BoardPost) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BoardPost, error)
	Update(ctx context.Context, post *entity.BoardPost) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns posts, pinned first, newest first within each group.
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.BoardPost, int64, error)
}
