package repository

import (
	"context"
	"time"

	"foodshare/internal/models"

	"github.com/jmoiron/sqlx"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Post, error)
	ListOverdueActive(ctx context.Context, now time.Time) ([]models.Post, error)
	CountByOwnerAndKind(ctx context.Context, ownerID string, kind models.PostKind) (int, error)
	CompareAndSetStatus(ctx context.Context, postID string, expected, next models.PostStatus) error
}

type ClaimRepository interface {
	Create(ctx context.Context, claim *models.Claim) error
	GetByID(ctx context.Context, claimID string) (*models.Claim, error)
	GetLiveByPostID(ctx context.Context, postID string) (*models.Claim, error)
	ListByClaimant(ctx context.Context, claimantID string) ([]models.Claim, error)
	SetStatus(ctx context.Context, claimID string, status models.ClaimStatus) error
}

type PhotoRepository interface {
	Create(ctx context.Context, photo *models.Photo) error
	GetByPhotoID(ctx context.Context, photoID string) (*models.Photo, error)
	ListByPostID(ctx context.Context, postID string) ([]models.Photo, error)
	Delete(ctx context.Context, photoID string) error
}

type TablesRepository interface {
	CountTablesDB() (int, error)
}

type Repository struct {
	Post   PostRepository
	Claim  ClaimRepository
	Photo  PhotoRepository
	Tables TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Post:   NewPostRepository(db),
		Claim:  NewClaimRepository(db),
		Photo:  NewPhotoRepository(db),
		Tables: NewTablesRepository(db),
	}
}
