package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"foodshare/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PhotoRepositoryImpl struct {
	db *sqlx.DB
}

func NewPhotoRepository(db *sqlx.DB) *PhotoRepositoryImpl {
	return &PhotoRepositoryImpl{db: db}
}

func (r *PhotoRepositoryImpl) Create(ctx context.Context, photo *models.Photo) error {
	query := `
		INSERT INTO photos (photo_id, post_id, photo_url, created_at)
		VALUES (:photo_id, :post_id, :photo_url, :created_at)
	`

	if photo.PhotoID == "" {
		photo.PhotoID = uuid.New().String()
	}

	if photo.CreatedAt.IsZero() {
		photo.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, photo)
	if err != nil {
		return fmt.Errorf("ошибка при создании фото: %w", err)
	}

	return nil
}

func (r *PhotoRepositoryImpl) GetByPhotoID(ctx context.Context, photoID string) (*models.Photo, error) {
	query := `SELECT * FROM photos WHERE photo_id = $1`

	var photo models.Photo
	err := r.db.GetContext(ctx, &photo, query, photoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("фото не найдено")
		}
		return nil, fmt.Errorf("ошибка получения фото: %w", err)
	}

	return &photo, nil
}

func (r *PhotoRepositoryImpl) ListByPostID(ctx context.Context, postID string) ([]models.Photo, error) {
	query := `SELECT * FROM photos WHERE post_id = $1 ORDER BY created_at`

	var photos []models.Photo
	err := r.db.SelectContext(ctx, &photos, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении фото поста: %w", err)
	}

	return photos, nil
}

func (r *PhotoRepositoryImpl) Delete(ctx context.Context, photoID string) error {
	query := `DELETE FROM photos WHERE photo_id = $1`

	result, err := r.db.ExecContext(ctx, query, photoID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении фото: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("фото не найдено")
	}

	return nil
}
