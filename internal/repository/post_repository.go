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

type PostRepositoryImpl struct {
	db *sqlx.DB
}

type CreatePostRequest struct {
	OwnerID     string          `json:"owner_id"`
	Kind        models.PostKind `json:"kind"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Quantity    string          `json:"quantity"`
	Location    string          `json:"location"`
	ExpiresAt   time.Time       `json:"expires_at"`
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts
        (post_id, owner_id, kind, title, description, quantity, location, expires_at, status, created_at, updated_at)
        VALUES
        (:post_id, :owner_id, :kind, :title, :description, :quantity, :location, :expires_at, :status, :created_at, :updated_at)
    `

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `
        SELECT * FROM posts
        WHERE post_id = $1
    `

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %s: %w", postID, models.ErrPostNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

// ListAll возвращает все посты от новых к старым - в этом порядке
// их ожидает браузинг
func (r *PostRepositoryImpl) ListAll(ctx context.Context) ([]models.Post, error) {
	query := `
        SELECT * FROM posts
        ORDER BY created_at DESC
    `

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка постов: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]models.Post, error) {
	query := `
        SELECT * FROM posts
        WHERE owner_id = $1
        ORDER BY created_at DESC
    `

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов пользователя %s: %w", ownerID, err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) ListOverdueActive(ctx context.Context, now time.Time) ([]models.Post, error) {
	query := `
        SELECT * FROM posts
        WHERE status = 'Active' AND expires_at < $1
    `

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, now)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении просроченных постов: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) CountByOwnerAndKind(ctx context.Context, ownerID string, kind models.PostKind) (int, error) {
	query := `
		SELECT COUNT(*) FROM posts
		WHERE owner_id = $1 AND kind = $2
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, ownerID, kind)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчете постов пользователя: %w", err)
	}

	return count, nil
}

// CompareAndSetStatus - единственная точка смены статуса поста.
// Одно условное обновление: из двух конкурирующих вызовов с одинаковым
// expected строку обновит ровно один, второй получит ErrStatusConflict.
// Читать-потом-писать статус нельзя нигде.
func (r *PostRepositoryImpl) CompareAndSetStatus(ctx context.Context, postID string, expected, next models.PostStatus) error {
	query := `
		UPDATE posts SET
			status = $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE post_id = $2 AND status = $3
	`

	result, err := r.db.ExecContext(ctx, query, next, postID, expected)
	if err != nil {
		return fmt.Errorf("ошибка при смене статуса поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		// ноль строк - либо поста нет, либо статус уже не expected
		var exists bool
		err = r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM posts WHERE post_id = $1)`, postID)
		if err != nil {
			return fmt.Errorf("ошибка при проверке существования поста: %w", err)
		}
		if !exists {
			return fmt.Errorf("пост с ID %s: %w", postID, models.ErrPostNotFound)
		}
		return fmt.Errorf("пост %s не в статусе %s: %w", postID, expected, models.ErrStatusConflict)
	}

	return nil
}
