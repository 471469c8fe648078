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

type ClaimRepositoryImpl struct {
	db *sqlx.DB
}

func NewClaimRepository(db *sqlx.DB) *ClaimRepositoryImpl {
	return &ClaimRepositoryImpl{db: db}
}

// Create пишет новую заявку. Заявки создает только координатор,
// прямой записи от пользователя нет.
func (r *ClaimRepositoryImpl) Create(ctx context.Context, claim *models.Claim) error {
	query := `
        INSERT INTO claims
        (claim_id, post_id, claimant_id, status, created_at, updated_at)
        VALUES
        (:claim_id, :post_id, :claimant_id, :status, :created_at, :updated_at)
    `

	if claim.ClaimID == "" {
		claim.ClaimID = uuid.New().String()
	}

	now := time.Now()
	claim.CreatedAt = now
	claim.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, claim)
	if err != nil {
		return fmt.Errorf("ошибка при создании заявки: %w", err)
	}

	return nil
}

func (r *ClaimRepositoryImpl) GetByID(ctx context.Context, claimID string) (*models.Claim, error) {
	query := `
        SELECT * FROM claims
        WHERE claim_id = $1
    `

	var claim models.Claim
	err := r.db.GetContext(ctx, &claim, query, claimID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("заявка с ID %s: %w", claimID, models.ErrClaimNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении заявки: %w", err)
	}

	return &claim, nil
}

// GetLiveByPostID возвращает живую заявку поста - не Rejected и не
// Cancelled. По инварианту такая заявка не больше одной.
func (r *ClaimRepositoryImpl) GetLiveByPostID(ctx context.Context, postID string) (*models.Claim, error) {
	query := `
        SELECT * FROM claims
        WHERE post_id = $1 AND status NOT IN ('Rejected', 'Cancelled')
    `

	var claim models.Claim
	err := r.db.GetContext(ctx, &claim, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("живая заявка поста %s: %w", postID, models.ErrClaimNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении заявки поста: %w", err)
	}

	return &claim, nil
}

func (r *ClaimRepositoryImpl) ListByClaimant(ctx context.Context, claimantID string) ([]models.Claim, error) {
	query := `
        SELECT * FROM claims
        WHERE claimant_id = $1
        ORDER BY created_at DESC
    `

	var claims []models.Claim
	err := r.db.SelectContext(ctx, &claims, query, claimantID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении заявок пользователя %s: %w", claimantID, err)
	}

	return claims, nil
}

func (r *ClaimRepositoryImpl) SetStatus(ctx context.Context, claimID string, status models.ClaimStatus) error {
	query := `
		UPDATE claims SET
			status = $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE claim_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, status, claimID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении статуса заявки: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("заявка с ID %s: %w", claimID, models.ErrClaimNotFound)
	}

	return nil
}
