package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"foodshare/internal/lifecycle"
	"foodshare/internal/models"
	"foodshare/internal/repository"
)

// ClaimService - координатор заявок. Владеет транзакцией бронирования:
// из N одновременных SubmitClaim по одному посту успешен ровно один,
// остальные получают ErrAlreadyClaimed.
type ClaimService interface {
	SubmitClaim(ctx context.Context, postID, claimantID string) (*models.Claim, models.PostStatus, error)
	ConfirmPickup(ctx context.Context, postID, actorID string) (models.PostStatus, error)
	ConfirmCompletion(ctx context.Context, postID, actorID string) (models.PostStatus, error)
}

type claimService struct {
	postRepo  repository.PostRepository
	claimRepo repository.ClaimRepository
}

func NewClaimService(postRepo repository.PostRepository, claimRepo repository.ClaimRepository) ClaimService {
	return &claimService{
		postRepo:  postRepo,
		claimRepo: claimRepo,
	}
}

func (s *claimService) SubmitClaim(ctx context.Context, postID, claimantID string) (*models.Claim, models.PostStatus, error) {
	// read post
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, "", err
	}

	// checking guards before creating anything
	if claimantID == post.OwnerID {
		return nil, post.Status, fmt.Errorf("нельзя забронировать свой пост: %w", models.ErrInvalidClaimant)
	}
	if post.Kind != models.KindDonate {
		return nil, post.Status, fmt.Errorf("заявки принимаются только на посты Donate: %w", models.ErrInvalidClaimant)
	}
	if post.Status == models.PostStatusClaimed {
		return nil, post.Status, fmt.Errorf("по посту уже есть заявка: %w", models.ErrAlreadyClaimed)
	}
	if post.Status != models.PostStatusActive {
		return nil, post.Status, fmt.Errorf("пост в статусе %s: %w", post.Status, models.ErrNotAvailable)
	}

	// state machine confirms the edge
	next, err := lifecycle.Next(post.Status, lifecycle.EventClaimAccepted, lifecycle.Context{
		Kind:    post.Kind,
		OwnerID: post.OwnerID,
		ActorID: claimantID,
		Now:     time.Now(),
	})
	if err != nil {
		return nil, post.Status, err
	}

	// создаем заявку: Pending и сразу Accepted - модель одного
	// победителя, шага одобрения владельцем нет
	claim := &models.Claim{
		PostID:     postID,
		ClaimantID: claimantID,
		Status:     models.ClaimStatusPending,
	}

	if err := s.claimRepo.Create(ctx, claim); err != nil {
		return nil, post.Status, err
	}

	if err := s.claimRepo.SetStatus(ctx, claim.ClaimID, models.ClaimStatusAccepted); err != nil {
		s.rollbackClaim(ctx, claim.ClaimID)
		return nil, post.Status, err
	}
	claim.Status = models.ClaimStatusAccepted

	// условная смена статуса решает гонку: проигравший откатывает
	// свою заявку и уходит с ErrAlreadyClaimed
	if err := s.postRepo.CompareAndSetStatus(ctx, postID, models.PostStatusActive, next); err != nil {
		s.rollbackClaim(ctx, claim.ClaimID)

		if errors.Is(err, models.ErrStatusConflict) {
			return nil, "", fmt.Errorf("другая заявка успела раньше: %w", models.ErrAlreadyClaimed)
		}
		return nil, "", err
	}

	return claim, next, nil
}

// rollbackClaim переводит только что созданную заявку в Rejected,
// чтобы после неудачной попытки не осталось висящей Pending/Accepted
func (s *claimService) rollbackClaim(ctx context.Context, claimID string) {
	if err := s.claimRepo.SetStatus(ctx, claimID, models.ClaimStatusRejected); err != nil {
		log.Printf("не удалось откатить заявку %s: %v", claimID, err)
	}
}

func (s *claimService) ConfirmPickup(ctx context.Context, postID, actorID string) (models.PostStatus, error) {
	return s.advance(ctx, postID, actorID, lifecycle.EventPickupConfirmed, models.PostStatusClaimed)
}

func (s *claimService) ConfirmCompletion(ctx context.Context, postID, actorID string) (models.PostStatus, error) {
	return s.advance(ctx, postID, actorID, lifecycle.EventCompletionConfirmed, models.PostStatusPickedUp)
}

// advance проводит пост через переход подтверждения: guard машины
// состояний, затем условная смена статуса
func (s *claimService) advance(ctx context.Context, postID, actorID string, event lifecycle.Event, expected models.PostStatus) (models.PostStatus, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return "", err
	}

	mctx := lifecycle.Context{
		Kind:    post.Kind,
		OwnerID: post.OwnerID,
		ActorID: actorID,
		Now:     time.Now(),
	}

	claim, err := s.claimRepo.GetLiveByPostID(ctx, postID)
	if err == nil {
		mctx.ClaimantID = claim.ClaimantID
		mctx.HasLiveClaim = true
	} else if !errors.Is(err, models.ErrClaimNotFound) {
		return "", err
	}

	next, err := lifecycle.Next(post.Status, event, mctx)
	if err != nil {
		return post.Status, err
	}

	if err := s.postRepo.CompareAndSetStatus(ctx, postID, expected, next); err != nil {
		if errors.Is(err, models.ErrStatusConflict) {
			// статус ушел из-под вызова - для вызывающего это
			// несуществующий переход
			return "", fmt.Errorf("статус поста изменился: %w", models.ErrInvalidTransition)
		}
		return "", err
	}

	return next, nil
}
