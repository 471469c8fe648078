package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"foodshare/internal/config"
	"foodshare/internal/lifecycle"
	"foodshare/internal/models"
	"foodshare/internal/repository"
	"foodshare/internal/storage"

	"github.com/google/uuid"
)

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	OwnerStats(ctx context.Context, ownerID string) (*OwnerStats, error)
	ExpireOverdue(ctx context.Context, now time.Time) (int, error)
	AddPhoto(ctx context.Context, postID, fileName string, file io.Reader, size int64) (*models.Photo, error)
	DeletePhoto(ctx context.Context, photoID string) error
}

// OwnerStats - счетчики профиля пользователя
type OwnerStats struct {
	DonationsMade int `json:"donationsMade"`
	RequestsMade  int `json:"requestsMade"`
}

type postService struct {
	postRepo  repository.PostRepository
	photoRepo repository.PhotoRepository
	storage   storage.Storage
	cfg       *config.Config
}

func NewPostService(postRepo repository.PostRepository, photoRepo repository.PhotoRepository, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo:  postRepo,
		photoRepo: photoRepo,
		storage:   storage,
		cfg:       cfg,
	}
}

func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	// срок годности только в будущем
	if !req.ExpiresAt.After(time.Now()) {
		return nil, fmt.Errorf("срок годности должен быть в будущем: %w", models.ErrValidationFailed)
	}

	if req.Kind != models.KindDonate && req.Kind != models.KindRequest {
		return nil, fmt.Errorf("неизвестный тип поста %q: %w", req.Kind, models.ErrValidationFailed)
	}

	post := &models.Post{
		OwnerID:     req.OwnerID,
		Kind:        req.Kind,
		Title:       req.Title,
		Description: req.Description,
		Quantity:    req.Quantity,
		Location:    req.Location,
		ExpiresAt:   req.ExpiresAt,
		Status:      models.PostStatusActive,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	photos, err := p.photoRepo.ListByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.Photos = photos

	return post, nil
}

func (p *postService) OwnerStats(ctx context.Context, ownerID string) (*OwnerStats, error) {
	donations, err := p.postRepo.CountByOwnerAndKind(ctx, ownerID, models.KindDonate)
	if err != nil {
		return nil, err
	}

	requests, err := p.postRepo.CountByOwnerAndKind(ctx, ownerID, models.KindRequest)
	if err != nil {
		return nil, err
	}

	return &OwnerStats{
		DonationsMade: donations,
		RequestsMade:  requests,
	}, nil
}

// ExpireOverdue переводит просроченные Active посты в Expired.
// Гонку с заявкой решает условное обновление: если пост успели
// забронировать, перевод не срабатывает - после бронирования
// истечение не рвет начатый обмен.
func (p *postService) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	overdue, err := p.postRepo.ListOverdueActive(ctx, now)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, post := range overdue {
		next, err := lifecycle.Next(post.Status, lifecycle.EventExpiryReached, lifecycle.Context{
			Kind:      post.Kind,
			OwnerID:   post.OwnerID,
			ExpiresAt: post.ExpiresAt,
			Now:       now,
		})
		if err != nil {
			continue
		}

		err = p.postRepo.CompareAndSetStatus(ctx, post.PostID, models.PostStatusActive, next)
		if err != nil {
			if errors.Is(err, models.ErrStatusConflict) || errors.Is(err, models.ErrPostNotFound) {
				continue
			}
			return expired, err
		}
		expired++
	}

	return expired, nil
}

func (p *postService) AddPhoto(ctx context.Context, postID, fileName string, file io.Reader, size int64) (*models.Photo, error) {
	objectName, photoURL, err := p.storage.UploadPhoto(ctx, postID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки фото в MinIO: %w", err)
	}

	photo := &models.Photo{
		PhotoID:   uuid.New().String(),
		PostID:    postID,
		PhotoURL:  photoURL,
		CreatedAt: time.Now(),
	}

	err = p.photoRepo.Create(ctx, photo)
	if err != nil {
		p.storage.DeletePhoto(ctx, objectName)
		return nil, fmt.Errorf("ошибка сохранения фото в БД: %w", err)
	}

	return photo, nil
}

func (p *postService) DeletePhoto(ctx context.Context, photoID string) error {
	photo, err := p.photoRepo.GetByPhotoID(ctx, photoID)
	if err != nil {
		return fmt.Errorf("фото не найдено")
	}

	if objectName := p.storage.ObjectNameFromURL(photo.PhotoURL); objectName != "" {
		if err := p.storage.DeletePhoto(ctx, objectName); err != nil {
			log.Printf("Предупреждение: не удалось удалить из MinIO: %v", err)
		}
	}

	if err := p.photoRepo.Delete(ctx, photoID); err != nil {
		return fmt.Errorf("ошибка удаления из БД: %w", err)
	}

	return nil
}
