package test

import (
	"context"
	"io"
	"time"

	"foodshare/internal/models"
	"foodshare/internal/repository"
	"foodshare/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) OwnerStats(ctx context.Context, ownerID string) (*service.OwnerStats, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OwnerStats), args.Error(1)
}

func (m *MockPostService) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

func (m *MockPostService) AddPhoto(ctx context.Context, postID, fileName string, file io.Reader, size int64) (*models.Photo, error) {
	args := m.Called(ctx, postID, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Photo), args.Error(1)
}

func (m *MockPostService) DeletePhoto(ctx context.Context, photoID string) error {
	args := m.Called(ctx, photoID)
	return args.Error(0)
}

type MockClaimService struct {
	mock.Mock
}

func (m *MockClaimService) SubmitClaim(ctx context.Context, postID, claimantID string) (*models.Claim, models.PostStatus, error) {
	args := m.Called(ctx, postID, claimantID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(models.PostStatus), args.Error(2)
	}
	return args.Get(0).(*models.Claim), args.Get(1).(models.PostStatus), args.Error(2)
}

func (m *MockClaimService) ConfirmPickup(ctx context.Context, postID, actorID string) (models.PostStatus, error) {
	args := m.Called(ctx, postID, actorID)
	return args.Get(0).(models.PostStatus), args.Error(1)
}

func (m *MockClaimService) ConfirmCompletion(ctx context.Context, postID, actorID string) (models.PostStatus, error) {
	args := m.Called(ctx, postID, actorID)
	return args.Get(0).(models.PostStatus), args.Error(1)
}

type MockBrowseService struct {
	mock.Mock
}

func (m *MockBrowseService) Browse(ctx context.Context, term string, kind models.PostKind, maxDistance float64) ([]service.BrowsePost, error) {
	args := m.Called(ctx, term, kind, maxDistance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.BrowsePost), args.Error(1)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Post, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) ListOverdueActive(ctx context.Context, now time.Time) ([]models.Post, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) CountByOwnerAndKind(ctx context.Context, ownerID string, kind models.PostKind) (int, error) {
	args := m.Called(ctx, ownerID, kind)
	return args.Int(0), args.Error(1)
}

func (m *MockPostRepository) CompareAndSetStatus(ctx context.Context, postID string, expected, next models.PostStatus) error {
	args := m.Called(ctx, postID, expected, next)
	return args.Error(0)
}

type MockClaimRepository struct {
	mock.Mock
}

func (m *MockClaimRepository) Create(ctx context.Context, claim *models.Claim) error {
	args := m.Called(ctx, claim)
	return args.Error(0)
}

func (m *MockClaimRepository) GetByID(ctx context.Context, claimID string) (*models.Claim, error) {
	args := m.Called(ctx, claimID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Claim), args.Error(1)
}

func (m *MockClaimRepository) GetLiveByPostID(ctx context.Context, postID string) (*models.Claim, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Claim), args.Error(1)
}

func (m *MockClaimRepository) ListByClaimant(ctx context.Context, claimantID string) ([]models.Claim, error) {
	args := m.Called(ctx, claimantID)
	return args.Get(0).([]models.Claim), args.Error(1)
}

func (m *MockClaimRepository) SetStatus(ctx context.Context, claimID string, status models.ClaimStatus) error {
	args := m.Called(ctx, claimID, status)
	return args.Error(0)
}
