package test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodshare/internal/config"
	handlers "foodshare/internal/handler"
	"foodshare/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestHandlers(claimService *MockClaimService, postService *MockPostService) *handlers.Handlers {
	return &handlers.Handlers{
		PostService:  postService,
		ClaimService: claimService,
		Cfg:          &config.Config{},
		Validate:     validator.New(),
	}
}

func TestClaimPostHandler(t *testing.T) {
	tests := []struct {
		name           string
		userID         string
		mockSetup      func(*MockClaimService)
		expectedStatus int
	}{
		{
			name:   "Успешная заявка",
			userID: "claimant-1",
			mockSetup: func(s *MockClaimService) {
				s.On("SubmitClaim", mock.Anything, "post-1", "claimant-1").
					Return(&models.Claim{
						ClaimID:    "claim-1",
						PostID:     "post-1",
						ClaimantID: "claimant-1",
						Status:     models.ClaimStatusAccepted,
					}, models.PostStatusClaimed, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "Пост уже забронирован",
			userID: "claimant-2",
			mockSetup: func(s *MockClaimService) {
				s.On("SubmitClaim", mock.Anything, "post-1", "claimant-2").
					Return(nil, models.PostStatus(""), models.ErrAlreadyClaimed)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "Владелец бронирует свой пост",
			userID: "owner-1",
			mockSetup: func(s *MockClaimService) {
				s.On("SubmitClaim", mock.Anything, "post-1", "owner-1").
					Return(nil, models.PostStatus(""), models.ErrInvalidClaimant)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "Пост не найден",
			userID: "claimant-1",
			mockSetup: func(s *MockClaimService) {
				s.On("SubmitClaim", mock.Anything, "post-1", "claimant-1").
					Return(nil, models.PostStatus(""), models.ErrPostNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "Пост не активен",
			userID: "claimant-1",
			mockSetup: func(s *MockClaimService) {
				s.On("SubmitClaim", mock.Anything, "post-1", "claimant-1").
					Return(nil, models.PostStatus(""), models.ErrNotAvailable)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClaimService := new(MockClaimService)
			tt.mockSetup(mockClaimService)

			handler := newTestHandlers(mockClaimService, new(MockPostService))

			req := httptest.NewRequest(http.MethodPost, "/api/posts/post-1/claim", nil)
			req = req.WithContext(context.WithValue(req.Context(), "userID", tt.userID))
			req = mux.SetURLVars(req, map[string]string{"id": "post-1"})

			rr := httptest.NewRecorder()
			handler.ClaimPost(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusCreated {
				var response handlers.ClaimResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
				assert.Equal(t, models.PostStatusClaimed, response.PostStatus)
				assert.Equal(t, models.ClaimStatusAccepted, response.Claim.Status)
			}

			mockClaimService.AssertExpectations(t)
		})
	}
}

func TestClaimPostHandler_БезАвторизации(t *testing.T) {
	handler := newTestHandlers(new(MockClaimService), new(MockPostService))

	req := httptest.NewRequest(http.MethodPost, "/api/posts/post-1/claim", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "post-1"})

	rr := httptest.NewRecorder()
	handler.ClaimPost(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestConfirmPickupHandler(t *testing.T) {
	tests := []struct {
		name           string
		actorID        string
		mockSetup      func(*MockClaimService)
		expectedStatus int
	}{
		{
			name:    "Заявитель подтверждает передачу",
			actorID: "claimant-1",
			mockSetup: func(s *MockClaimService) {
				s.On("ConfirmPickup", mock.Anything, "post-1", "claimant-1").
					Return(models.PostStatusPickedUp, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "Посторонний пользователь",
			actorID: "stranger",
			mockSetup: func(s *MockClaimService) {
				s.On("ConfirmPickup", mock.Anything, "post-1", "stranger").
					Return(models.PostStatus(""), models.ErrPermissionDenied)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:    "Пост не в статусе Claimed",
			actorID: "claimant-1",
			mockSetup: func(s *MockClaimService) {
				s.On("ConfirmPickup", mock.Anything, "post-1", "claimant-1").
					Return(models.PostStatus(""), models.ErrInvalidTransition)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClaimService := new(MockClaimService)
			tt.mockSetup(mockClaimService)

			handler := newTestHandlers(mockClaimService, new(MockPostService))

			req := httptest.NewRequest(http.MethodPost, "/api/posts/post-1/pickup", nil)
			req = req.WithContext(context.WithValue(req.Context(), "userID", tt.actorID))
			req = mux.SetURLVars(req, map[string]string{"id": "post-1"})

			rr := httptest.NewRecorder()
			handler.ConfirmPickup(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var response handlers.StatusResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
				assert.Equal(t, models.PostStatusPickedUp, response.PostStatus)
			}

			mockClaimService.AssertExpectations(t)
		})
	}
}

func TestConfirmCompletionHandler(t *testing.T) {
	mockClaimService := new(MockClaimService)
	mockClaimService.On("ConfirmCompletion", mock.Anything, "post-1", "owner-1").
		Return(models.PostStatusCompleted, nil)

	handler := newTestHandlers(mockClaimService, new(MockPostService))

	req := httptest.NewRequest(http.MethodPost, "/api/posts/post-1/complete", nil)
	req = req.WithContext(context.WithValue(req.Context(), "userID", "owner-1"))
	req = mux.SetURLVars(req, map[string]string{"id": "post-1"})

	rr := httptest.NewRecorder()
	handler.ConfirmCompletion(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response handlers.StatusResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, models.PostStatusCompleted, response.PostStatus)
	assert.Equal(t, "post-1", response.PostID)

	mockClaimService.AssertExpectations(t)
}
