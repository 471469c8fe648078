package handlers

import (
	"net/http"

	"foodshare/internal/models"

	"github.com/gorilla/mux"
)

type ClaimResponse struct {
	Claim      *models.Claim     `json:"claim"`
	PostStatus models.PostStatus `json:"postStatus"`
}

type StatusResponse struct {
	PostID     string            `json:"postId"`
	PostStatus models.PostStatus `json:"postStatus"`
}

// ClaimPost - заявка на бронирование поста. Побеждает ровно один из
// одновременных вызовов, остальным вернется 409.
func (h *Handlers) ClaimPost(w http.ResponseWriter, r *http.Request) {
	claimantID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	claim, status, err := h.ClaimService.SubmitClaim(r.Context(), postID, claimantID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, ClaimResponse{Claim: claim, PostStatus: status}, http.StatusCreated)
}

// ConfirmPickup подтверждает передачу еды (владелец или заявитель)
func (h *Handlers) ConfirmPickup(w http.ResponseWriter, r *http.Request) {
	actorID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	status, err := h.ClaimService.ConfirmPickup(r.Context(), postID, actorID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, StatusResponse{PostID: postID, PostStatus: status}, http.StatusOK)
}

// ConfirmCompletion завершает обмен (только владелец)
func (h *Handlers) ConfirmCompletion(w http.ResponseWriter, r *http.Request) {
	actorID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	status, err := h.ClaimService.ConfirmCompletion(r.Context(), postID, actorID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, StatusResponse{PostID: postID, PostStatus: status}, http.StatusOK)
}
