package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"foodshare/internal/lifecycle"
	"foodshare/internal/models"
	"foodshare/internal/repository"
	"foodshare/internal/service"

	"github.com/gorilla/mux"
)

type PostResponse struct {
	PostID      string            `json:"postId"`
	OwnerID     string            `json:"ownerId"`
	Kind        models.PostKind   `json:"kind"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Quantity    string            `json:"quantity"`
	Location    string            `json:"location"`
	ExpiresAt   time.Time         `json:"expiresAt"`
	CreatedAt   time.Time         `json:"createdAt"`
	Status      models.PostStatus `json:"status"`
}

func postResponse(post *models.Post) PostResponse {
	return PostResponse{
		PostID:      post.PostID,
		OwnerID:     post.OwnerID,
		Kind:        post.Kind,
		Title:       post.Title,
		Description: post.Description,
		Quantity:    post.Quantity,
		Location:    post.Location,
		ExpiresAt:   post.ExpiresAt,
		CreatedAt:   post.CreatedAt,
		Status:      post.Status,
	}
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	// правила создания: минимальные длины, непустые количество
	// и место, срок в будущем (проверяется в сервисе)
	var req struct {
		Kind        models.PostKind `json:"kind" validate:"required,oneof=Donate Request"`
		Title       string          `json:"title" validate:"required,min=5"`
		Description string          `json:"description" validate:"required,min=10"`
		Quantity    string          `json:"quantity" validate:"required"`
		Location    string          `json:"location" validate:"required,min=5"`
		ExpiresAt   time.Time       `json:"expiresAt" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreatePostRequest{
		OwnerID:     ownerID,
		Kind:        req.Kind,
		Title:       req.Title,
		Description: req.Description,
		Quantity:    req.Quantity,
		Location:    req.Location,
		ExpiresAt:   req.ExpiresAt,
	}

	// creating a post
	post, err := h.PostService.CreatePost(r.Context(), serviceReq)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, postResponse(post), http.StatusCreated)
}

// GetPosts - витрина: поиск по тексту, фильтр по типу и расстоянию
func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search")

	kind := models.PostKind(r.URL.Query().Get("kind"))
	if kind == "" {
		kind = service.KindAll
	}

	// отсутствие параметра снимает ограничение по расстоянию
	maxDistance := -1.0
	if raw := r.URL.Query().Get("maxDistance"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			WriteError(w, "Неверное значение maxDistance", http.StatusBadRequest)
			return
		}
		maxDistance = parsed
	}

	posts, err := h.BrowseService.Browse(r.Context(), term, kind, maxDistance)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	response := struct {
		*models.Post
		ExpiryState lifecycle.ExpiryState `json:"expiryState"`
	}{
		Post:        post,
		ExpiryState: lifecycle.Classify(post.ExpiresAt, time.Now()),
	}

	WriteSuccess(w, response, http.StatusOK)
}

// GetMyPosts - посты текущего пользователя для профиля
func (h *Handlers) GetMyPosts(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	posts, err := h.PostRepo.ListByOwner(r.Context(), userID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

// GetMyClaims - заявки текущего пользователя для вкладки Claimed Items
func (h *Handlers) GetMyClaims(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	claims, err := h.ClaimRepo.ListByClaimant(r.Context(), userID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, claims, http.StatusOK)
}

// GetMyStats - счетчики профиля
func (h *Handlers) GetMyStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	stats, err := h.PostService.OwnerStats(r.Context(), userID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, stats, http.StatusOK)
}
