package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"foodshare/internal/models"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse - стандартный успешный ответ с сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteDomainError сопоставляет типизированные ошибки ядра с HTTP-кодами
func WriteDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrPostNotFound), errors.Is(err, models.ErrClaimNotFound):
		WriteError(w, "Пост не найден", http.StatusNotFound)
	case errors.Is(err, models.ErrInvalidClaimant):
		WriteError(w, "Нельзя забронировать этот пост", http.StatusForbidden)
	case errors.Is(err, models.ErrPermissionDenied):
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
	case errors.Is(err, models.ErrNotAvailable):
		WriteError(w, "Пост недоступен для заявки", http.StatusConflict)
	case errors.Is(err, models.ErrAlreadyClaimed):
		WriteError(w, "Пост уже забронирован", http.StatusConflict)
	case errors.Is(err, models.ErrInvalidTransition):
		WriteError(w, "Недопустимый переход статуса", http.StatusConflict)
	case errors.Is(err, models.ErrValidationFailed):
		WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
