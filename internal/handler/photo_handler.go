package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type PhotoResponse struct {
	PhotoID   string `json:"photoId"`
	PostID    string `json:"postId"`
	PhotoURL  string `json:"photoUrl"`
	FileName  string `json:"fileName"`
	FileSize  int64  `json:"fileSize"`
	MimeType  string `json:"mimeType"`
	CreatedAt string `json:"createdAt"`
}

func (h *Handlers) AddPhoto(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	// we receive a post on id
	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	// we check that only the owner can add
	if userID != post.OwnerID {
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
		return
	}

	// setting the size limit from the config
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "Ошибка при обработке файла", http.StatusBadRequest)
		}
		return
	}

	// getting the file
	file, handler, err := r.FormFile("photo")
	if err != nil {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// formats photo
	allowedTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}

	// check formats
	contentType := handler.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return
	}

	photo, err := h.PostService.AddPhoto(r.Context(), postID, handler.Filename, file, handler.Size)
	if err != nil {
		WriteError(w, "Ошибка загрузки фото", http.StatusInternalServerError)
		return
	}

	// forming the response
	response := PhotoResponse{
		PhotoID:   photo.PhotoID,
		PostID:    photo.PostID,
		PhotoURL:  photo.PhotoURL,
		FileName:  handler.Filename,
		FileSize:  handler.Size,
		MimeType:  contentType,
		CreatedAt: photo.CreatedAt.Format(time.RFC3339),
	}

	WriteSuccess(w, response, http.StatusCreated)
}

func (h *Handlers) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	postID := vars["id"]
	photoID := vars["photoId"]

	// get post by id
	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	// we check that only the owner can delete
	if userID != post.OwnerID {
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
		return
	}

	// delete photo
	err = h.PostService.DeletePhoto(r.Context(), photoID)
	if err != nil {
		WriteError(w, "Ошибка удаления фото", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Фото успешно удалено"}, http.StatusOK)
}
