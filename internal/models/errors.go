package models

import "errors"

// Типизированные ошибки ядра. Обработчики сопоставляют их через errors.Is,
// слои выше оборачивают через fmt.Errorf("...: %w", err).
var (
	ErrPostNotFound      = errors.New("пост не найден")
	ErrClaimNotFound     = errors.New("заявка не найдена")
	ErrInvalidClaimant   = errors.New("недопустимый заявитель")
	ErrNotAvailable      = errors.New("пост недоступен для заявки")
	ErrAlreadyClaimed    = errors.New("пост уже забронирован")
	ErrInvalidTransition = errors.New("недопустимый переход статуса")
	ErrValidationFailed  = errors.New("данные поста не прошли валидацию")
	ErrPermissionDenied  = errors.New("доступ запрещен")

	// ErrStatusConflict - условное обновление проиграло гонку.
	// Наружу не выходит: координатор переводит его в ErrAlreadyClaimed
	// либо в ErrInvalidTransition.
	ErrStatusConflict = errors.New("статус поста изменился параллельно")
)
