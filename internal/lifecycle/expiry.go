package lifecycle

import "time"

// ExpiryState - производное состояние поста относительно срока годности
type ExpiryState string

const (
	ExpiryFresh        ExpiryState = "Fresh"
	ExpiryExpiringSoon ExpiryState = "ExpiringSoon"
	ExpiryExpired      ExpiryState = "Expired"
)

// ExpiringSoonWindow - за сколько до истечения пост помечается "скоро истечет"
const ExpiringSoonWindow = 48 * time.Hour

// Classify определяет состояние срока годности поста. Чистая функция,
// используется и для отображения, и как условие события EventExpiryReached.
func Classify(expiresAt, now time.Time) ExpiryState {
	if expiresAt.Before(now) {
		return ExpiryExpired
	}
	if expiresAt.Sub(now) <= ExpiringSoonWindow {
		return ExpiryExpiringSoon
	}
	return ExpiryFresh
}
