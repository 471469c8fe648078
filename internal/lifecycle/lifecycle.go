package lifecycle

import (
	"fmt"
	"time"

	"foodshare/internal/models"
)

// Event - событие, двигающее пост по жизненному циклу
type Event string

const (
	EventClaimAccepted       Event = "claim_accepted"
	EventExpiryReached       Event = "expiry_reached"
	EventPickupConfirmed     Event = "pickup_confirmed"
	EventCompletionConfirmed Event = "completion_confirmed"
)

// Context - данные, нужные guard-условиям переходов. Сама машина
// ничего не читает и не пишет: вызывающая сторона применяет результат
// через условное обновление в репозитории.
type Context struct {
	Kind         models.PostKind
	OwnerID      string
	ActorID      string
	ClaimantID   string // заявитель живой заявки, если она есть
	HasLiveClaim bool
	ExpiresAt    time.Time
	Now          time.Time
}

// Next возвращает новый статус поста для пары (current, event) либо
// ошибку, если перехода нет или guard не выполнен. Допустимые ребра:
//
//	Active -> Claimed   (claim accepted: Donate, не владелец, нет живой заявки)
//	Active -> Expired   (expiry reached: now >= expiresAt)
//	Claimed -> PickedUp (pickup confirmed: владелец или заявитель)
//	PickedUp -> Completed (completion confirmed: владелец)
//
// Из Claimed/PickedUp событие истечения не срабатывает, чтобы не бросить
// начатый обмен. Completed и Expired терминальны.
func Next(current models.PostStatus, event Event, ctx Context) (models.PostStatus, error) {
	if current.IsTerminal() {
		return current, fmt.Errorf("статус %s терминальный: %w", current, models.ErrInvalidTransition)
	}

	switch current {
	case models.PostStatusActive:
		switch event {
		case EventClaimAccepted:
			if ctx.Kind != models.KindDonate {
				return current, fmt.Errorf("заявки принимаются только на посты Donate: %w", models.ErrInvalidClaimant)
			}
			if ctx.ActorID == ctx.OwnerID {
				return current, fmt.Errorf("нельзя забронировать свой пост: %w", models.ErrInvalidClaimant)
			}
			if ctx.HasLiveClaim {
				return current, fmt.Errorf("по посту уже есть живая заявка: %w", models.ErrAlreadyClaimed)
			}
			return models.PostStatusClaimed, nil
		case EventExpiryReached:
			if ctx.Now.Before(ctx.ExpiresAt) {
				return current, fmt.Errorf("срок поста еще не истек: %w", models.ErrInvalidTransition)
			}
			return models.PostStatusExpired, nil
		}

	case models.PostStatusClaimed:
		if event == EventPickupConfirmed {
			if ctx.ActorID != ctx.OwnerID && ctx.ActorID != ctx.ClaimantID {
				return current, fmt.Errorf("подтвердить передачу может владелец или заявитель: %w", models.ErrPermissionDenied)
			}
			return models.PostStatusPickedUp, nil
		}

	case models.PostStatusPickedUp:
		if event == EventCompletionConfirmed {
			if ctx.ActorID != ctx.OwnerID {
				return current, fmt.Errorf("завершить обмен может только владелец: %w", models.ErrPermissionDenied)
			}
			return models.PostStatusCompleted, nil
		}
	}

	return current, fmt.Errorf("перехода (%s, %s) не существует: %w", current, event, models.ErrInvalidTransition)
}
