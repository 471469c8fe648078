package lifecycle

import (
	"testing"
	"time"

	"foodshare/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func claimCtx(actorID string) Context {
	return Context{
		Kind:      models.KindDonate,
		OwnerID:   "owner-1",
		ActorID:   actorID,
		ExpiresAt: time.Now().Add(24 * time.Hour),
		Now:       time.Now(),
	}
}

func TestNext_ValidTransitions(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		current models.PostStatus
		event   Event
		ctx     Context
		want    models.PostStatus
	}{
		{
			name:    "Active -> Claimed по принятой заявке",
			current: models.PostStatusActive,
			event:   EventClaimAccepted,
			ctx:     claimCtx("claimant-1"),
			want:    models.PostStatusClaimed,
		},
		{
			name:    "Active -> Expired по истечению срока",
			current: models.PostStatusActive,
			event:   EventExpiryReached,
			ctx: Context{
				Kind:      models.KindDonate,
				OwnerID:   "owner-1",
				ExpiresAt: now.Add(-time.Second),
				Now:       now,
			},
			want: models.PostStatusExpired,
		},
		{
			name:    "Claimed -> PickedUp подтверждает владелец",
			current: models.PostStatusClaimed,
			event:   EventPickupConfirmed,
			ctx: Context{
				Kind:         models.KindDonate,
				OwnerID:      "owner-1",
				ActorID:      "owner-1",
				ClaimantID:   "claimant-1",
				HasLiveClaim: true,
			},
			want: models.PostStatusPickedUp,
		},
		{
			name:    "Claimed -> PickedUp подтверждает заявитель",
			current: models.PostStatusClaimed,
			event:   EventPickupConfirmed,
			ctx: Context{
				Kind:         models.KindDonate,
				OwnerID:      "owner-1",
				ActorID:      "claimant-1",
				ClaimantID:   "claimant-1",
				HasLiveClaim: true,
			},
			want: models.PostStatusPickedUp,
		},
		{
			name:    "PickedUp -> Completed подтверждает владелец",
			current: models.PostStatusPickedUp,
			event:   EventCompletionConfirmed,
			ctx: Context{
				Kind:    models.KindDonate,
				OwnerID: "owner-1",
				ActorID: "owner-1",
			},
			want: models.PostStatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Next(tt.current, tt.event, tt.ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNext_Guards(t *testing.T) {
	tests := []struct {
		name    string
		current models.PostStatus
		event   Event
		ctx     Context
		wantErr error
	}{
		{
			name:    "Нельзя забронировать свой пост",
			current: models.PostStatusActive,
			event:   EventClaimAccepted,
			ctx:     claimCtx("owner-1"),
			wantErr: models.ErrInvalidClaimant,
		},
		{
			name:    "Заявки только на посты Donate",
			current: models.PostStatusActive,
			event:   EventClaimAccepted,
			ctx: Context{
				Kind:    models.KindRequest,
				OwnerID: "owner-1",
				ActorID: "claimant-1",
			},
			wantErr: models.ErrInvalidClaimant,
		},
		{
			name:    "Живая заявка блокирует новую",
			current: models.PostStatusActive,
			event:   EventClaimAccepted,
			ctx: Context{
				Kind:         models.KindDonate,
				OwnerID:      "owner-1",
				ActorID:      "claimant-2",
				HasLiveClaim: true,
			},
			wantErr: models.ErrAlreadyClaimed,
		},
		{
			name:    "Истечение не срабатывает до срока",
			current: models.PostStatusActive,
			event:   EventExpiryReached,
			ctx: Context{
				Kind:      models.KindDonate,
				ExpiresAt: time.Now().Add(time.Hour),
				Now:       time.Now(),
			},
			wantErr: models.ErrInvalidTransition,
		},
		{
			name:    "Передачу не подтверждает посторонний",
			current: models.PostStatusClaimed,
			event:   EventPickupConfirmed,
			ctx: Context{
				Kind:         models.KindDonate,
				OwnerID:      "owner-1",
				ActorID:      "stranger",
				ClaimantID:   "claimant-1",
				HasLiveClaim: true,
			},
			wantErr: models.ErrPermissionDenied,
		},
		{
			name:    "Завершение не подтверждает заявитель",
			current: models.PostStatusPickedUp,
			event:   EventCompletionConfirmed,
			ctx: Context{
				Kind:    models.KindDonate,
				OwnerID: "owner-1",
				ActorID: "claimant-1",
			},
			wantErr: models.ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Next(tt.current, tt.event, tt.ctx)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			// статус не меняется при отказе
			assert.Equal(t, tt.current, got)
		})
	}
}

// Полное замыкание таблицы переходов: любая пара (статус, событие)
// вне таблицы возвращает ErrInvalidTransition и не меняет статус
func TestNext_TransitionClosure(t *testing.T) {
	allStatuses := []models.PostStatus{
		models.PostStatusActive,
		models.PostStatusClaimed,
		models.PostStatusPickedUp,
		models.PostStatusCompleted,
		models.PostStatusExpired,
	}
	allEvents := []Event{
		EventClaimAccepted,
		EventExpiryReached,
		EventPickupConfirmed,
		EventCompletionConfirmed,
	}

	valid := map[models.PostStatus]map[Event]bool{
		models.PostStatusActive:   {EventClaimAccepted: true, EventExpiryReached: true},
		models.PostStatusClaimed:  {EventPickupConfirmed: true},
		models.PostStatusPickedUp: {EventCompletionConfirmed: true},
	}

	// guard-контекст, при котором все табличные переходы разрешены
	ctx := Context{
		Kind:         models.KindDonate,
		OwnerID:      "owner-1",
		ActorID:      "owner-1",
		ClaimantID:   "claimant-1",
		HasLiveClaim: false,
		ExpiresAt:    time.Now().Add(-time.Minute),
		Now:          time.Now(),
	}
	claimantCtx := ctx
	claimantCtx.ActorID = "claimant-1"

	for _, status := range allStatuses {
		for _, event := range allEvents {
			c := ctx
			if event == EventClaimAccepted {
				c = claimantCtx
			}

			got, err := Next(status, event, c)

			if valid[status][event] {
				assert.NoError(t, err, "переход (%s, %s) должен быть разрешен", status, event)
				continue
			}

			assert.ErrorIs(t, err, models.ErrInvalidTransition, "переход (%s, %s) должен быть запрещен", status, event)
			assert.Equal(t, status, got, "статус (%s, %s) не должен меняться", status, event)
		}
	}
}

// Терминальная стабильность: из Completed и Expired не выходит ни одно событие
func TestNext_TerminalStability(t *testing.T) {
	events := []Event{
		EventClaimAccepted,
		EventExpiryReached,
		EventPickupConfirmed,
		EventCompletionConfirmed,
	}

	for _, status := range []models.PostStatus{models.PostStatusCompleted, models.PostStatusExpired} {
		for _, event := range events {
			got, err := Next(status, event, claimCtx("claimant-1"))
			assert.ErrorIs(t, err, models.ErrInvalidTransition)
			assert.Equal(t, status, got)
		}
	}
}
