package models

import (
	"time"
)

// PostKind - тип поста: отдать еду или попросить еду
type PostKind string

const (
	KindDonate  PostKind = "Donate"
	KindRequest PostKind = "Request"
)

// PostStatus - статус жизненного цикла поста
type PostStatus string

const (
	PostStatusActive    PostStatus = "Active"
	PostStatusClaimed   PostStatus = "Claimed"
	PostStatusPickedUp  PostStatus = "PickedUp"
	PostStatusCompleted PostStatus = "Completed"
	PostStatusExpired   PostStatus = "Expired"
)

// ClaimStatus - статус заявки на пост
type ClaimStatus string

const (
	ClaimStatusPending   ClaimStatus = "Pending"
	ClaimStatusAccepted  ClaimStatus = "Accepted"
	ClaimStatusRejected  ClaimStatus = "Rejected"
	ClaimStatusCancelled ClaimStatus = "Cancelled"
)

// IsTerminal reports whether no further transitions are accepted
func (s PostStatus) IsTerminal() bool {
	return s == PostStatusCompleted || s == PostStatusExpired
}

// IsLive - заявка считается живой, пока она не отклонена и не отменена
func (s ClaimStatus) IsLive() bool {
	return s != ClaimStatusRejected && s != ClaimStatusCancelled
}

type Post struct {
	PostID      string     `json:"postId" db:"post_id"`
	OwnerID     string     `json:"ownerId" db:"owner_id"`
	Kind        PostKind   `json:"kind" db:"kind"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Quantity    string     `json:"quantity" db:"quantity"`
	Location    string     `json:"location" db:"location"`
	ExpiresAt   time.Time  `json:"expiresAt" db:"expires_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
	Status      PostStatus `json:"status" db:"status"`
	Photos      []Photo    `json:"photos" db:"-"`
}

type Claim struct {
	ClaimID    string      `json:"claimId" db:"claim_id"`
	PostID     string      `json:"postId" db:"post_id"`
	ClaimantID string      `json:"claimantId" db:"claimant_id"`
	Status     ClaimStatus `json:"status" db:"status"`
	CreatedAt  time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time   `json:"updatedAt" db:"updated_at"`
}

type Photo struct {
	PhotoID   string    `json:"photoId" db:"photo_id"`
	PostID    string    `json:"postId" db:"post_id"`
	PhotoURL  string    `json:"photoUrl" db:"photo_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
