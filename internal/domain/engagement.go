package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a sanitized remark left on a term.
type Comment struct {
	ID        uuid.UUID
	TermID    uuid.UUID
	UserID    uuid.UUID
	Content   string
	CreatedAt time.Time

	AuthorName string
}

// LikeStatus is the like state of a term from one user's point of view.
type LikeStatus struct {
	Liked bool
	Count int
}

// Report flags a term for admin attention.
type Report struct {
	ID         uuid.UUID
	TermID     uuid.UUID
	ReporterID uuid.UUID
	Reason     string
	Details    string
	Status     ReportStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	TermTitle string
}

// ReportFilter narrows report listings.
type ReportFilter struct {
	ReporterID *uuid.UUID
	Status     *ReportStatus
	Limit      int
	Offset     int
}

// Notification is a message delivered to a single user.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ActorID   *uuid.UUID
	Type      NotificationType
	TermID    *uuid.UUID
	Message   string
	Read      bool
	CreatedAt time.Time
}
