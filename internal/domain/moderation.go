package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Decision is a moderation verdict recorded on a term.
type Decision struct {
	ID        uuid.UUID
	TermID    uuid.UUID
	UserID    uuid.UUID
	Type      DecisionType
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time

	DeciderName string
	TermTitle   string
}

// Modification is a change to a term proposed by any contributor. Changes is
// informational: resolving a modification never rewrites the term itself.
type Modification struct {
	ID           uuid.UUID
	TermID       uuid.UUID
	ProposerID   uuid.UUID
	Changes      json.RawMessage
	Comment      string
	Status       ModificationStatus
	AdminComment string
	ReviewerID   *uuid.UUID
	ReviewedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	TermTitle    string
	TermAuthorID uuid.UUID
	ProposerName string
}

// IsPending reports whether the modification can still be amended or resolved.
func (m *Modification) IsPending() bool {
	return m.Status == ModificationPending
}

// ModificationFilter narrows modification listings.
type ModificationFilter struct {
	TermID     *uuid.UUID
	Status     *ModificationStatus
	ProposerID *uuid.UUID

	// TermAuthorID restricts to modifications on terms owned by this user.
	TermAuthorID *uuid.UUID
	// ExcludeProposerID drops proposals made by this user.
	ExcludeProposerID *uuid.UUID

	Limit  int
	Offset int
}

// Resolution is the outcome written when a modification is resolved.
type Resolution struct {
	Status       ModificationStatus
	AdminComment string
	ReviewerID   uuid.UUID
	ReviewedAt   time.Time
}
