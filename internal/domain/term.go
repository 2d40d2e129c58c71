package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category groups terms under a label.
type Category struct {
	ID          uuid.UUID
	Label       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Term is a dictionary entry owned by its author.
type Term struct {
	ID         uuid.UUID
	Title      string
	Definition string
	CategoryID *uuid.UUID
	AuthorID   uuid.UUID
	Status     TermStatus
	Examples   string
	Sources    string
	Remarks    string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Read-model fields populated by list/get queries.
	AuthorName    string
	CategoryLabel string
	LikeCount     int
}

// TermFilter contains filtering/pagination parameters for term searches.
type TermFilter struct {
	Search     *string
	CategoryID *uuid.UUID
	Status     *TermStatus
	AuthorID   *uuid.UUID

	// Unless Privileged is set, only published terms and terms owned by
	// ViewerID are returned.
	Privileged bool
	ViewerID   *uuid.UUID

	// SortBy is one of "title", "created_at", "updated_at".
	SortBy string
	// SortOrder is "ASC" or "DESC".
	SortOrder string
	Limit     int
	Offset    int
}

// TermChanges carries a partial term update. Nil means unchanged.
type TermChanges struct {
	Title         *string
	Definition    *string
	CategoryID    *uuid.UUID
	ClearCategory bool
	Status        *TermStatus
	Examples      *string
	Sources       *string
	Remarks       *string
}

// IsEmpty reports whether no field is set.
func (c TermChanges) IsEmpty() bool {
	return c.Title == nil && c.Definition == nil && c.CategoryID == nil && !c.ClearCategory &&
		c.Status == nil && c.Examples == nil && c.Sources == nil && c.Remarks == nil
}
