package rest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

type userResponse struct {
	ID        uuid.UUID         `json:"id"`
	Email     string            `json:"email"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Role      string            `json:"role"`
	Status    string            `json:"status"`
	Bio       string            `json:"bio,omitempty"`
	Phone     string            `json:"phone,omitempty"`
	Website   string            `json:"website,omitempty"`
	Socials   map[string]string `json:"socials,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role.String(),
		Status:    u.Status.String(),
		Bio:       u.Bio,
		Phone:     u.Phone,
		Website:   u.Website,
		Socials:   u.Socials,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// publicProfileResponse omits contact details that only the owner and
// admins may see.
type publicProfileResponse struct {
	ID        uuid.UUID         `json:"id"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Role      string            `json:"role"`
	Bio       string            `json:"bio,omitempty"`
	Website   string            `json:"website,omitempty"`
	Socials   map[string]string `json:"socials,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

func toPublicProfile(u *domain.User) publicProfileResponse {
	return publicProfileResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role.String(),
		Bio:       u.Bio,
		Website:   u.Website,
		Socials:   u.Socials,
		CreatedAt: u.CreatedAt,
	}
}

type categoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		Label:       c.Label,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type termResponse struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Definition    string     `json:"definition"`
	CategoryID    *uuid.UUID `json:"categoryId"`
	CategoryLabel string     `json:"categoryLabel,omitempty"`
	AuthorID      uuid.UUID  `json:"authorId"`
	AuthorName    string     `json:"authorName,omitempty"`
	Status        string     `json:"status"`
	Examples      string     `json:"examples"`
	Sources       string     `json:"sources"`
	Remarks       string     `json:"remarks"`
	LikeCount     int        `json:"likeCount"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func toTermResponse(t *domain.Term) termResponse {
	return termResponse{
		ID:            t.ID,
		Title:         t.Title,
		Definition:    t.Definition,
		CategoryID:    t.CategoryID,
		CategoryLabel: t.CategoryLabel,
		AuthorID:      t.AuthorID,
		AuthorName:    t.AuthorName,
		Status:        string(t.Status),
		Examples:      t.Examples,
		Sources:       t.Sources,
		Remarks:       t.Remarks,
		LikeCount:     t.LikeCount,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

type decisionResponse struct {
	ID           uuid.UUID `json:"id"`
	TermID       uuid.UUID `json:"termId"`
	TermTitle    string    `json:"termTitle,omitempty"`
	UserID       uuid.UUID `json:"userId"`
	DeciderName  string    `json:"deciderName,omitempty"`
	DecisionType string    `json:"decisionType"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toDecisionResponse(d *domain.Decision) decisionResponse {
	return decisionResponse{
		ID:           d.ID,
		TermID:       d.TermID,
		TermTitle:    d.TermTitle,
		UserID:       d.UserID,
		DeciderName:  d.DeciderName,
		DecisionType: d.Type.String(),
		Comment:      d.Comment,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type modificationResponse struct {
	ID           uuid.UUID       `json:"id"`
	TermID       uuid.UUID       `json:"termId"`
	TermTitle    string          `json:"termTitle,omitempty"`
	ProposerID   uuid.UUID       `json:"proposerId"`
	ProposerName string          `json:"proposerName,omitempty"`
	Changes      json.RawMessage `json:"changes"`
	Comment      string          `json:"comment"`
	Status       string          `json:"status"`
	AdminComment string          `json:"adminComment,omitempty"`
	ReviewerID   *uuid.UUID      `json:"reviewerId,omitempty"`
	ReviewedAt   *time.Time      `json:"reviewedAt,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func toModificationResponse(m *domain.Modification) modificationResponse {
	return modificationResponse{
		ID:           m.ID,
		TermID:       m.TermID,
		TermTitle:    m.TermTitle,
		ProposerID:   m.ProposerID,
		ProposerName: m.ProposerName,
		Changes:      m.Changes,
		Comment:      m.Comment,
		Status:       m.Status.String(),
		AdminComment: m.AdminComment,
		ReviewerID:   m.ReviewerID,
		ReviewedAt:   m.ReviewedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

type commentResponse struct {
	ID         uuid.UUID `json:"id"`
	TermID     uuid.UUID `json:"termId"`
	UserID     uuid.UUID `json:"userId"`
	AuthorName string    `json:"authorName,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:         c.ID,
		TermID:     c.TermID,
		UserID:     c.UserID,
		AuthorName: c.AuthorName,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
	}
}

type reportResponse struct {
	ID         uuid.UUID `json:"id"`
	TermID     uuid.UUID `json:"termId"`
	TermTitle  string    `json:"termTitle,omitempty"`
	ReporterID uuid.UUID `json:"reporterId"`
	Reason     string    `json:"reason"`
	Details    string    `json:"details"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toReportResponse(r *domain.Report) reportResponse {
	return reportResponse{
		ID:         r.ID,
		TermID:     r.TermID,
		TermTitle:  r.TermTitle,
		ReporterID: r.ReporterID,
		Reason:     r.Reason,
		Details:    r.Details,
		Status:     r.Status.String(),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type notificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	Type      string     `json:"type"`
	Message   string     `json:"message"`
	TermID    *uuid.UUID `json:"termId,omitempty"`
	ActorID   *uuid.UUID `json:"actorId,omitempty"`
	Read      bool       `json:"read"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toNotificationResponse(n *domain.Notification) notificationResponse {
	return notificationResponse{
		ID:        n.ID,
		Type:      n.Type.String(),
		Message:   n.Message,
		TermID:    n.TermID,
		ActorID:   n.ActorID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

type likeResponse struct {
	Liked bool `json:"liked"`
	Count int  `json:"count"`
}

// mapSlice converts a slice of domain values with fn.
func mapSlice[T, R any](in []T, fn func(*T) R) []R {
	out := make([]R, len(in))
	for i := range in {
		out[i] = fn(&in[i])
	}
	return out
}
