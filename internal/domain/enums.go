package domain

import "strings"

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleResearcher UserRole = "researcher"
	UserRoleAuthor     UserRole = "author"
	UserRoleAdmin      UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleResearcher, UserRoleAuthor, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// NormalizeRole maps a raw role string, including legacy aliases, onto the
// closed role set. The second return value is false for unknown roles.
func NormalizeRole(raw string) (UserRole, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "researcher", "chercheur":
		return UserRoleResearcher, true
	case "author", "auteur":
		return UserRoleAuthor, true
	case "admin", "administrator", "administrateur":
		return UserRoleAdmin, true
	}
	return "", false
}

// UserStatus represents the lifecycle state of a user account.
type UserStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusRejected  UserStatus = "rejected"
	UserStatusSuspended UserStatus = "suspended"
)

func (s UserStatus) String() string { return string(s) }

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusPending, UserStatusActive, UserStatusRejected, UserStatusSuspended:
		return true
	}
	return false
}

// NormalizeStatus maps a raw status string onto the closed status set.
// "confirmed" and "approved" are legacy spellings of active.
func NormalizeStatus(raw string) (UserStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return UserStatusPending, true
	case "active", "confirmed", "approved":
		return UserStatusActive, true
	case "rejected":
		return UserStatusRejected, true
	case "suspended":
		return UserStatusSuspended, true
	}
	return "", false
}

// InitialStatusFor returns the status a freshly registered account gets.
// Authors wait for admin approval; everybody else starts active.
func InitialStatusFor(role UserRole) UserStatus {
	if role == UserRoleAuthor {
		return UserStatusPending
	}
	return UserStatusActive
}

// TermStatus is the publication state of a term.
type TermStatus string

const (
	TermStatusDraft     TermStatus = "draft"
	TermStatusPending   TermStatus = "pending"
	TermStatusPublished TermStatus = "published"
	TermStatusRejected  TermStatus = "rejected"
)

func (s TermStatus) String() string { return string(s) }

func (s TermStatus) IsValid() bool {
	switch s {
	case TermStatusDraft, TermStatusPending, TermStatusPublished, TermStatusRejected:
		return true
	}
	return false
}

// NormalizeTermStatus accepts "review" as a synonym of pending.
func NormalizeTermStatus(raw string) (TermStatus, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "review" {
		return TermStatusPending, true
	}
	ts := TermStatus(s)
	return ts, ts.IsValid()
}

// DecisionType is the verdict a moderator records on a term.
type DecisionType string

const (
	DecisionApproved          DecisionType = "approved"
	DecisionRejected          DecisionType = "rejected"
	DecisionPending           DecisionType = "pending"
	DecisionRevisionRequested DecisionType = "revision_requested"
)

func (d DecisionType) String() string { return string(d) }

func (d DecisionType) IsValid() bool {
	switch d {
	case DecisionApproved, DecisionRejected, DecisionPending, DecisionRevisionRequested:
		return true
	}
	return false
}

// TermStatus returns the term status a decision of this type produces.
// The mapping ignores the term's current status.
func (d DecisionType) TermStatus() TermStatus {
	switch d {
	case DecisionApproved:
		return TermStatusPublished
	case DecisionRejected:
		return TermStatusRejected
	case DecisionRevisionRequested:
		return TermStatusDraft
	default:
		return TermStatusPending
	}
}

// ModificationStatus is the review state of a proposed modification.
type ModificationStatus string

const (
	ModificationPending     ModificationStatus = "pending"
	ModificationApproved    ModificationStatus = "approved"
	ModificationRejected    ModificationStatus = "rejected"
	ModificationImplemented ModificationStatus = "implemented"
)

func (s ModificationStatus) String() string { return string(s) }

func (s ModificationStatus) IsValid() bool {
	switch s {
	case ModificationPending, ModificationApproved, ModificationRejected, ModificationImplemented:
		return true
	}
	return false
}

// IsResolution reports whether s is a valid target of a resolve call.
func (s ModificationStatus) IsResolution() bool {
	switch s {
	case ModificationApproved, ModificationRejected, ModificationImplemented:
		return true
	}
	return false
}

// ReportStatus is the moderation state of a user report.
type ReportStatus string

const (
	ReportOpen      ReportStatus = "open"
	ReportReviewed  ReportStatus = "reviewed"
	ReportDismissed ReportStatus = "dismissed"
)

func (s ReportStatus) String() string { return string(s) }

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportOpen, ReportReviewed, ReportDismissed:
		return true
	}
	return false
}

// NotificationType classifies notification events.
type NotificationType string

const (
	NotificationLike                 NotificationType = "like"
	NotificationComment              NotificationType = "comment"
	NotificationReport               NotificationType = "report"
	NotificationDecision             NotificationType = "decision"
	NotificationModificationProposed NotificationType = "modification_proposed"
	NotificationModificationResolved NotificationType = "modification_resolved"
	NotificationAccountStatus        NotificationType = "account_status"
)

func (t NotificationType) String() string { return string(t) }

// TermAction is a write operation on a term, used by authorization.
type TermAction string

const (
	TermActionCreate TermAction = "create"
	TermActionUpdate TermAction = "update"
	TermActionDelete TermAction = "delete"
)
