// Package policy holds the role, status and ownership rules that decide
// whether an actor may perform a write. Every function is pure: it returns
// nil when the action is allowed and a *domain.AuthorizationError otherwise.
package policy

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

// CanWriteTerm decides create, update and delete on a term. ownerID is
// ignored for create.
//
// The pending-approval check runs before the ownership check, so a pending
// author editing their own term is told the account awaits approval.
func CanWriteTerm(a domain.Actor, action domain.TermAction, ownerID uuid.UUID) error {
	switch a.Role {
	case domain.UserRoleAdmin:
		return nil
	case domain.UserRoleAuthor:
		if err := activeAuthor(a); err != nil {
			return err
		}
		if action == domain.TermActionCreate || ownerID == a.ID {
			return nil
		}
		return domain.Deny(domain.DenyNotOwner)
	default:
		return domain.Deny(domain.DenyWrongRole)
	}
}

// CanProposeModification allows any account that is not rejected or suspended.
func CanProposeModification(a domain.Actor) error {
	switch a.Status {
	case domain.UserStatusActive, domain.UserStatusPending:
		return nil
	}
	return domain.Deny(domain.DenyAccountInactive)
}

// CanResolveModification decides approve/reject/implement on a proposal.
// Self-validation is refused first, for every role including admin.
func CanResolveModification(a domain.Actor, proposerID, termOwnerID uuid.UUID) error {
	if a.ID == proposerID {
		return domain.Deny(domain.DenySelfValidation)
	}
	switch a.Role {
	case domain.UserRoleAdmin:
		return nil
	case domain.UserRoleAuthor:
		if err := activeAuthor(a); err != nil {
			return err
		}
		if termOwnerID == a.ID {
			return nil
		}
		return domain.Deny(domain.DenyNotOwner)
	default:
		return domain.Deny(domain.DenyWrongRole)
	}
}

// CanAmendModification allows only the proposer. Whether the proposal is
// still pending is a state check made by the caller.
func CanAmendModification(a domain.Actor, proposerID uuid.UUID) error {
	if a.ID == proposerID {
		return nil
	}
	return domain.Deny(domain.DenyNotOwner)
}

// CanDeleteModification allows admins and the proposer.
func CanDeleteModification(a domain.Actor, proposerID uuid.UUID) error {
	if a.IsAdmin() || a.ID == proposerID {
		return nil
	}
	return domain.Deny(domain.DenyNotOwner)
}

// CanRecordDecision allows admins and active researchers.
func CanRecordDecision(a domain.Actor) error {
	switch a.Role {
	case domain.UserRoleAdmin:
		return nil
	case domain.UserRoleResearcher:
		if a.IsActive() {
			return nil
		}
		return domain.Deny(domain.DenyAccountInactive)
	default:
		return domain.Deny(domain.DenyWrongRole)
	}
}

// CanUpdateDecision allows admins and the original decider.
func CanUpdateDecision(a domain.Actor, deciderID uuid.UUID) error {
	if a.IsAdmin() {
		return nil
	}
	if err := CanRecordDecision(a); err != nil {
		return err
	}
	if a.ID == deciderID {
		return nil
	}
	return domain.Deny(domain.DenyNotOwner)
}

// CanDeleteDecision is admin only.
func CanDeleteDecision(a domain.Actor) error {
	return RequireAdmin(a)
}

// CanDeleteComment allows the comment's writer, admins and the active author
// who owns the commented term.
func CanDeleteComment(a domain.Actor, commentAuthorID, termOwnerID uuid.UUID) error {
	if a.IsAdmin() || a.ID == commentAuthorID {
		return nil
	}
	if a.Role == domain.UserRoleAuthor && termOwnerID == a.ID {
		return activeAuthor(a)
	}
	return domain.Deny(domain.DenyNotOwner)
}

// CanViewReport allows admins and the reporter.
func CanViewReport(a domain.Actor, reporterID uuid.UUID) error {
	if a.IsAdmin() || a.ID == reporterID {
		return nil
	}
	return domain.Deny(domain.DenyNotOwner)
}

// RequireAdmin refuses every role but admin.
func RequireAdmin(a domain.Actor) error {
	if a.IsAdmin() {
		return nil
	}
	return domain.Deny(domain.DenyWrongRole)
}

// SeesAllTerms reports whether unpublished terms of other users are visible
// to the actor.
func SeesAllTerms(a domain.Actor) bool {
	return a.Role == domain.UserRoleAdmin || a.Role == domain.UserRoleResearcher
}

func activeAuthor(a domain.Actor) error {
	switch a.Status {
	case domain.UserStatusActive:
		return nil
	case domain.UserStatusPending:
		return domain.Deny(domain.DenyPendingApproval)
	default:
		return domain.Deny(domain.DenyAccountInactive)
	}
}
