// Package rbac decides, per resource and action, whether an identity's
// resolved role may proceed and how wide its reads and writes range.
package rbac

import (
	"fieldsight-backend/internal/domain/identity"
	"fieldsight-backend/internal/listing"
)

type Resource string

const (
	ResourceInspections Resource = "inspections"
	ResourcePayouts     Resource = "payouts"
	ResourceSubmissions Resource = "submissions"
	ResourceUsers       Resource = "users"
	ResourceBranding    Resource = "branding"
)

type Action string

const (
	ActionList   Action = "list"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionExport Action = "export"
	ActionReview Action = "review"
	ActionRead   Action = "read"
)

type Decision struct {
	Allow bool
	Scope listing.Scope
}

var deny = Decision{}

// Decide resolves the access matrix. An empty role means the assignment
// has not resolved yet (or does not exist); that denies every gated
// operation, while the anonymous carve-outs below stay open.
func Decide(role identity.Role, res Resource, act Action) Decision {
	// open to everyone, signed in or not
	if res == ResourceSubmissions && act == ActionCreate {
		return Decision{Allow: true, Scope: listing.ScopeAll}
	}
	if res == ResourceBranding && act == ActionRead {
		return Decision{Allow: true, Scope: listing.ScopeAll}
	}

	switch role {
	case identity.RoleAdmin:
		return Decision{Allow: true, Scope: listing.ScopeAll}
	case identity.RoleAgent:
		return agentDecision(res, act)
	default:
		return deny
	}
}

func agentDecision(res Resource, act Action) Decision {
	switch res {
	case ResourceInspections, ResourcePayouts:
		switch act {
		case ActionList, ActionCreate, ActionUpdate, ActionExport:
			return Decision{Allow: true, Scope: listing.ScopeOwn}
		}
	}
	return deny
}
