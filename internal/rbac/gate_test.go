package rbac

import (
	"testing"

	"fieldsight-backend/internal/domain/identity"
	"fieldsight-backend/internal/listing"
)

func TestDecide_Admin_FullAccessAllScope(t *testing.T) {
	resources := []Resource{ResourceInspections, ResourcePayouts, ResourceSubmissions, ResourceUsers, ResourceBranding}
	actions := []Action{ActionList, ActionCreate, ActionUpdate, ActionDelete, ActionExport, ActionReview, ActionRead}

	for _, res := range resources {
		for _, act := range actions {
			d := Decide(identity.RoleAdmin, res, act)
			if !d.Allow {
				t.Errorf("admin denied %s/%s", res, act)
			}
			if d.Scope != listing.ScopeAll {
				t.Errorf("admin scope for %s/%s = %q, want all", res, act, d.Scope)
			}
		}
	}
}

func TestDecide_Agent_OwnScopedReportAccess(t *testing.T) {
	for _, res := range []Resource{ResourceInspections, ResourcePayouts} {
		for _, act := range []Action{ActionList, ActionCreate, ActionUpdate, ActionExport} {
			d := Decide(identity.RoleAgent, res, act)
			if !d.Allow {
				t.Errorf("agent denied %s/%s", res, act)
			}
			if d.Scope != listing.ScopeOwn {
				t.Errorf("agent scope for %s/%s = %q, want own", res, act, d.Scope)
			}
		}
		// delete stays admin-only
		if d := Decide(identity.RoleAgent, res, ActionDelete); d.Allow {
			t.Errorf("agent must not delete %s", res)
		}
	}
}

func TestDecide_Agent_NoAdminSurfaces(t *testing.T) {
	denied := []struct {
		res Resource
		act Action
	}{
		{ResourceUsers, ActionList},
		{ResourceUsers, ActionCreate},
		{ResourceUsers, ActionDelete},
		{ResourceSubmissions, ActionList},
		{ResourceSubmissions, ActionReview},
		{ResourceBranding, ActionUpdate},
	}
	for _, tc := range denied {
		if d := Decide(identity.RoleAgent, tc.res, tc.act); d.Allow {
			t.Errorf("agent must not %s/%s", tc.res, tc.act)
		}
	}
}

func TestDecide_EmptyRole_DeniesGatedOperations(t *testing.T) {
	// an unresolved role behaves like no role at all
	denied := []struct {
		res Resource
		act Action
	}{
		{ResourceInspections, ActionList},
		{ResourceInspections, ActionCreate},
		{ResourcePayouts, ActionExport},
		{ResourceUsers, ActionList},
		{ResourceSubmissions, ActionReview},
	}
	for _, tc := range denied {
		if d := Decide("", tc.res, tc.act); d.Allow {
			t.Errorf("empty role must not %s/%s", tc.res, tc.act)
		}
	}
}

func TestDecide_AnonymousCarveOuts(t *testing.T) {
	// public submission intake and branding read are open to everyone
	for _, role := range []identity.Role{"", identity.RoleAgent, identity.RoleAdmin} {
		if d := Decide(role, ResourceSubmissions, ActionCreate); !d.Allow {
			t.Errorf("role %q denied public submission create", role)
		}
		if d := Decide(role, ResourceBranding, ActionRead); !d.Allow {
			t.Errorf("role %q denied branding read", role)
		}
	}
}

func TestDecide_UnknownRole_Denied(t *testing.T) {
	if d := Decide("superuser", ResourceInspections, ActionList); d.Allow {
		t.Fatal("unknown role must be denied")
	}
}
