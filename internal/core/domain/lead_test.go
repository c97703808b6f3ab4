package domain

import "testing"

func TestLeadStatus_CanTransitionTo(t *testing.T) {
	allowed := []struct{ from, to LeadStatus }{
		{LeadNew, LeadContacted},
		{LeadNew, LeadLost},
		{LeadContacted, LeadSampleRequested},
		{LeadContacted, LeadNegotiating},
		{LeadContacted, LeadLost},
		{LeadSampleRequested, LeadNegotiating},
		{LeadSampleRequested, LeadLost},
		{LeadNegotiating, LeadClosed},
		{LeadNegotiating, LeadLost},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to LeadStatus }{
		{LeadNew, LeadClosed},
		{LeadNew, LeadNegotiating},
		{LeadContacted, LeadNew},
		{LeadClosed, LeadNegotiating},
		{LeadClosed, LeadLost},
		{LeadLost, LeadNew},
		{LeadNegotiating, LeadContacted},
	}
	for _, tc := range denied {
		if tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestDeriveRole(t *testing.T) {
	cases := []struct {
		email string
		role  Role
	}{
		{"alice.factory@example.com", RoleFactory},
		{"factory-ops@example.com", RoleFactory},
		{"admin@example.com", RoleAdmin},
		{"site.admin@example.com", RoleAdmin},
		{"bob@example.com", RoleMarketer},
		{"sales@example.com", RoleMarketer},
	}
	for _, tc := range cases {
		if got := DeriveRole(tc.email); got != tc.role {
			t.Fatalf("%s: expected %s, got %s", tc.email, tc.role, got)
		}
	}
}
