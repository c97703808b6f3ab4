package domain

import "testing"

func TestMenuFor_IsDeterministicPerRole(t *testing.T) {
	for _, role := range []Role{RoleFactory, RoleMarketer, RoleAdmin} {
		first := MenuFor(role)
		second := MenuFor(role)
		if len(first) == 0 {
			t.Fatalf("%s: expected non-empty menu", role)
		}
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("%s: menu not stable at %d", role, i)
			}
		}
	}
}

func TestMenuFor_RoleEntries(t *testing.T) {
	hasPath := func(menu []MenuItem, path string) bool {
		for _, item := range menu {
			if item.Path == path {
				return true
			}
		}
		return false
	}

	if !hasPath(MenuFor(RoleFactory), "/dashboard/marketers") {
		t.Fatalf("expected factory menu to include marketers")
	}
	if hasPath(MenuFor(RoleFactory), "/dashboard/training") {
		t.Fatalf("factory menu must not include training")
	}
	if !hasPath(MenuFor(RoleMarketer), "/dashboard/training") {
		t.Fatalf("expected marketer menu to include training")
	}
	if !hasPath(MenuFor(RoleMarketer), "/dashboard/campaigns") {
		t.Fatalf("expected marketer menu to include campaigns")
	}
	if !hasPath(MenuFor(RoleAdmin), "/dashboard/factories") {
		t.Fatalf("expected admin menu to include factories")
	}
	if !hasPath(MenuFor(RoleAdmin), "/dashboard/content") {
		t.Fatalf("expected admin menu to include content")
	}
	if !hasPath(MenuFor(RoleAdmin), "/dashboard/messages") {
		t.Fatalf("expected admin menu to include messages")
	}
	if hasPath(MenuFor(RoleAdmin), "/dashboard/analytics") {
		t.Fatalf("admin menu must not include analytics")
	}
}

func TestMenuFor_UnknownRoleFallsBackToMarketer(t *testing.T) {
	menu := MenuFor(Role("intern"))
	marketer := MenuFor(RoleMarketer)
	if len(menu) != len(marketer) {
		t.Fatalf("expected marketer menu for unknown role")
	}
	for i := range menu {
		if menu[i] != marketer[i] {
			t.Fatalf("expected marketer menu entry at %d, got %+v", i, menu[i])
		}
	}
}

func TestRolesFor(t *testing.T) {
	roles, ok := RolesFor("/dashboard/training")
	if !ok || len(roles) != 1 || roles[0] != RoleMarketer {
		t.Fatalf("expected marketer-only training, got %v ok=%v", roles, ok)
	}

	roles, ok = RolesFor("/dashboard/marketers")
	if !ok || len(roles) != 2 {
		t.Fatalf("expected factory+admin for marketers page, got %v ok=%v", roles, ok)
	}

	roles, ok = RolesFor("/dashboard/messages")
	if !ok || len(roles) != 1 || roles[0] != RoleAdmin {
		t.Fatalf("expected admin-only messages, got %v ok=%v", roles, ok)
	}

	roles, ok = RolesFor("/dashboard/products")
	if !ok || roles != nil {
		t.Fatalf("expected any-authenticated products, got %v ok=%v", roles, ok)
	}

	if _, ok := RolesFor("/dashboard/nonexistent"); ok {
		t.Fatalf("expected unknown path to report no entry")
	}
}
