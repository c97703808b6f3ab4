package domain

// MenuItem is a single sidebar navigation entry.
type MenuItem struct {
	Path  string `json:"path"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

var factoryMenu = []MenuItem{
	{Path: "/dashboard", Label: "Overview", Icon: "home"},
	{Path: "/dashboard/products", Label: "Products", Icon: "package"},
	{Path: "/dashboard/leads", Label: "Leads", Icon: "user-plus"},
	{Path: "/dashboard/marketers", Label: "Marketers", Icon: "users"},
	{Path: "/dashboard/profile", Label: "Company Profile", Icon: "building"},
	{Path: "/dashboard/analytics", Label: "Analytics", Icon: "bar-chart"},
	{Path: "/dashboard/settings", Label: "Settings", Icon: "settings"},
}

var marketerMenu = []MenuItem{
	{Path: "/dashboard", Label: "Overview", Icon: "home"},
	{Path: "/dashboard/products", Label: "Browse Products", Icon: "package"},
	{Path: "/dashboard/campaigns", Label: "My Campaigns", Icon: "shopping-bag"},
	{Path: "/dashboard/leads", Label: "My Leads", Icon: "user-plus"},
	{Path: "/dashboard/training", Label: "Training", Icon: "star"},
	{Path: "/dashboard/analytics", Label: "Performance", Icon: "bar-chart"},
	{Path: "/dashboard/settings", Label: "Settings", Icon: "settings"},
}

var adminMenu = []MenuItem{
	{Path: "/dashboard", Label: "Overview", Icon: "home"},
	{Path: "/dashboard/factories", Label: "Factories", Icon: "factory"},
	{Path: "/dashboard/marketers", Label: "Marketers", Icon: "users"},
	{Path: "/dashboard/products", Label: "Products", Icon: "box"},
	{Path: "/dashboard/leads", Label: "Deals", Icon: "handshake"},
	{Path: "/dashboard/content", Label: "Content", Icon: "file-text"},
	{Path: "/dashboard/messages", Label: "Messages", Icon: "mail"},
	{Path: "/dashboard/settings", Label: "Settings", Icon: "settings"},
}

// MenuFor returns the sidebar menu for a role. Unrecognized roles fall back
// to the marketer menu.
func MenuFor(role Role) []MenuItem {
	switch role {
	case RoleFactory:
		return factoryMenu
	case RoleAdmin:
		return adminMenu
	default:
		return marketerMenu
	}
}

// RoutePolicy restricts a dashboard route to a set of roles. A nil Roles
// slice means any authenticated user may reach the route. Entries are
// matched by exact path; there is no role hierarchy — admin reaches a
// factory-only route only when listed explicitly.
type RoutePolicy struct {
	Path  string
	Roles []Role
}

// DashboardRoutes is the authoritative table of protected routes. Defined
// once, never mutated at runtime.
var DashboardRoutes = []RoutePolicy{
	{Path: "/dashboard"},
	{Path: "/dashboard/products"},
	{Path: "/dashboard/products/:id"},
	{Path: "/dashboard/leads"},
	{Path: "/dashboard/leads/:id"},
	{Path: "/dashboard/profile"},
	{Path: "/dashboard/analytics"},
	{Path: "/dashboard/settings"},
	{Path: "/dashboard/training", Roles: []Role{RoleMarketer}},
	{Path: "/dashboard/campaigns", Roles: []Role{RoleMarketer}},
	{Path: "/dashboard/campaigns/:id", Roles: []Role{RoleMarketer}},
	{Path: "/dashboard/marketers", Roles: []Role{RoleFactory, RoleAdmin}},
	{Path: "/dashboard/factories", Roles: []Role{RoleAdmin}},
	{Path: "/dashboard/content", Roles: []Role{RoleAdmin}},
	{Path: "/dashboard/messages", Roles: []Role{RoleAdmin}},
}

// RolesFor returns the permitted roles for a dashboard path. The second
// return is false when the path has no entry. A nil slice with ok=true
// means any authenticated user.
func RolesFor(path string) ([]Role, bool) {
	for _, rp := range DashboardRoutes {
		if rp.Path == path {
			return rp.Roles, true
		}
	}
	return nil, false
}
