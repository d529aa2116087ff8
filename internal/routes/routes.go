// Package routes holds the process-wide route tables: which paths are
// public, which belong to the external auth flow, and where the API auth
// endpoints live. The table is immutable once loaded.
package routes

type Table struct {
	public               []string
	auth                 []string
	apiAuthPrefix        string
	defaultLoginRedirect string
}

// Default returns the route table loaded at startup.
func Default() *Table {
	return &Table{
		public: []string{
			"/",
			"/landpage/about",
			"/landpage/analytics",
			"/landpage/consultancy",
			"/landpage/education",
			"/landpage/services",
		},
		auth: []string{
			"/login",
			"/register",
			"/error",
		},
		apiAuthPrefix:        "/api/auth",
		defaultLoginRedirect: "/admin",
	}
}

// PublicRoutes returns a copy of the routes reachable without authentication.
func (t *Table) PublicRoutes() []string {
	out := make([]string, len(t.public))
	copy(out, t.public)
	return out
}

// AuthRoutes returns a copy of the routes used by the auth flow itself.
func (t *Table) AuthRoutes() []string {
	out := make([]string, len(t.auth))
	copy(out, t.auth)
	return out
}

func (t *Table) APIAuthPrefix() string { return t.apiAuthPrefix }

func (t *Table) DefaultLoginRedirect() string { return t.defaultLoginRedirect }

func (t *Table) IsPublic(path string) bool {
	for _, p := range t.public {
		if p == path {
			return true
		}
	}
	return false
}

func (t *Table) IsAuthRoute(path string) bool {
	for _, p := range t.auth {
		if p == path {
			return true
		}
	}
	return false
}
