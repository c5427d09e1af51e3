// Package router maps view paths to views and decides, from the session
// state, whether a navigation may proceed.
package router

import (
	"net/url"
	"strings"
)

// View paths.
const (
	PathRoot      = "/"
	PathLogin     = "/login"
	PathRegister  = "/register"
	PathDashboard = "/dashboard"
	PathAddGoal   = "/add-goal"
	PathGoals     = "/goals"
	PathReports   = "/reports"
)

// ViewNotFound names the view shown for paths outside the route table.
const ViewNotFound = "not-found"

// Route describes one addressable view.
type Route struct {
	Path      string
	View      string
	Title     string
	Protected bool
}

var routes = map[string]Route{
	PathLogin:     {Path: PathLogin, View: "login", Title: "Login"},
	PathRegister:  {Path: PathRegister, View: "register", Title: "Register"},
	PathRoot:      {Path: PathRoot, View: "dashboard", Title: "Dashboard", Protected: true},
	PathDashboard: {Path: PathDashboard, View: "dashboard", Title: "Dashboard", Protected: true},
	PathAddGoal:   {Path: PathAddGoal, View: "add-goal", Title: "Add Goal", Protected: true},
	PathGoals:     {Path: PathGoals, View: "goals", Title: "Goals", Protected: true},
	PathReports:   {Path: PathReports, View: "reports", Title: "Reports", Protected: true},
}

// Lookup resolves a path. Unknown paths resolve to the public not-found view.
func Lookup(path string) Route {
	p := Normalize(path)
	if r, ok := routes[p]; ok {
		return r
	}
	return Route{Path: p, View: ViewNotFound, Title: "Not Found"}
}

// NavLinks are the protected views offered in the navigation bar, in order.
func NavLinks() []Route {
	return []Route{routes[PathDashboard], routes[PathAddGoal], routes[PathGoals], routes[PathReports]}
}

// Normalize drops query and fragment, ensures a leading slash and strips
// trailing slashes. The empty path is the root.
func Normalize(path string) string {
	path = strings.TrimSpace(path)
	if u, err := url.Parse(path); err == nil {
		path = u.Path
	} else if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = PathRoot
		}
	}
	return path
}
