// Package cli is the interactive GoalKeeper terminal client.
//
// App wires the local database, the session manager, the route guard, the
// HTTP API client and the services. Run restores a saved session, starts a
// background connectivity watcher and enters a REPL in which every view
// (dashboard, add goal, goals, reports) is reached through the guard, so
// protected views send a signed-out user to login first.
//
// One-shot entry points (Login, Logout, Status, PrintGoals) are used by the
// cobra commands in cmd/client.
package cli
