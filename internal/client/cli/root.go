package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/goalkeeper/internal/client/router"
)

// prompt builds the REPL status: user, mode and a one-shot notice after the
// server rejected the token.
func (a *App) prompt() string {
	if a.authLost.Swap(false) {
		a.printError("Your session has expired. Please log in again.")
	}

	s := ""
	if u := a.currentUser(); u != "" {
		s = u + " "
	}
	if m := a.currentMode(); m != "" {
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s) ", s)
	}
	return s + router.Lookup(a.nav.Current().Path).Path
}

// Run restores the saved session, starts the connectivity watcher and opens
// the dashboard (or the login view). It blocks in the REPL until the user
// exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.println(hintStyle.Render("Initializing..."))
	a.session.Restore(ctx)

	wctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(wctx, a.config.OnlineCheckInterval)

	a.println("Welcome to GoalKeeper (type 'help' for commands)")
	if err := a.Navigate(ctx, router.PathRoot); err != nil {
		a.log.Debug(ctx, "initial view", "error", err)
	}

	runREPL(ctx, a, a.prompt, a.reader)
	return nil
}
