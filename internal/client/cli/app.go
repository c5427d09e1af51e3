package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/goalkeeper/internal/client/client"
	"github.com/dmitrijs2005/goalkeeper/internal/client/config"
	"github.com/dmitrijs2005/goalkeeper/internal/client/credentials"
	"github.com/dmitrijs2005/goalkeeper/internal/client/forms"
	"github.com/dmitrijs2005/goalkeeper/internal/client/router"
	"github.com/dmitrijs2005/goalkeeper/internal/client/services"
	"github.com/dmitrijs2005/goalkeeper/internal/client/session"
	"github.com/dmitrijs2005/goalkeeper/internal/logging"
)

// Mode is the server reachability as last seen by the watcher.
type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	session     *session.Manager
	guard       *router.Guard
	nav         *router.Navigator
	authService services.AuthService
	goalService services.GoalService
	goalList    *forms.GoalList

	reader *bufio.Reader
	out    io.Writer

	mu       sync.Mutex
	mode     Mode
	userName string

	authLost    atomic.Bool
	unsubscribe func()
}

// authNotice forwards 401s to the guard. When a signed-in session was lost
// it remembers that so the prompt can tell the user; a rejected login is
// reported by the form instead.
type authNotice struct {
	next client.AuthFailureHandler
	app  *App
}

func (n authNotice) HandleAuthFailure(ctx context.Context) {
	wasIn := n.app.isLoggedIn()
	n.next.HandleAuthFailure(ctx)
	if wasIn {
		n.app.authLost.Store(true)
	}
}

// NewApp opens the local database and wires the session, router, API client
// and services. The caller must Close the App.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	db, err := client.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	mgr := session.NewManager(credentials.NewHolder(db), session.NewStore(), log)
	guard := router.NewGuard(mgr, log)
	nav := router.NewNavigator(guard)

	a := &App{
		config:  cfg,
		log:     log,
		db:      db,
		session: mgr,
		guard:   guard,
		nav:     nav,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	api, err := client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, mgr, authNotice{next: guard, app: a}, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a.authService = services.NewAuthService(api, mgr, log)
	a.goalService = services.NewGoalService(api, mgr)
	a.bind()
	return a, nil
}

// bind finishes wiring that depends on the services being set.
func (a *App) bind() {
	a.goalList = forms.NewGoalList(a.goalService, a.session)
	a.unsubscribe = a.session.Store().Subscribe(a.onSession)
}

// onSession keeps the navbar identity in step with the session store.
func (a *App) onSession(s session.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if s.User == nil {
		a.userName = ""
		return
	}
	a.userName = s.User.Name
}

func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Store().Get().IsAuthenticated()
}

func (a *App) currentUser() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.userName
}

func (a *App) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

// StartOnlineStatusWatcher pings the API every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := a.authService.Ping(pctx)
	cancel()

	if err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
