package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/goalkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/goalkeeper/internal/client/cli"
	"github.com/dmitrijs2005/goalkeeper/internal/client/config"
	"github.com/dmitrijs2005/goalkeeper/internal/client/forms"
	"github.com/dmitrijs2005/goalkeeper/internal/client/models"
	"github.com/dmitrijs2005/goalkeeper/internal/logging"
)

// env is shared by all commands; PersistentPreRunE fills log after the
// flags are parsed into cfg.
type env struct {
	cfg *config.Config
	log logging.Logger
}

func newRootCmd() (*cobra.Command, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg}

	root := &cobra.Command{
		Use:           "goalkeeper",
		Short:         "Terminal client for the GoalKeeper goal tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := e.cfg.Validate(); err != nil {
				return err
			}
			log, err := logging.New(e.cfg.LogFormat, e.cfg.LogLevel, os.Stderr)
			if err != nil {
				return err
			}
			e.log = log
			return nil
		},
		RunE: e.runShell,
	}
	root.PersistentFlags().AddGoFlagSet(cfg.FlagSet())

	root.AddCommand(
		&cobra.Command{Use: "shell", Short: "Run the interactive shell (default)", RunE: e.runShell},
		&cobra.Command{Use: "login", Short: "Log in and save the session", RunE: e.withApp(func(cmd *cobra.Command, a *cli.App) error {
			return a.LoginOnce(cmd.Context())
		})},
		&cobra.Command{Use: "logout", Short: "Log out and forget the saved session", RunE: e.withApp(func(cmd *cobra.Command, a *cli.App) error {
			return a.Logout(cmd.Context())
		})},
		&cobra.Command{Use: "status", Short: "Show the saved session", RunE: e.withApp(func(cmd *cobra.Command, a *cli.App) error {
			return a.Status(cmd.Context())
		})},
		newGoalsCmd(e),
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			PersistentPreRunE: func(*cobra.Command, []string) error {
				return nil
			},
			Run: func(cmd *cobra.Command, _ []string) {
				buildinfo.PrintBuildData(cmd.OutOrStdout())
			},
		},
	)
	return root, nil
}

func (e *env) openApp(cmd *cobra.Command) (*cli.App, error) {
	return cli.NewApp(cmd.Context(), e.cfg, e.log)
}

func (e *env) withApp(fn func(cmd *cobra.Command, a *cli.App) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		a, err := e.openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(cmd, a)
	}
}

func (e *env) runShell(cmd *cobra.Command, _ []string) error {
	return e.withApp(func(cmd *cobra.Command, a *cli.App) error {
		return a.Run(cmd.Context())
	})(cmd, nil)
}

type goalsListFlags struct {
	page     int
	perPage  int
	search   string
	priority string
	goalType string
	status   string
}

func (f goalsListFlags) params() (models.ListParams, error) {
	p := models.ListParams{
		Page:     f.page,
		PerPage:  f.perPage,
		Search:   strings.TrimSpace(f.search),
		Priority: models.Priority(strings.ToLower(f.priority)),
		GoalType: models.GoalType(strings.ToLower(f.goalType)),
	}
	if p.Page < 1 {
		return p, fmt.Errorf("--page must be at least 1")
	}
	if p.Priority != "" && !p.Priority.Valid() {
		return p, fmt.Errorf("unknown priority %q", f.priority)
	}
	if p.GoalType != "" && !p.GoalType.Valid() {
		return p, fmt.Errorf("unknown goal type %q", f.goalType)
	}

	switch strings.ToLower(f.status) {
	case "", "any":
	case "completed":
		v := true
		p.Status = &v
	case "active":
		v := false
		p.Status = &v
	default:
		return p, fmt.Errorf("unknown status %q", f.status)
	}
	return p, nil
}

func newGoalsCmd(e *env) *cobra.Command {
	goals := &cobra.Command{Use: "goals", Short: "Goal commands"}

	var f goalsListFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "Print one page of goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := f.params()
			if err != nil {
				return err
			}
			return e.withApp(func(cmd *cobra.Command, a *cli.App) error {
				return a.PrintGoals(cmd.Context(), p)
			})(cmd, args)
		},
	}
	list.Flags().IntVar(&f.page, "page", 1, "page number, starting at 1")
	list.Flags().IntVar(&f.perPage, "per-page", forms.DefaultPerPage, "goals per page")
	list.Flags().StringVar(&f.search, "search", "", "search text")
	list.Flags().StringVar(&f.priority, "priority", "", "priority: low|medium|high")
	list.Flags().StringVar(&f.goalType, "type", "", "goal type: daily|weekly|monthly")
	list.Flags().StringVar(&f.status, "status", "", "status: active|completed|any")

	goals.AddCommand(list)
	return goals
}
