package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/goalkeeper/internal/client/router"
	"github.com/dmitrijs2005/goalkeeper/internal/logging"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Navigate(ctx context.Context, path string) error
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) error
	Whoami(ctx context.Context) error
	Status(ctx context.Context) error
	ListControl(ctx context.Context, cmd string, args []string) error
	Show(ctx context.Context, id string) error
	Toggle(ctx context.Context, id string) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// viewCommands are shortcuts for "go <path>".
var viewCommands = map[string]string{
	"login":     router.PathLogin,
	"register":  router.PathRegister,
	"dashboard": router.PathDashboard,
	"home":      router.PathDashboard,
	"add":       router.PathAddGoal,
	"goals":     router.PathGoals,
	"l":         router.PathGoals,
	"reports":   router.PathReports,
}

var listCommands = map[string]bool{
	"next": true, "prev": true, "page": true, "per-page": true,
	"search": true, "filter": true, "clear": true,
}

var goalCommands = map[string]func(execIface, context.Context, string) error{
	"show":   execIface.Show,
	"toggle": execIface.Toggle,
	"edit":   execIface.Edit,
	"delete": execIface.Delete,
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF, when ctx is done, or when the user types "exit" or
// "quit". Prompts issued by commands share the same reader.
//
// Handler errors are not fatal; handlers print their own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("gk %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]
		cctx := logging.ContextWith(ctx, "command", cmd)

		if path, ok := viewCommands[cmd]; ok {
			_ = a.Navigate(cctx, path)
			continue
		}
		if listCommands[cmd] {
			_ = a.ListControl(cctx, cmd, args)
			continue
		}
		if fn, ok := goalCommands[cmd]; ok {
			if len(args) != 1 {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			_ = fn(a, cctx, args[0])
			continue
		}

		switch cmd {
		case "help", "?":
			printHelp(a.isLoggedIn())
		case "go", "open":
			if len(args) != 1 {
				printlnFn("Usage: go <path>")
				continue
			}
			_ = a.Navigate(cctx, args[0])
		case "logout":
			_ = a.Logout(cctx)
		case "refresh":
			_ = a.Refresh(cctx)
		case "whoami":
			_ = a.Whoami(cctx)
		case "status":
			_ = a.Status(cctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(loggedIn bool) {
	if !loggedIn {
		printlnFn("Available commands: login, register, go <path>, status, exit")
		return
	}
	printlnFn("Views:   dashboard, add, goals (l), reports, go <path>")
	printlnFn("List:    next, prev, page <n>, per-page <n>, search [text], filter <field> <value|any>, clear")
	printlnFn("Goals:   show <id>, toggle <id>, edit <id>, delete <id>")
	printlnFn("Account: whoami, refresh, status, logout, exit")
}
