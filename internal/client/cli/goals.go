package cli

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/goalkeeper/internal/client/client"
	"github.com/dmitrijs2005/goalkeeper/internal/client/forms"
	"github.com/dmitrijs2005/goalkeeper/internal/client/models"
	"github.com/dmitrijs2005/goalkeeper/internal/client/session"
	"github.com/dmitrijs2005/goalkeeper/internal/common"
)

const msgGoalsNeedLogin = "You must be logged in to view goals. Please login first."

// AddGoal runs the add-goal form. The end date is derived from the start
// date and type and shown before submitting.
func (a *App) AddGoal(ctx context.Context) error {
	f := forms.NewAddGoalForm(a.goalService, a.session)
	a.println(titleStyle.Render("Add Goal"))

	var err error
	if f.Title, err = getSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if f.Description, err = getMultiline(a.reader, "Description", a.out); err != nil {
		return err
	}

	typ, err := getSimpleText(a.reader, "Type (daily, weekly, monthly)", a.out)
	if err != nil {
		return err
	}
	f.SetType(models.GoalType(strings.ToLower(typ)))

	prio, err := getSimpleText(a.reader, "Priority (low, medium, high)", a.out)
	if err != nil {
		return err
	}
	f.Priority = models.Priority(strings.ToLower(prio))

	if f.Category, err = getSimpleText(a.reader, "Category", a.out); err != nil {
		return err
	}

	start, err := getSimpleText(a.reader, fmt.Sprintf("Start date [%s]", f.StartDate), a.out)
	if err != nil {
		return err
	}
	if start != "" {
		f.SetStartDate(start)
	}
	a.println("End date: " + f.EndDate)

	if err := f.Submit(ctx); err != nil {
		if verrs, ok := err.(forms.ValidationErrors); ok {
			a.printValidation(verrs)
			return err
		}
		a.printError(f.Message())
		return err
	}
	a.printSuccess(f.Success())
	return nil
}

func (a *App) printValidation(errs forms.ValidationErrors) {
	for _, line := range strings.Split(errs.Error(), "; ") {
		a.printError(line)
	}
}

// showGoals loads and prints the current page of the goal list.
func (a *App) showGoals(ctx context.Context) error {
	l := a.goalList
	a.println(titleStyle.Render("Goals"))

	err := l.Load(ctx)
	if msg := l.Message(); msg != "" {
		a.printError(msg)
	}
	if err != nil {
		return err
	}
	if len(l.Goals) > 0 {
		a.println(renderGoalTable(l.Goals))
	}

	a.println(hintStyle.Render(fmt.Sprintf("Page %d of %d, %d goals, %d per page. %s",
		l.Page()+1, l.TotalPages(), l.Total, l.PerPage(), describeFilters(l.Params()))))
	return nil
}

func describeFilters(p models.ListParams) string {
	var parts []string
	if p.Search != "" {
		parts = append(parts, fmt.Sprintf("search=%q", p.Search))
	}
	if p.Priority != "" {
		parts = append(parts, "priority="+string(p.Priority))
	}
	if p.GoalType != "" {
		parts = append(parts, "type="+string(p.GoalType))
	}
	if p.Status != nil {
		if *p.Status {
			parts = append(parts, "status=completed")
		} else {
			parts = append(parts, "status=active")
		}
	}
	if len(parts) == 0 {
		return "No filters."
	}
	return "Filters: " + strings.Join(parts, " ") + "."
}

// ListControl changes the goal list state and shows the goals view again.
//
//	next | prev | page <n> | per-page <n> | search [text]
//	filter priority|type|status <value|any> | clear
func (a *App) ListControl(ctx context.Context, cmd string, args []string) error {
	l := a.goalList

	switch cmd {
	case "next":
		if !l.NextPage() {
			a.println("Already on the last page.")
			return nil
		}
	case "prev":
		if !l.PrevPage() {
			a.println("Already on the first page.")
			return nil
		}
	case "page":
		n, err := intArg(args)
		if err != nil {
			a.println("Usage: page <n>")
			return err
		}
		l.SetPage(n - 1)
	case "per-page":
		n, err := intArg(args)
		if err != nil || !validPerPage(n) {
			a.println(fmt.Sprintf("Usage: per-page <%s>", joinInts(forms.PerPageOptions)))
			return fmt.Errorf("invalid page size")
		}
		l.SetPerPage(n)
	case "search":
		l.SetSearch(strings.Join(args, " "))
	case "filter":
		if err := applyFilter(l, args); err != nil {
			a.println("Usage: filter priority|type|status <value|any>")
			return err
		}
	case "clear":
		l.ClearFilters()
	default:
		return fmt.Errorf("unknown list command %q", cmd)
	}

	return a.Navigate(ctx, "/goals")
}

func applyFilter(l *forms.GoalList, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("filter needs a field and a value")
	}
	field, value := strings.ToLower(args[0]), strings.ToLower(args[1])
	if value == "any" {
		value = ""
	}

	switch field {
	case "priority":
		p := models.Priority(value)
		if value != "" && !p.Valid() {
			return fmt.Errorf("unknown priority %q", value)
		}
		l.SetPriority(p)
	case "type":
		t := models.GoalType(value)
		if value != "" && !t.Valid() {
			return fmt.Errorf("unknown goal type %q", value)
		}
		l.SetGoalType(t)
	case "status":
		switch value {
		case "":
			l.SetStatus(nil)
		case "completed", "done":
			v := true
			l.SetStatus(&v)
		case "active", "pending":
			v := false
			l.SetStatus(&v)
		default:
			return fmt.Errorf("unknown status %q", value)
		}
	default:
		return fmt.Errorf("unknown filter %q", field)
	}
	return nil
}

// requireLogin refuses goal actions for a session that is not signed in,
// without sending a request.
func (a *App) requireLogin() error {
	if a.session.State() == session.StateAuthenticated {
		return nil
	}
	a.printError(msgGoalsNeedLogin)
	return common.ErrorNoToken
}

// Show prints one goal.
func (a *App) Show(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	g, err := a.goalService.Get(ctx, id)
	if err != nil {
		a.printError(forms.ErrorMessage(err, "Failed to load goal."))
		return err
	}
	if g == nil {
		a.printError("Goal not found.")
		return nil
	}
	a.println(renderGoal(g))
	return nil
}

// Toggle flips a goal between active and completed.
func (a *App) Toggle(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	g, err := a.goalService.Toggle(ctx, id)
	if err != nil {
		a.printError(forms.ErrorMessage(err, "Failed to update goal."))
		return err
	}
	if g != nil {
		state := "active"
		if g.IsCompleted {
			state = "completed"
		}
		a.printSuccess(fmt.Sprintf("Goal %s is now %s.", g.ID, state))
	}
	return nil
}

// Edit and Delete are listed in the goals view but have no flow yet.
func (a *App) Edit(ctx context.Context, id string) error {
	a.log.Info(ctx, "edit goal requested", "id", id)
	a.println(hintStyle.Render("Editing goals is not available yet."))
	return errNotImplemented
}

func (a *App) Delete(ctx context.Context, id string) error {
	a.log.Info(ctx, "delete goal requested", "id", id)
	a.println(hintStyle.Render("Deleting goals is not available yet."))
	return errNotImplemented
}

// PrintGoals loads one page with p and prints it. Used by the one-shot
// goals list command, which has no list state to keep.
func (a *App) PrintGoals(ctx context.Context, p models.ListParams) error {
	a.session.Restore(ctx)

	page, err := a.goalService.List(ctx, p)
	if client.StatusCode(err) == http.StatusNotFound {
		page, err = &models.GoalPage{}, nil
	}
	if err != nil {
		a.printError(forms.ErrorMessage(err, "Failed to load goals."))
		return err
	}
	if len(page.Goals) == 0 {
		a.println("No goals found.")
		return nil
	}
	a.println(renderGoalTable(page.Goals))
	a.println(hintStyle.Render(fmt.Sprintf("%d goals in total. %s", page.Total, describeFilters(p))))
	return nil
}

func intArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected one number")
	}
	return strconv.Atoi(args[0])
}

func validPerPage(n int) bool {
	for _, o := range forms.PerPageOptions {
		if o == n {
			return true
		}
	}
	return false
}

func joinInts(v []int) string {
	s := make([]string, len(v))
	for i, n := range v {
		s[i] = strconv.Itoa(n)
	}
	return strings.Join(s, "|")
}
