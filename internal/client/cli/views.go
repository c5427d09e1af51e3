package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/goalkeeper/internal/client/forms"
	"github.com/dmitrijs2005/goalkeeper/internal/client/router"
)

// Navigate moves to path through the route guard and shows the resulting view.
func (a *App) Navigate(ctx context.Context, path string) error {
	loc := a.nav.Go(path)
	if loc.Pending {
		a.println(hintStyle.Render("Initializing..."))
		return nil
	}
	return a.render(ctx, loc)
}

// render draws the navbar and the view at loc. The login and register
// views run their forms.
func (a *App) render(ctx context.Context, loc router.Location) error {
	route := router.Lookup(loc.Path)
	a.println(renderNavbar(route.Path, a.currentUser(), a.currentMode()))

	switch route.View {
	case "login":
		if loc.From != "" && loc.From != router.PathRoot {
			a.println(hintStyle.Render(fmt.Sprintf("Please log in to open %s.", loc.From)))
		}
		return a.Login(ctx)
	case "register":
		return a.Register(ctx)
	case "dashboard":
		return a.showDashboard(ctx)
	case "add-goal":
		return a.AddGoal(ctx)
	case "goals":
		return a.showGoals(ctx)
	case "reports":
		a.println(titleStyle.Render("Reports"))
		a.println(hintStyle.Render("Reports are coming soon."))
		return nil
	default:
		a.println(titleStyle.Render("Page not found"))
		a.println(fmt.Sprintf("Nothing lives at %s. Type 'go /dashboard' to go home.", route.Path))
		return nil
	}
}

func (a *App) showDashboard(ctx context.Context) error {
	a.println(titleStyle.Render("Welcome, " + a.currentUser()))

	stats, err := a.goalService.Stats(ctx)
	if err != nil {
		a.printError(forms.ErrorMessage(err, "Failed to load dashboard stats."))
		return err
	}
	a.println(renderStats(stats))
	return nil
}
