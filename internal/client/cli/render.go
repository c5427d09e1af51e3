package cli

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dmitrijs2005/goalkeeper/internal/client/models"
	"github.com/dmitrijs2005/goalkeeper/internal/client/router"
)

var (
	brandStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	activeStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	linkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	hintStyle    = lipgloss.NewStyle().Faint(true)
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// renderNavbar draws the top bar: brand, the view links for a signed-in
// user (current one highlighted) and the identity or the auth links.
func renderNavbar(current, user string, mode Mode) string {
	parts := []string{brandStyle.Render("GoalKeeper")}

	if user != "" {
		for _, r := range router.NavLinks() {
			style := linkStyle
			if r.Path == current || (current == router.PathRoot && r.Path == router.PathDashboard) {
				style = activeStyle
			}
			parts = append(parts, style.Render(r.Title))
		}
		parts = append(parts, "| "+user)
	} else {
		parts = append(parts, linkStyle.Render("Login"), linkStyle.Render("Register"))
	}

	if mode != "" {
		parts = append(parts, hintStyle.Render("["+string(mode)+"]"))
	}
	return strings.Join(parts, "  ")
}

func renderGoalTable(goals []models.Goal) string {
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		status := "active"
		if g.IsCompleted {
			status = "done"
		}
		rows = append(rows, []string{
			string(g.ID),
			shorten(g.Title, 32),
			string(g.Type),
			string(g.Priority),
			g.Category,
			g.StartDate,
			g.EndDate,
			status,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "TYPE", "PRIORITY", "CATEGORY", "START", "END", "STATUS").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}

func renderGoal(g *models.Goal) string {
	status := "active"
	if g.IsCompleted {
		status = "completed"
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(g.Title))
	b.WriteString("\n")
	fmt.Fprintf(&b, "ID:          %s\n", g.ID)
	fmt.Fprintf(&b, "Description: %s\n", g.Description)
	fmt.Fprintf(&b, "Type:        %s\n", g.Type)
	fmt.Fprintf(&b, "Priority:    %s\n", g.Priority)
	fmt.Fprintf(&b, "Category:    %s\n", g.Category)
	fmt.Fprintf(&b, "Dates:       %s .. %s\n", g.StartDate, g.EndDate)
	fmt.Fprintf(&b, "Status:      %s", status)
	return b.String()
}

func renderStats(stats map[string]any) string {
	if len(stats) == 0 {
		return hintStyle.Render("No statistics yet.")
	}
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%-20s %v", k+":", stats[k]))
	}
	return strings.Join(lines, "\n")
}

func shorten(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
