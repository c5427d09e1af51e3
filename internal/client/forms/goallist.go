package forms

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/goalkeeper/internal/client/client"
	"github.com/dmitrijs2005/goalkeeper/internal/client/models"
	"github.com/dmitrijs2005/goalkeeper/internal/common"
)

const (
	msgListNeedsLogin   = "You must be logged in to view goals. Please login first."
	msgNoGoals          = "No goals found. Create your first goal!"
	msgListUnauthorized = "Unauthorized. Please login again."
	listFallback        = "Failed to load goals. Please try again."

	DefaultPerPage = 10
)

// PerPageOptions are the page sizes offered by the list view.
var PerPageOptions = []int{5, 10, 25, 50}

// GoalLister fetches goal pages. services.GoalService satisfies it.
type GoalLister interface {
	List(ctx context.Context, p models.ListParams) (*models.GoalPage, error)
}

// GoalList is the state behind the goal list view. Page is zero-based here
// and sent one-based. Every filter change goes back to the first page.
type GoalList struct {
	Goals []models.Goal
	Total int

	page      int
	perPage   int
	search    string
	priority  models.Priority
	goalType  models.GoalType
	completed *bool

	lister GoalLister
	tokens client.TokenSource
	status
}

func NewGoalList(lister GoalLister, tokens client.TokenSource) *GoalList {
	return &GoalList{lister: lister, tokens: tokens, perPage: DefaultPerPage}
}

// Params is the request the current state maps to.
func (l *GoalList) Params() models.ListParams {
	return models.ListParams{
		Page:     l.page + 1,
		PerPage:  l.perPage,
		Search:   l.search,
		Priority: l.priority,
		GoalType: l.goalType,
		Status:   l.completed,
	}
}

func (l *GoalList) Page() int    { return l.page }
func (l *GoalList) PerPage() int { return l.perPage }

func (l *GoalList) TotalPages() int {
	if l.Total == 0 {
		return 1
	}
	return (l.Total + l.perPage - 1) / l.perPage
}

// SetPage moves to the zero-based page n, clamped to the known range.
func (l *GoalList) SetPage(n int) {
	if n < 0 {
		n = 0
	}
	if last := l.TotalPages() - 1; n > last {
		n = last
	}
	l.page = n
}

func (l *GoalList) NextPage() bool {
	if l.page+1 >= l.TotalPages() {
		return false
	}
	l.page++
	return true
}

func (l *GoalList) PrevPage() bool {
	if l.page == 0 {
		return false
	}
	l.page--
	return true
}

func (l *GoalList) SetPerPage(n int) {
	if n <= 0 {
		n = DefaultPerPage
	}
	l.perPage = n
	l.page = 0
}

func (l *GoalList) SetSearch(s string) {
	l.search = strings.TrimSpace(s)
	l.page = 0
}

func (l *GoalList) SetPriority(p models.Priority) {
	l.priority = p
	l.page = 0
}

func (l *GoalList) SetGoalType(t models.GoalType) {
	l.goalType = t
	l.page = 0
}

// SetStatus filters by completion; nil shows both.
func (l *GoalList) SetStatus(completed *bool) {
	l.completed = completed
	l.page = 0
}

func (l *GoalList) ClearFilters() {
	l.search = ""
	l.priority = ""
	l.goalType = ""
	l.completed = nil
	l.page = 0
}

// Load fetches the current page. A 404 is an empty list, not a failure.
func (l *GoalList) Load(ctx context.Context) error {
	if err := l.begin(); err != nil {
		return err
	}
	defer l.end()

	tok, err := l.tokens.Token(ctx)
	if err != nil {
		l.fail(listFallback)
		return err
	}
	if tok == "" {
		l.fail(msgListNeedsLogin)
		return common.ErrorNoToken
	}

	page, err := l.lister.List(ctx, l.Params())
	if err != nil {
		l.fail(listMessage(err))
		if client.StatusCode(err) == http.StatusNotFound {
			l.Goals, l.Total = []models.Goal{}, 0
			return nil
		}
		return err
	}

	l.Goals, l.Total = page.Goals, page.Total
	return nil
}

func listMessage(err error) string {
	switch client.StatusCode(err) {
	case http.StatusNotFound:
		return msgNoGoals
	case http.StatusUnauthorized:
		return msgListUnauthorized
	}
	var ae *client.APIError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return listFallback
}
