package models

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/goalkeeper/internal/common"
)

type GoalType string

const (
	GoalTypeDaily   GoalType = "daily"
	GoalTypeWeekly  GoalType = "weekly"
	GoalTypeMonthly GoalType = "monthly"
)

// GoalTypes lists the accepted goal types in display order.
var GoalTypes = []GoalType{GoalTypeDaily, GoalTypeWeekly, GoalTypeMonthly}

func (t GoalType) Valid() bool {
	switch t {
	case GoalTypeDaily, GoalTypeWeekly, GoalTypeMonthly:
		return true
	}
	return false
}

// EndDate returns the last day of a goal of type t starting on start.
// Monthly goals end the day before the same day of the next month; an
// overflowing day is normalised (Jan 31 -> Mar 1 in a leap year).
func (t GoalType) EndDate(start time.Time) time.Time {
	switch t {
	case GoalTypeWeekly:
		return start.AddDate(0, 0, 6)
	case GoalTypeMonthly:
		return start.AddDate(0, 1, -1)
	default:
		return start
	}
}

// ComputeEndDate is EndDate over YYYY-MM-DD strings. An empty or unparseable
// start, or an unknown type, returns start unchanged.
func ComputeEndDate(start string, t GoalType) string {
	if start == "" || !t.Valid() {
		return start
	}
	d, err := time.Parse(common.DateLayout, start)
	if err != nil {
		return start
	}
	return t.EndDate(d).Format(common.DateLayout)
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// GoalID is a goal identifier. The API may send it as a JSON number or string.
type GoalID string

func (id *GoalID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = GoalID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("goal id: %w", err)
	}
	*id = GoalID(n.String())
	return nil
}

// Goal is a goal as returned by the API. Dates are YYYY-MM-DD strings.
type Goal struct {
	ID          GoalID    `json:"id"`
	Title       string    `json:"goal_title"`
	Description string    `json:"description"`
	Type        GoalType  `json:"goal_type"`
	Priority    Priority  `json:"priority"`
	Category    string    `json:"category"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewGoal is the POST /goals body.
type NewGoal struct {
	Title       string   `json:"goal_title"`
	Description string   `json:"description"`
	Type        GoalType `json:"goal_type"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Priority    Priority `json:"priority"`
	Category    string   `json:"category"`
}

// GoalUpdate is the PUT /goals/{id} body; nil fields are left unchanged.
type GoalUpdate struct {
	Title       *string   `json:"goal_title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Type        *GoalType `json:"goal_type,omitempty"`
	StartDate   *string   `json:"start_date,omitempty"`
	EndDate     *string   `json:"end_date,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	Category    *string   `json:"category,omitempty"`
	IsCompleted *bool     `json:"is_completed,omitempty"`
}

// ListParams selects a page of goals. Page is 1-based; empty filters are not sent.
type ListParams struct {
	Page     int
	PerPage  int
	Search   string
	Priority Priority
	GoalType GoalType
	Status   *bool
}

// Query encodes p as page, per_page, search, priority, goal_type, status.
func (p ListParams) Query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Priority != "" {
		q.Set("priority", string(p.Priority))
	}
	if p.GoalType != "" {
		q.Set("goal_type", string(p.GoalType))
	}
	if p.Status != nil {
		q.Set("status", strconv.FormatBool(*p.Status))
	}
	return q
}

// GoalPage is one page of the goal list and the total number of matches.
type GoalPage struct {
	Goals []Goal
	Total int
}

// DashboardStats is the free-form GET /dashboard/stats payload.
type DashboardStats map[string]any
