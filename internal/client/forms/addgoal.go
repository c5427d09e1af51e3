package forms

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/goalkeeper/internal/client/client"
	"github.com/dmitrijs2005/goalkeeper/internal/client/models"
	"github.com/dmitrijs2005/goalkeeper/internal/common"
)

const (
	msgCreateNeedsLogin = "You must be logged in to create a goal. Please login first."
	msgGoalCreated      = "Goal created successfully!"
	addGoalFallback     = "Failed to create goal. Please try again."
)

// GoalCreator creates goals. services.GoalService satisfies it.
type GoalCreator interface {
	Create(ctx context.Context, g models.NewGoal) (*models.Goal, error)
}

// AddGoalForm collects a new goal. EndDate follows StartDate and Type; use
// SetStartDate and SetType to keep it in step.
type AddGoalForm struct {
	Title       string
	Description string
	Type        models.GoalType
	Priority    models.Priority
	Category    string
	StartDate   string
	EndDate     string

	goals  GoalCreator
	tokens client.TokenSource
	now    func() time.Time
	status
}

func NewAddGoalForm(goals GoalCreator, tokens client.TokenSource) *AddGoalForm {
	f := &AddGoalForm{goals: goals, tokens: tokens, now: time.Now}
	f.Reset()
	return f
}

func (f *AddGoalForm) today() string {
	return f.now().Format(common.DateLayout)
}

// Reset clears every field; both dates become today.
func (f *AddGoalForm) Reset() {
	f.Title, f.Description, f.Category = "", "", ""
	f.Type, f.Priority = "", ""
	f.StartDate = f.today()
	f.EndDate = f.StartDate
}

func (f *AddGoalForm) SetStartDate(s string) {
	f.StartDate = strings.TrimSpace(s)
	f.EndDate = models.ComputeEndDate(f.StartDate, f.Type)
}

func (f *AddGoalForm) SetType(t models.GoalType) {
	f.Type = t
	f.EndDate = models.ComputeEndDate(f.StartDate, f.Type)
}

func (f *AddGoalForm) Validate() ValidationErrors {
	errs := ValidationErrors{}

	title := strings.TrimSpace(f.Title)
	switch n := utf8.RuneCountInString(title); {
	case n == 0:
		errs["goal_title"] = "Goal title is required"
	case n < 3:
		errs["goal_title"] = "Goal title must be at least 3 characters"
	case n > 100:
		errs["goal_title"] = "Goal title must be less than 100 characters"
	}

	desc := strings.TrimSpace(f.Description)
	switch n := utf8.RuneCountInString(desc); {
	case n == 0:
		errs["description"] = "Description is required"
	case n < 10:
		errs["description"] = "Description must be at least 10 characters"
	case n > 500:
		errs["description"] = "Description must be less than 500 characters"
	}

	switch {
	case f.Type == "":
		errs["goal_type"] = "Goal type is required"
	case !f.Type.Valid():
		errs["goal_type"] = "Please select a valid goal type"
	}

	switch {
	case f.Priority == "":
		errs["priority"] = "Priority is required"
	case !f.Priority.Valid():
		errs["priority"] = "Please select a valid priority"
	}

	switch cat := strings.TrimSpace(f.Category); {
	case cat == "":
		errs["category"] = "Category is required"
	case utf8.RuneCountInString(cat) < 2:
		errs["category"] = "Category must be at least 2 characters"
	}

	start, startErr := time.Parse(common.DateLayout, f.StartDate)
	switch {
	case f.StartDate == "":
		errs["start_date"] = "Start date is required"
	case startErr != nil:
		errs["start_date"] = "Start date must be a YYYY-MM-DD date"
	case f.StartDate < f.today():
		errs["start_date"] = "Start date cannot be in the past"
	}

	end, endErr := time.Parse(common.DateLayout, f.EndDate)
	switch {
	case f.EndDate == "":
		errs["end_date"] = "End date is required"
	case endErr != nil:
		errs["end_date"] = "End date must be a YYYY-MM-DD date"
	case startErr == nil && end.Before(start):
		errs["end_date"] = "End date must be after start date"
	case startErr == nil && f.Type.Valid() && f.EndDate != models.ComputeEndDate(f.StartDate, f.Type):
		errs["end_date"] = "End date does not match the goal type"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Submit validates and creates the goal. Without a stored token it stops
// before any request is made.
func (f *AddGoalForm) Submit(ctx context.Context) error {
	if err := f.begin(); err != nil {
		return err
	}
	defer f.end()

	if errs := f.Validate(); errs != nil {
		f.fail(errs.Error())
		return errs
	}

	tok, err := f.tokens.Token(ctx)
	if err != nil {
		f.fail(ErrorMessage(err, addGoalFallback))
		return err
	}
	if tok == "" {
		f.fail(msgCreateNeedsLogin)
		return common.ErrorNoToken
	}

	_, err = f.goals.Create(ctx, models.NewGoal{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Type:        f.Type,
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		Priority:    f.Priority,
		Category:    strings.TrimSpace(f.Category),
	})
	if err != nil {
		f.fail(ErrorMessage(err, addGoalFallback))
		return err
	}

	f.Reset()
	f.succeed(msgGoalCreated)
	return nil
}
