package model

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Attachee is an intern tracked across one of the fixed divisions.
//
// The record owns its task and feedback lists. The performance score is
// a pure function of the feedback list: it is recomputed on every
// append and cannot be mutated from outside, which keeps the invariant
// "score == round(mean of feedback scores), 0 when empty" enforced by
// construction.
type Attachee struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Division Division `json:"division"`

	tasks    []Task
	feedback []Feedback
	score    int
}

// NewAttachee builds a record with empty task/feedback lists and a zero
// performance score. The division is validated against the closed set;
// unknown values fail with ErrInvalidDivision.
func NewAttachee(name, email, division string) (*Attachee, error) {
	d, err := ParseDivision(division)
	if err != nil {
		return nil, err
	}
	return &Attachee{
		Name:     name,
		Email:    email,
		Division: d,
	}, nil
}

// AssignTask appends a new task with the next dense, 1-based id.
// Priority range is the caller's responsibility.
func (a *Attachee) AssignTask(description, deadline string, priority int) Task {
	t := Task{
		ID:          len(a.tasks) + 1,
		Description: description,
		Deadline:    deadline,
		Priority:    priority,
	}
	a.tasks = append(a.tasks, t)
	return t
}

// CompleteTask marks the task with the given id completed and records
// the completion date. An unknown id is a best-effort no-op: the task
// list is left unchanged and false is returned. Completing a task twice
// only refreshes its completion date.
func (a *Attachee) CompleteTask(taskID int, completionDate string) bool {
	for i := range a.tasks {
		if a.tasks[i].ID == taskID {
			a.tasks[i].Completed = true
			a.tasks[i].CompletionDate = completionDate
			return true
		}
	}
	return false
}

// AddFeedback appends a feedback entry stamped at the given time, then
// recomputes the performance score. Score bounds are not validated here.
func (a *Attachee) AddFeedback(comment string, score int, reviewer string, at time.Time) Feedback {
	f := Feedback{
		ID:        uuid.New().String(),
		Comment:   comment,
		Score:     score,
		Reviewer:  reviewer,
		CreatedAt: at,
	}
	a.feedback = append(a.feedback, f)
	a.recomputeScore()
	return f
}

// recomputeScore sets score to the rounded arithmetic mean of all
// feedback scores, rounding half away from zero (88.5 -> 89), or 0
// when there is no feedback.
func (a *Attachee) recomputeScore() {
	if len(a.feedback) == 0 {
		a.score = 0
		return
	}
	sum := 0
	for _, f := range a.feedback {
		sum += f.Score
	}
	a.score = int(math.Round(float64(sum) / float64(len(a.feedback))))
}

// PerformanceScore returns the derived score (0 with no feedback).
func (a *Attachee) PerformanceScore() int {
	return a.score
}

// Tasks returns a copy of the task list in assignment order.
func (a *Attachee) Tasks() []Task {
	out := make([]Task, len(a.tasks))
	copy(out, a.tasks)
	return out
}

// FeedbackEntries returns a copy of the feedback list in insertion order.
func (a *Attachee) FeedbackEntries() []Feedback {
	out := make([]Feedback, len(a.feedback))
	copy(out, a.feedback)
	return out
}

// Summary is the read model consumed by the report and the HTTP layer.
type Summary struct {
	Name             string   `json:"name"`
	Division         Division `json:"division"`
	PerformanceScore int      `json:"performance_score"`
	TasksAssigned    int      `json:"tasks_assigned"`
	TasksCompleted   int      `json:"tasks_completed"`
	TasksPending     int      `json:"tasks_pending"`
	FeedbackCount    int      `json:"feedback_count"`
}

// Summary produces the attachee's performance summary. Pure read.
func (a *Attachee) Summary() Summary {
	completed := 0
	for _, t := range a.tasks {
		if t.Completed {
			completed++
		}
	}
	return Summary{
		Name:             a.Name,
		Division:         a.Division,
		PerformanceScore: a.score,
		TasksAssigned:    len(a.tasks),
		TasksCompleted:   completed,
		TasksPending:     len(a.tasks) - completed,
		FeedbackCount:    len(a.feedback),
	}
}
