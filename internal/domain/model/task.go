package model

// Task is a unit of work assigned to a single attachee.
//
// IDs are sequential, 1-based and dense within the owning attachee's
// task list (tasks are never deleted, so the next id is always
// len(tasks)+1). They are not unique across attachees.
type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	// Deadline is an opaque date-like string supplied by the caller;
	// the core does not parse or validate its format.
	Deadline string `json:"deadline"`
	// Priority is expected to be in [1,5]. The range is not enforced at
	// this layer; callers own the convention.
	Priority  int  `json:"priority"`
	Completed bool `json:"completed"`
	// CompletionDate is set only when the task is completed. Completing
	// an already-completed task refreshes it.
	CompletionDate string `json:"completion_date,omitempty"`
}
