package model

import "time"

type TodoState string

const (
	TodoStateDraft TodoState = "draft"
	TodoStateTodo  TodoState = "todo"
	TodoStateDoing TodoState = "doing"
	TodoStateDone  TodoState = "done"
	TodoStateTrash TodoState = "trash"
)

var TodoStates = []TodoState{TodoStateDraft, TodoStateTodo, TodoStateDoing, TodoStateDone, TodoStateTrash}

func (s TodoState) Valid() bool {
	for _, state := range TodoStates {
		if s == state {
			return true
		}
	}
	return false
}

type Todo struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	State       TodoState `json:"state"`
	UserID      int64     `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TodoList struct {
	Todos []Todo `json:"todos"`
}

// TodoFilter narrows a listing to one owner. Empty fields match everything.
type TodoFilter struct {
	UserID      int64
	Title       string
	Description string
	State       TodoState
	Offset      int
	Limit       int
}
