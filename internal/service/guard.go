package service

import "go-todo-api/internal/model"

// Authorize allows a mutation only when actor owns the target user record.
func Authorize(actor model.User, targetID int64) error {
	if actor.ID == 0 || actor.ID != targetID {
		return model.ErrForbidden
	}
	return nil
}
