package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// UserSchema is the body accepted by signup and user update.
type UserSchema struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Normalize trims the identifying fields. The password is kept verbatim.
func (r *UserSchema) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r UserSchema) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required, validation.Length(3, 254), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(1, 72)),
	)
}

// LoginRequest is decoded from the form body of the token endpoint. Username
// carries the user's email.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type TodoSchema struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	State       TodoState `json:"state"`
}

func (r TodoSchema) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.State, validation.Required, validation.In(todoStateValues()...)),
	)
}

// TodoUpdate carries a partial update; nil fields are left untouched.
type TodoUpdate struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	State       *TodoState `json:"state"`
}

func (r TodoUpdate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.State, validation.NilOrNotEmpty, validation.In(todoStateValues()...)),
	)
}

func todoStateValues() []interface{} {
	values := make([]interface{}, 0, len(TodoStates))
	for _, state := range TodoStates {
		values = append(values, state)
	}
	return values
}
