package errors

import (
	"encoding/json"
	"fmt"
)

// ValidationErr signals a malformed value (email, phone, document, name)
// rejected at construction or mutation time.
type ValidationErr struct {
	target  string
	message string
}

func (e *ValidationErr) Error() string {
	return e.message
}

func (e *ValidationErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.target, Message: e.message})
}

func NewValidationErr(target string, msg string) error {
	return &ValidationErr{
		target:  target,
		message: msg,
	}
}

// StateErr signals an operation rejected by the aggregate's lifecycle state,
// e.g. any mutation attempted on an archived customer.
type StateErr struct {
	target  string
	message string
}

func (e *StateErr) Error() string {
	return e.message
}

func NewStateErr(target string, msg string) error {
	return &StateErr{
		target:  target,
		message: msg,
	}
}

// ConsistencyErr signals a cross-aggregate rule violation - the aggregates
// passed to a domain service do not fit together.
type ConsistencyErr struct {
	target  string
	message string
}

func (e *ConsistencyErr) Error() string {
	return e.message
}

func NewConsistencyErr(target string, msg string) error {
	return &ConsistencyErr{
		target:  target,
		message: msg,
	}
}

// PreconditionErr signals programmer misuse (nil/missing required argument),
// not a business condition.
type PreconditionErr struct {
	message string
}

func (e *PreconditionErr) Error() string {
	return e.message
}

func NewPreconditionErr(format string, args ...any) error {
	return &PreconditionErr{message: fmt.Sprintf(format, args...)}
}

type EntryNotFoundErr struct {
	message string
}

func (e *EntryNotFoundErr) Error() string {
	return e.message
}

func NewEntryNotFoundErr(msg string) *EntryNotFoundErr {
	return &EntryNotFoundErr{message: msg}
}
