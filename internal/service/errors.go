package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRecipeNotFound is returned when a single-document lookup matches nothing
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrNoRecipesFound is returned when a filtered listing matches nothing
	ErrNoRecipesFound = errors.New("no recipes found")
)

// ValidationError carries the human readable messages of a rejected request
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// StoreError wraps an unexpected failure of the store or its connection
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
