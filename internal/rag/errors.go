package rag

import (
	"errors"
	"fmt"

	"learnlog/internal/quota"
)

var (
	// ErrRetrieval is returned when embedding the query or searching the
	// vector store fails. Distinct from "no relevant results", which is a
	// valid empty-state response.
	ErrRetrieval = errors.New("retrieval failed")
	// ErrGeneration is returned when the LLM call fails in powered mode.
	ErrGeneration = errors.New("generation failed")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// QuotaExceededError is returned when the user's monthly query limit is
// reached. It carries the usage snapshot so callers can display it.
type QuotaExceededError struct {
	Usage quota.Usage
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("monthly query limit reached: %d/%d for %s",
		e.Usage.CurrentUsage, e.Usage.Limit, e.Usage.Month)
}
