package service

import "fmt"

// ValidationError reports malformed caller input, naming the offending
// field. It maps to a client-error response.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// GenerationError reports that the completion backend was unreachable or
// rejected the call before any content was produced.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Message, e.Err)
	}
	return "generation failed: " + e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// MalformedOutputError reports that the backend replied but its output
// could not be parsed or did not match the declared schema. Kept distinct
// from GenerationError so the audit trail can tell "model unreachable"
// from "model replied with garbage".
type MalformedOutputError struct {
	Message string
	Err     error
}

func (e *MalformedOutputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed model output: %s: %v", e.Message, e.Err)
	}
	return "malformed model output: " + e.Message
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}

// SafetyError reports that generated output contained an ingredient
// matching one of the profile's exclusion sets.
type SafetyError struct {
	Ingredient string
	Term       string
	Rule       string
}

func (e *SafetyError) Error() string {
	return fmt.Sprintf("safety violation: ingredient %q matches %s %q", e.Ingredient, e.Rule, e.Term)
}
