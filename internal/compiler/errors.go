package compiler

import (
	"errors"
	"fmt"
	"strings"
)

// Validation error codes (E100-E199)
const (
	// Tree structure errors (E101-E109)
	ErrTopMissing       = "E101" // no TOP node
	ErrTopDuplicate     = "E102" // more than one TOP node
	ErrGateNoChildren   = "E103" // TOP/AND/OR gate with zero children
	ErrBasicHasChildren = "E104" // BASIC node with outgoing edges
	ErrUnknownEndpoint  = "E105" // edge references an unknown node ID
	ErrCycleDetected    = "E106" // tree is not acyclic
	ErrEmptyEvent       = "E107" // node with empty event name
	ErrInvalidKind      = "E108" // node kind outside {top,and,or,basic}
	ErrDuplicateID      = "E109" // duplicate node ID
	ErrMultipleParents  = "E110" // node with more than one parent
)

// ValidationError represents a structural fault-tree error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// InvalidTreeError aggregates all structural errors found in one pass.
// The compiler fails fast: no partial gate table is produced.
type InvalidTreeError struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *InvalidTreeError) Error() string {
	if len(e.Errors) == 1 {
		return "invalid fault tree: " + e.Errors[0].Error()
	}
	msgs := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		msgs[i] = ve.Error()
	}
	return fmt.Sprintf("invalid fault tree (%d errors): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// HasCode reports whether any aggregated error carries the given code.
func (e *InvalidTreeError) HasCode(code string) bool {
	for _, ve := range e.Errors {
		if ve.Code == code {
			return true
		}
	}
	return false
}

// IsCycleError returns true if the error reports a cyclic tree.
// Uses errors.As to handle wrapped errors.
func IsCycleError(err error) bool {
	var ite *InvalidTreeError
	if errors.As(err, &ite) {
		return ite.HasCode(ErrCycleDetected)
	}
	return false
}
