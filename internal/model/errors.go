package model

import (
	"errors"
	"fmt"
)

// ErrNilDocument is returned when validation is asked to judge no document at all
var ErrNilDocument = errors.New("invoice document is nil")

// Format identifies the wire format a document was decoded from
type Format string

const (
	FormatUBLInvoice    Format = "ubl-invoice"
	FormatUBLCreditNote Format = "ubl-creditnote"
	FormatJSON          Format = "json"
	FormatUnknown       Format = "unknown"
)

// ParseError represents decoding errors with format context
type ParseError struct {
	Format  Format
	Field   string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s (%v)", e.Format, e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Format, e.Field, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new parse error
func NewParseError(format Format, field, message string, cause error) *ParseError {
	return &ParseError{
		Format:  format,
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}

// ContractError signals a caller mistake that is not a compliance violation,
// such as passing a nil document to the validator.
type ContractError struct {
	Operation string
	Cause     error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %v", e.Operation, e.Cause)
}

func (e *ContractError) Unwrap() error {
	return e.Cause
}

// NewContractError creates a new contract error
func NewContractError(operation string, cause error) *ContractError {
	return &ContractError{
		Operation: operation,
		Cause:     cause,
	}
}
