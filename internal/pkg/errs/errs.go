package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
// Every typed error in this package unwraps to exactly one of these.
var (
	ErrValueIsRequired         = errors.New("value is required")
	ErrValueIsInvalid          = errors.New("value is invalid")
	ErrObjectNotFound          = errors.New("object not found")
	ErrForbidden               = errors.New("operation is forbidden")
	ErrConflict                = errors.New("object already exists")
	ErrInsufficientInventory   = errors.New("insufficient inventory")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// sanitize strips newlines from values interpolated into error messages
// so a single error always renders as a single log line.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}

// ValueIsRequiredError indicates that a required parameter was missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a parameter was present but malformed:
// an unknown enum value, an out-of-range coordinate, a non-positive quantity.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates that an identifier did not resolve to a stored object.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ForbiddenError indicates that the access policy denied the operation for the
// acting user. Reason is safe to surface to the caller: it names the rule that
// denied, never the data the role is not entitled to see.
type ForbiddenError struct {
	Reason string
	Cause  error
}

// NewForbiddenError creates a ForbiddenError with a caller-visible reason.
func NewForbiddenError(reason string) *ForbiddenError {
	return &ForbiddenError{Reason: reason}
}

// NewForbiddenErrorWithCause creates a ForbiddenError wrapping an underlying cause.
func NewForbiddenErrorWithCause(reason string, cause error) *ForbiddenError {
	return &ForbiddenError{Reason: reason, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrForbidden, e.Reason, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrForbidden, e.Reason))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// ConflictError indicates a uniqueness violation: a duplicate consignment for
// an (order, warehouse) pair, a duplicate cart line, a duplicate stock record.
type ConflictError struct {
	Resource string
	Key      string
	Cause    error
}

// NewConflictError creates a ConflictError for the resource and conflicting key.
func NewConflictError(resource, key string) *ConflictError {
	return &ConflictError{Resource: resource, Key: key}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(resource, key string, cause error) *ConflictError {
	return &ConflictError{Resource: resource, Key: key, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s %s (cause: %s)", ErrConflict, e.Resource, e.Key, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %s", ErrConflict, e.Resource, e.Key))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// InsufficientInventoryError indicates that a reservation asked for more stock
// than a (warehouse, product) record has available. Requested is the quantity
// that could not be reserved.
type InsufficientInventoryError struct {
	WarehouseID string
	ProductID   string
	Requested   int
}

// NewInsufficientInventoryError creates an InsufficientInventoryError for the
// (warehouse, product) pair and the requested quantity.
func NewInsufficientInventoryError(warehouseID, productID string, requested int) *InsufficientInventoryError {
	return &InsufficientInventoryError{
		WarehouseID: warehouseID,
		ProductID:   productID,
		Requested:   requested,
	}
}

func (e *InsufficientInventoryError) Error() string {
	return sanitize(fmt.Sprintf("%s: warehouse %s, product %s, requested %d",
		ErrInsufficientInventory, e.WarehouseID, e.ProductID, e.Requested))
}

func (e *InsufficientInventoryError) Unwrap() error {
	return ErrInsufficientInventory
}

// InvalidStatusTransitionError indicates an attempted state machine edge that
// is not in the transition table. It carries both the current and the
// attempted status so the caller can see exactly what was rejected.
type InvalidStatusTransitionError struct {
	Entity string
	From   string
	To     string
}

// NewInvalidStatusTransitionError creates an InvalidStatusTransitionError for
// the entity kind and the rejected (from, to) pair.
func NewInvalidStatusTransitionError(entity, from, to string) *InvalidStatusTransitionError {
	return &InvalidStatusTransitionError{Entity: entity, From: from, To: to}
}

func (e *InvalidStatusTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s cannot move from %s to %s",
		ErrInvalidStatusTransition, e.Entity, e.From, e.To))
}

func (e *InvalidStatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}
