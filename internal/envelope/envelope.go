package envelope

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Operation names the service operation an envelope belongs to.
type Operation string

const (
	OpCreate  Operation = "CREATE"
	OpRead    Operation = "READ"
	OpUpdate  Operation = "UPDATE"
	OpDelete  Operation = "DELETE"
	OpSignIn  Operation = "SIGN_IN"
	OpRefresh Operation = "REFRESH"
	OpSignOut Operation = "SIGN_OUT"
)

var verbs = map[Operation]string{
	OpCreate:  "create",
	OpRead:    "read",
	OpUpdate:  "update",
	OpDelete:  "delete",
	OpSignIn:  "sign in",
	OpRefresh: "refresh",
	OpSignOut: "sign out",
}

// Verb returns the human readable verb used in messages.
func (op Operation) Verb() string {
	if v, ok := verbs[op]; ok {
		return v
	}
	return strings.ToLower(string(op))
}

// ServiceCode is a business level outcome code, independent of HTTP.
type ServiceCode string

const (
	CodeValidation         ServiceCode = "VALIDATION"
	CodeNotFound           ServiceCode = "NOT_FOUND"
	CodePasswordsDontMatch ServiceCode = "PASSWORDS_DONT_MATCH"
	CodeDuplicateUsername  ServiceCode = "DUPLICATE_USERNAME"
	CodeDuplicateEmail     ServiceCode = "DUPLICATE_EMAIL"
	CodeDuplicateUUID      ServiceCode = "DUPLICATE_UUID"
	CodeUnexpectedDBError  ServiceCode = "UNEXPECTED_DB_ERROR"
	CodeInvalidToken       ServiceCode = "INVALID_TOKEN"
)

// IsDuplicate reports whether c is one of the DUPLICATE_* codes.
func (c ServiceCode) IsDuplicate() bool {
	return strings.HasPrefix(string(c), "DUPLICATE_")
}

// Context carries the values an envelope message is built from.
type Context map[string]any

// Envelope is a successful service outcome.
type Envelope[T any] struct {
	Message string `json:"message"`
	Payload T      `json:"payload,omitempty"`
}

// Failure is an expected, structured service failure.
type Failure struct {
	Operation Operation   `json:"-"`
	Code      ServiceCode `json:"code"`
	Message   string      `json:"message"`
	Payload   Context     `json:"payload,omitempty"`
}

func (f *Failure) Error() string {
	return f.Message
}

// AsFailure returns the *Failure in err's chain, if any.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// Builder produces envelopes and failures for a single operation.
type Builder struct {
	op Operation
}

// New returns a Builder bound to op.
func New(op Operation) Builder {
	return Builder{op: op}
}

// Operation returns the operation b is bound to.
func (b Builder) Operation() Operation {
	return b.op
}

// Failure builds a failure carrying code and ctx.
func (b Builder) Failure(code ServiceCode, ctx Context) *Failure {
	return &Failure{
		Operation: b.op,
		Code:      code,
		Message:   fmt.Sprintf("Failed to %s users [%s]%s", b.op.Verb(), code, describe(ctx)),
		Payload:   ctx,
	}
}

// SuccessMessage returns the message of a successful envelope for ctx.
func (b Builder) SuccessMessage(ctx Context) string {
	return fmt.Sprintf("Successfully %s users%s", b.op.Verb(), describe(ctx))
}

// Success builds a successful envelope.
func Success[T any](b Builder, ctx Context, payload T) *Envelope[T] {
	return &Envelope[T]{
		Message: b.SuccessMessage(ctx),
		Payload: payload,
	}
}

// describe renders ctx as ": key 'value', key 'value'" with keys sorted.
func describe(ctx Context) string {
	if len(ctx) == 0 {
		return ""
	}

	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s '%v'", k, ctx[k]))
	}
	return ": " + strings.Join(parts, ", ")
}
