package pokeapi

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	BlankInput ErrorKind = iota + 1
	NotFound
	TransportFailure
	MalformedResponse
)

func (k ErrorKind) String() string {
	switch k {
	case BlankInput:
		return "blank_input"
	case NotFound:
		return "not_found"
	case TransportFailure:
		return "transport_failure"
	case MalformedResponse:
		return "malformed_response"
	}
	return fmt.Sprintf("error_kind(%d)", int(k))
}

// QueryError classifies every failed lookup. Compare kinds
// with errors.Is against the Err* sentinels.
type QueryError struct {
	Kind   ErrorKind
	Mode   LookupMode
	Detail string
	Err    error
}

var (
	ErrBlankInput        = &QueryError{Kind: BlankInput}
	ErrNotFound          = &QueryError{Kind: NotFound}
	ErrTransportFailure  = &QueryError{Kind: TransportFailure}
	ErrMalformedResponse = &QueryError{Kind: MalformedResponse}
)

func (e *QueryError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func (e *QueryError) Is(target error) bool {
	t, ok := target.(*QueryError)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of a QueryError anywhere in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Kind
	}
	return 0
}

func blankInput(mode LookupMode) *QueryError {
	return &QueryError{Kind: BlankInput, Mode: mode, Detail: "query input is blank"}
}

func notFound(mode LookupMode, status int) *QueryError {
	return &QueryError{Kind: NotFound, Mode: mode, Detail: fmt.Sprintf("%s lookup returned status %d", mode.Resource(), status)}
}

func transportFailure(mode LookupMode, err error) *QueryError {
	return &QueryError{Kind: TransportFailure, Mode: mode, Detail: err.Error(), Err: err}
}

func malformed(mode LookupMode, format string, args ...any) *QueryError {
	return &QueryError{Kind: MalformedResponse, Mode: mode, Detail: fmt.Sprintf(format, args...)}
}
