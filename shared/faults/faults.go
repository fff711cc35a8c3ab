// Package faults defines the error taxonomy shared by the presentation layer:
// configuration failures at startup, contract violations between collaborators,
// and payload decode failures. Absence of data is never a fault.
package faults

import (
	"errors"
	"fmt"
)

// Kind classifies a fault.
type Kind int

const (
	// Configuration covers startup wiring failures: missing assets,
	// unresolvable topics, surface creation. The render loop must not start.
	Configuration Kind = iota
	// Contract covers collaborator bugs surfacing at runtime: lookups of
	// unregistered texture ids or unconfigured topics.
	Contract
	// Decode covers payloads that fail to deserialize.
	Decode
)

func (k Kind) String() string {
	switch k {
	case Configuration:
		return "configuration"
	case Contract:
		return "contract violation"
	case Decode:
		return "decode"
	}
	return "unknown"
}

// Error carries a fault kind plus the operation that raised it.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v (%s)", e.Op, e.Err, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Configurationf builds a Configuration fault.
func Configurationf(op, format string, args ...any) error {
	return &Error{Kind: Configuration, Op: op, Err: fmt.Errorf(format, args...)}
}

// Contractf builds a Contract fault.
func Contractf(op, format string, args ...any) error {
	return &Error{Kind: Contract, Op: op, Err: fmt.Errorf(format, args...)}
}

// Decodef builds a Decode fault.
func Decodef(op, format string, args ...any) error {
	return &Error{Kind: Decode, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf reports the fault kind of err, if it carries one.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}
