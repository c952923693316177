package validator

import (
	"log/slog"
	"runtime/debug"

	"github.com/dmitrymomot/asserttypes/pkg/logger"
)

// Func validates value, with optional extra arguments, and returns it
// unchanged when it conforms.
type Func func(value any, args ...any) (any, error)

// Validator runs checks under a fixed Config. It holds no mutable state and is
// safe for concurrent use.
type Validator struct {
	cfg    Config
	bypass bool
	log    *slog.Logger
	trap   func(*Error)
}

// Option configures a Validator.
type Option func(*Validator)

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(v *Validator) { v.cfg = cfg }
}

// WithLogger sets the logger receiving failure records. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.log = l
		}
	}
}

// WithTrap sets the hook run on failures when Config.DebugOnError is set.
// A debugger-driven setup can pass func(*Error) { runtime.Breakpoint() }.
func WithTrap(fn func(*Error)) Option {
	return func(v *Validator) {
		if fn != nil {
			v.trap = fn
		}
	}
}

// New builds a Validator. Without options it checks everything, logs nowhere
// and wraps messages at 120 columns.
func New(opts ...Option) *Validator {
	v := &Validator{
		cfg: DefaultConfig(),
		log: logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.trap == nil {
		v.trap = v.logTrap
	}
	v.bypass = v.cfg.Bypassed()
	return v
}

// NewProduction builds a Validator that never checks anything, whatever the
// configuration says.
func NewProduction(opts ...Option) *Validator {
	v := New(opts...)
	v.bypass = true
	return v
}

// Config returns the configuration the validator was built with.
func (v *Validator) Config() Config {
	return v.cfg
}

// Bypassed reports whether the validator passes every value through.
func (v *Validator) Bypassed() bool {
	return v.bypass
}

// Validate checks value against descriptor, passing args to the resolved
// predicate after any arguments the descriptor carries.
//
//	v.Validate("posInt|str", x)
//	v.Validate("arrOf", points, validator.Seq{"shape", validator.Shape{"x": "int", "y": "int"}})
func (v *Validator) Validate(descriptor, value any, args ...any) (any, error) {
	if v.bypass {
		return value, nil
	}
	if f := CheckDescriptor(descriptor, value, args...); f != nil {
		callArgs := append([]any{descriptor, value}, args...)
		return nil, v.fail("type", callArgs, f)
	}
	return value, nil
}

// MustValidate is like Validate but panics with the *Error.
func (v *Validator) MustValidate(descriptor, value any, args ...any) any {
	out, err := v.Validate(descriptor, value, args...)
	if err != nil {
		panic(err)
	}
	return out
}

// Err returns the validation error for value, or nil.
func (v *Validator) Err(descriptor, value any, args ...any) error {
	_, err := v.Validate(descriptor, value, args...)
	return err
}

// Func returns descriptor as a directly callable validator. Errors name the
// descriptor (the registered or derived type name) as the failing operation.
func (v *Validator) Func(descriptor any) Func {
	op := opName(descriptor)
	return func(value any, args ...any) (any, error) {
		if v.bypass {
			return value, nil
		}
		if f := CheckDescriptor(descriptor, value, args...); f != nil {
			return nil, v.fail(op, append([]any{value}, args...), f)
		}
		return value, nil
	}
}

// Derive is the package-level Derive with the failure logged and trapped like
// any other.
func (v *Validator) Derive(name string, base any, partialArgs ...any) (*Type, error) {
	t, f := derive(name, base, partialArgs)
	if f != nil {
		return nil, v.fail("derive", append([]any{name, base}, partialArgs...), f)
	}
	return t, nil
}

func (v *Validator) fail(op string, args []any, f *Failure) *Error {
	err := newError(op, args, f, v.cfg.LineWidth)
	v.log.Debug("validation failed",
		logger.Component("validator"),
		logger.Operation(op),
		logger.Args(args),
		logger.Kind(f.Root().Kind.String()),
		logger.Error(err),
	)
	if v.cfg.DebugOnError {
		v.trap(err)
	}
	return err
}

func (v *Validator) logTrap(err *Error) {
	v.log.Debug("validation trap",
		logger.Operation(err.Op),
		slog.String("stack", string(debug.Stack())),
	)
}

func opName(descriptor any) string {
	switch d := descriptor.(type) {
	case string:
		return d
	case Name:
		return string(d)
	case *Type:
		if d != nil {
			return d.name
		}
	}
	return "type"
}
