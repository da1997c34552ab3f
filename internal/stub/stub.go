// Package stub replaces named operations on a target for the extent of a
// block, putting the original implementation back on every exit path.
//
// A target declares its replaceable operations up front with Define. Code
// under test calls through Op.Call, which returns whichever implementation is
// currently bound:
//
//	type Gateway struct {
//		stubs     *stub.Target
//		getOracle *stub.Op[func() oracle.Oracle]
//	}
//
//	func (g *Gateway) GetOracle() oracle.Oracle { return g.getOracle.Call()() }
//
// Tests then substitute it with WithStub, Bind or Scoped.
package stub

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/fadedpez/gamefairy/internal/types"
)

// operation is the untyped view of an Op held by a Target
type operation interface {
	bind(replacement any) error
	unbind()
	isBound() bool
}

// Target is a named set of replaceable operations
type Target struct {
	name string
	ops  map[string]operation
	mu   sync.RWMutex
}

// NewTarget creates a target with no operations
func NewTarget(name string) *Target {
	return &Target{
		name: name,
		ops:  make(map[string]operation),
	}
}

// Name returns the name the target was created with
func (t *Target) Name() string {
	return t.name
}

// Operations returns the names of all defined operations, sorted
func (t *Target) Operations() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.namesLocked()
}

// IsBound reports whether name currently has a stub installed
func (t *Target) IsBound(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	op, ok := t.ops[name]
	return ok && op.isBound()
}

func (t *Target) lookup(name string) (operation, error) {
	op, ok := t.ops[name]
	if !ok {
		return nil, types.NewGameError(types.ErrUnknownOperation,
			fmt.Sprintf("%s has no operation %q (has: %s)", t.name, name, strings.Join(t.namesLocked(), ", ")))
	}
	return op, nil
}

func (t *Target) namesLocked() []string {
	names := make([]string, 0, len(t.ops))
	for name := range t.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Op is one replaceable operation of function type F
type Op[F any] struct {
	target   *Target
	name     string
	original F
	current  F
	bound    bool
}

// Define adds an operation named name to t, implemented by impl until it is
// stubbed. It panics if F is not a function type, impl is nil, or the name
// is already defined, as all of these are programming errors.
func Define[F any](t *Target, name string, impl F) *Op[F] {
	fnType := reflect.TypeOf((*F)(nil)).Elem()
	if fnType.Kind() != reflect.Func {
		panic(fmt.Sprintf("stub: operation %s.%s must be a function, got %v", t.name, name, fnType))
	}
	if reflect.ValueOf(impl).IsNil() {
		panic(fmt.Sprintf("stub: operation %s.%s has a nil implementation", t.name, name))
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.ops[name]; exists {
		panic(fmt.Sprintf("stub: operation %s.%s is already defined", t.name, name))
	}

	op := &Op[F]{
		target:   t,
		name:     name,
		original: impl,
		current:  impl,
	}
	t.ops[name] = op
	return op
}

// Call returns the implementation currently bound to the operation
func (o *Op[F]) Call() F {
	o.target.mu.RLock()
	defer o.target.mu.RUnlock()
	return o.current
}

// Original returns the implementation the operation was defined with
func (o *Op[F]) Original() F {
	return o.original
}

func (o *Op[F]) bind(replacement any) error {
	if o.bound {
		return types.NewGameError(types.ErrStubAlreadyBound,
			fmt.Sprintf("%s.%s is already stubbed", o.target.name, o.name))
	}

	fn, err := replacementFunc[F](replacement)
	if err != nil {
		return types.WrapError(types.ErrInvalidArgument,
			fmt.Sprintf("cannot stub %s.%s", o.target.name, o.name), err)
	}

	o.current = fn
	o.bound = true
	return nil
}

func (o *Op[F]) unbind() {
	o.current = o.original
	o.bound = false
}

func (o *Op[F]) isBound() bool {
	return o.bound
}

// replacementFunc turns replacement into an F. A func of type F is used as
// is; any other value becomes a func returning it as the first result and
// zero values for the rest.
func replacementFunc[F any](replacement any) (F, error) {
	var zero F
	if fn, ok := replacement.(F); ok {
		if reflect.ValueOf(fn).IsNil() {
			return zero, fmt.Errorf("replacement function is nil")
		}
		return fn, nil
	}

	fnType := reflect.TypeOf((*F)(nil)).Elem()
	if fnType.NumOut() == 0 {
		return zero, fmt.Errorf("%v returns nothing, so a replacement value of type %T cannot be used", fnType, replacement)
	}

	first := reflect.New(fnType.Out(0)).Elem()
	if replacement != nil {
		value := reflect.ValueOf(replacement)
		if !value.Type().AssignableTo(first.Type()) {
			return zero, fmt.Errorf("replacement of type %T is neither %v nor assignable to %v", replacement, fnType, first.Type())
		}
		first.Set(value)
	} else if !nilable(first.Kind()) {
		return zero, fmt.Errorf("nil replacement for non-nilable result %v", first.Type())
	}

	results := make([]reflect.Value, fnType.NumOut())
	results[0] = first
	for i := 1; i < len(results); i++ {
		results[i] = reflect.Zero(fnType.Out(i))
	}

	return reflect.MakeFunc(fnType, func([]reflect.Value) []reflect.Value {
		return results
	}).Interface().(F), nil
}

func nilable(kind reflect.Kind) bool {
	switch kind {
	case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// Bind installs replacement for the named operation on target and returns a
// func that restores the original. Calling restore more than once is safe.
func Bind(target *Target, name string, replacement any) (restore func(), err error) {
	target.mu.Lock()
	defer target.mu.Unlock()

	op, err := target.lookup(name)
	if err != nil {
		return nil, err
	}
	if err := op.bind(replacement); err != nil {
		return nil, err
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			target.mu.Lock()
			defer target.mu.Unlock()
			op.unbind()
		})
	}, nil
}

// WithStub runs block with the named operation on target replaced. The
// original is restored when block returns, panics, or exits its goroutine,
// and block's error is then returned unchanged.
func WithStub(target *Target, name string, replacement any, block func() error) error {
	restore, err := Bind(target, name, replacement)
	if err != nil {
		return err
	}
	defer restore()

	return block()
}

// Scoped binds replacement for the rest of the test, restoring it during
// t's cleanup. It fails the test immediately if the stub cannot be bound.
func Scoped(t testing.TB, target *Target, name string, replacement any) {
	t.Helper()

	restore, err := Bind(target, name, replacement)
	if err != nil {
		t.Fatalf("stub: %v", err)
	}
	t.Cleanup(restore)
}
