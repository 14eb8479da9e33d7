package udf

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sgostarter/i/l"
)

type Registry struct {
	lock  sync.RWMutex
	funcs map[string]Function
}

func NewRegistry() *Registry {
	return &Registry{
		funcs: make(map[string]Function),
	}
}

// NewBuiltinRegistry returns a registry holding every built-in function.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()

	for _, f := range builtins() {
		if err := r.Register(f); err != nil {
			panic(err)
		}
	}

	return r
}

func (r *Registry) Register(f Function) error {
	name := strings.ToUpper(strings.TrimSpace(f.Name))
	if name == "" || f.Fn == nil {
		return fmt.Errorf("%w: %q", ErrBadArg, f.Name)
	}

	if f.Marker == "" {
		f.Marker = MarkerError
	}

	f.Name = name

	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.funcs[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}

	r.funcs[name] = f

	return nil
}

func (r *Registry) Lookup(name string) (Function, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	f, ok := r.funcs[strings.ToUpper(strings.TrimSpace(name))]

	return f, ok
}

func (r *Registry) Names() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Call runs a function and converts every failure, panics included, into
// an error Result.
func (r *Registry) Call(ctx *Context, name string, args ...any) (result Result) {
	ctx = ctx.complete()

	f, ok := r.Lookup(name)
	if !ok {
		return Result{Err: fmt.Errorf("%w: %s", ErrUnknownFunction, name), Marker: MarkerError}
	}

	result.Marker = f.Marker

	defer func() {
		if e := recover(); e != nil {
			result = Result{Err: fmt.Errorf("%w: %v", ErrPanic, e), Marker: f.Marker}

			ctx.Logger.WithFields(l.StringField("func", f.Name), l.StringField("panic", fmt.Sprint(e))).Error("recovered")
		}

		if result.Err != nil {
			ctx.Logger.WithFields(l.StringField("func", f.Name), l.ErrorField(result.Err)).Debug("call failed")
		}
	}()

	if len(args) < f.MinArgs || (f.MaxArgs >= 0 && len(args) > f.MaxArgs) {
		result.Err = fmt.Errorf("%w: %s takes %s, got %d", ErrArgCount, f.Name, argRange(f), len(args))

		return
	}

	v, err := f.Fn(ctx, Args(args))
	if err != nil {
		result.Err = err

		return
	}

	switch vv := v.(type) {
	case float64:
		result.Value = vv
	case []float64:
		result.Values = vv
		if result.Values == nil {
			result.Values = []float64{}
		}
	default:
		result.Err = fmt.Errorf("%w: %s returned %T", ErrPanic, f.Name, v)
	}

	return
}

func argRange(f Function) string {
	switch {
	case f.MaxArgs < 0:
		return fmt.Sprintf("at least %d", f.MinArgs)
	case f.MinArgs == f.MaxArgs:
		return fmt.Sprintf("%d", f.MinArgs)
	}

	return fmt.Sprintf("%d to %d", f.MinArgs, f.MaxArgs)
}
