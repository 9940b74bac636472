package out

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dop251/goja"

	playgroundout "syntaxlabs/internal/modules/playground/port/out"
	"syntaxlabs/internal/platform/logger"
)

const successMessage = "Code executed successfully!"

// GojaEngine runs JavaScript in one long-lived runtime, so globals survive
// between runs the way they do in a page. console.log is swapped for a
// capturing sink during each run and put back afterwards.
type GojaEngine struct {
	mu        sync.Mutex
	vm        *goja.Runtime
	console   *goja.Object
	stringify goja.Callable
	function  goja.Callable
}

func NewGojaEngine(log *logger.Logger) (playgroundout.ScriptEngine, error) {
	if log == nil {
		log = logger.Nop()
	}
	vm := goja.New()
	console := vm.NewObject()
	if err := console.Set("log", func(call goja.FunctionCall) goja.Value {
		log.Debug("script console", "line", joinArgs(call.Arguments, func(v goja.Value) string { return v.String() }))
		return goja.Undefined()
	}); err != nil {
		return nil, fmt.Errorf("install console: %w", err)
	}
	if err := vm.Set("console", console); err != nil {
		return nil, fmt.Errorf("install console: %w", err)
	}
	stringify, ok := goja.AssertFunction(vm.Get("JSON").ToObject(vm).Get("stringify"))
	if !ok {
		return nil, errors.New("JSON.stringify is not callable")
	}
	function, ok := goja.AssertFunction(vm.Get("Function"))
	if !ok {
		return nil, errors.New("Function constructor is not callable")
	}
	return &GojaEngine{vm: vm, console: console, stringify: stringify, function: function}, nil
}

func (e *GojaEngine) Eval(ctx context.Context, source string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var lines []string
	original := e.console.Get("log")
	if err := e.console.Set("log", func(call goja.FunctionCall) goja.Value {
		lines = append(lines, joinArgs(call.Arguments, e.format))
		return goja.Undefined()
	}); err != nil {
		return "", fmt.Errorf("capture console: %w", err)
	}
	defer func() { _ = e.console.Set("log", original) }()

	interrupted := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		e.vm.Interrupt(ctx.Err())
		close(interrupted)
	})
	defer func() {
		if !stop() {
			<-interrupted
		}
		e.vm.ClearInterrupt()
	}()

	// new Function(source) sees globals only, never the caller's scope.
	compiled, err := e.function(goja.Undefined(), e.vm.ToValue(source))
	if err != nil {
		return "", e.describe(err)
	}
	call, ok := goja.AssertFunction(compiled)
	if !ok {
		return "", errors.New("compiled source is not callable")
	}
	if _, err := call(goja.Undefined()); err != nil {
		return "", e.describe(err)
	}

	if len(lines) == 0 {
		return successMessage, nil
	}
	return strings.Join(lines, "\n"), nil
}

// format renders one console.log argument: objects as indented JSON,
// everything else through String().
func (e *GojaEngine) format(v goja.Value) string {
	if goja.IsNull(v) {
		return "null"
	}
	if obj, ok := v.(*goja.Object); ok {
		if _, isFn := goja.AssertFunction(obj); !isFn {
			out, err := e.stringify(goja.Undefined(), v, goja.Null(), e.vm.ToValue(2))
			if err == nil && !goja.IsUndefined(out) {
				return out.String()
			}
		}
	}
	return v.String()
}

// describe turns a thrown value into its message, like error.message.
func (e *GojaEngine) describe(err error) error {
	var exc *goja.Exception
	if errors.As(err, &exc) {
		if obj, ok := exc.Value().(*goja.Object); ok {
			if msg := obj.Get("message"); msg != nil && !goja.IsUndefined(msg) {
				return errors.New(msg.String())
			}
		}
		return errors.New(exc.Value().String())
	}
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		return fmt.Errorf("execution interrupted: %v", interrupted.Value())
	}
	return err
}

func joinArgs(args []goja.Value, format func(goja.Value) string) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, format(a))
	}
	return strings.Join(parts, " ")
}
