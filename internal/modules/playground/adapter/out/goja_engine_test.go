package out_test

import (
	"context"
	"strings"
	"testing"

	playgroundout "syntaxlabs/internal/modules/playground/adapter/out"
	"syntaxlabs/internal/platform/logger"
)

func newEngine(t *testing.T) interface {
	Eval(context.Context, string) (string, error)
} {
	t.Helper()
	engine, err := playgroundout.NewGojaEngine(logger.Nop())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEvalCapturesConsoleLog(t *testing.T) {
	t.Parallel()
	engine := newEngine(t)
	out, err := engine.Eval(context.Background(), "console.log(1+1)")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if out != "2" {
		t.Fatalf("expected %q, got %q", "2", out)
	}
}

func TestEvalFormatsArguments(t *testing.T) {
	t.Parallel()
	engine := newEngine(t)
	out, err := engine.Eval(context.Background(), `console.log("Sum:", 5 + 3); console.log({a: 1}); console.log(null, [1])`)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	want := "Sum: 8\n{\n  \"a\": 1\n}\nnull [\n  1\n]"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestEvalWithoutOutputReportsSuccess(t *testing.T) {
	t.Parallel()
	engine := newEngine(t)
	out, err := engine.Eval(context.Background(), "var x = 1;")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if out != "Code executed successfully!" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEvalErrorsPropagateAndConsoleIsRestored(t *testing.T) {
	t.Parallel()
	engine := newEngine(t)
	_, err := engine.Eval(context.Background(), `console.log("before"); throw new Error("boom")`)
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
	if _, err := engine.Eval(context.Background(), "this is not js"); err == nil {
		t.Fatalf("syntax errors must propagate")
	}
	// Output of the failed run must not leak into the next one.
	out, err := engine.Eval(context.Background(), `console.log("after")`)
	if err != nil || out != "after" {
		t.Fatalf("expected clean capture after failure, got %q err=%v", out, err)
	}
}

func TestEvalRunsInFunctionScope(t *testing.T) {
	t.Parallel()
	engine := newEngine(t)
	if _, err := engine.Eval(context.Background(), "var local = 1; shared = 2;"); err != nil {
		t.Fatalf("eval: %v", err)
	}
	out, err := engine.Eval(context.Background(), `console.log(typeof local, shared)`)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if out != "undefined 2" {
		t.Fatalf("function-scoped vars must not leak, globals must: %q", out)
	}
}

func TestEvalHonoursCancellation(t *testing.T) {
	t.Parallel()
	engine := newEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := engine.Eval(ctx, "while (true) {}")
	if err == nil || !strings.Contains(err.Error(), "interrupted") {
		t.Fatalf("expected interruption, got %v", err)
	}
}
