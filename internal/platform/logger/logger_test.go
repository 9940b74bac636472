package logger

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSanitizeKVsRedactsSensitiveKeys(t *testing.T) {
	got := sanitizeKVs([]interface{}{
		"email", "ana@example.com",
		"authToken", "abc",
		"tab", "ranking",
		"value", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxMjM0NTYifQ.sig",
		"dangling",
	})
	want := []interface{}{
		"email", "[REDACTED]",
		"authToken", "[REDACTED]",
		"tab", "ranking",
		"value", "[REDACTED]",
		"dangling",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sanitized kvs mismatch (-want +got):\n%s", diff)
	}
}

func TestNopLoggerAcceptsCalls(t *testing.T) {
	l := Nop()
	l.With("component", "test").Info("hello", "k", 1)
	l.Sync()
}
