package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	playgroundout "syntaxlabs/internal/modules/playground/adapter/out"
	"syntaxlabs/internal/modules/playground/domain"
	playgroundin "syntaxlabs/internal/modules/playground/port/in"
	"syntaxlabs/internal/modules/playground/service"
	"syntaxlabs/internal/modules/playground/usecase"
	sessiondto "syntaxlabs/internal/modules/session/dto"
	apperrors "syntaxlabs/internal/platform/errors"
	"syntaxlabs/internal/platform/kvstore"
	"syntaxlabs/internal/platform/logger"
	"syntaxlabs/internal/platform/prompt"
)

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

type seqIDs struct{ n int }

func (s *seqIDs) New() string {
	s.n++
	return "msg-" + string(rune('0'+s.n))
}

type fakeEngine struct {
	out string
	err error
	got []string
}

func (f *fakeEngine) Eval(_ context.Context, source string) (string, error) {
	f.got = append(f.got, source)
	return f.out, f.err
}

type fakeSession struct {
	logged bool
}

func (f *fakeSession) Login(context.Context, sessiondto.LoginInput) (sessiondto.SessionOutput, error) {
	return sessiondto.SessionOutput{}, nil
}
func (f *fakeSession) Register(context.Context, sessiondto.RegisterInput) (sessiondto.RegisterOutput, error) {
	return sessiondto.RegisterOutput{}, nil
}
func (f *fakeSession) Logout(context.Context) error { return nil }
func (f *fakeSession) Forget(context.Context) error { return nil }
func (f *fakeSession) Restore(ctx context.Context) (sessiondto.SessionOutput, error) {
	return f.Current(ctx)
}
func (f *fakeSession) Current(context.Context) (sessiondto.SessionOutput, error) {
	if !f.logged {
		return sessiondto.SessionOutput{}, apperrors.ErrNoSession
	}
	return sessiondto.SessionOutput{ID: 1, Name: "Ana"}, nil
}
func (f *fakeSession) Rename(context.Context, string) (sessiondto.SessionOutput, error) {
	return sessiondto.SessionOutput{}, nil
}

type harness struct {
	uc     playgroundin.Usecase
	engine *fakeEngine
	kv     *kvstore.MemoryStore
}

func newHarness(logged bool, confirm prompt.Confirmer) harness {
	engine := &fakeEngine{out: "2"}
	kv := kvstore.NewMemoryStore()
	uc := usecase.NewInteractor(usecase.Deps{
		Dispatcher: service.NewDispatcher(engine),
		Assistant:  service.NewAssistant(noSleep{}, service.AssistantDelays{}, func(int) int { return 0 }),
		Code:       playgroundout.NewKVCodeStore(kv, logger.Nop()),
		Session:    &fakeSession{logged: logged},
		Confirm:    confirm,
		Clock:      fixedClock{now: time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)},
		IDs:        &seqIDs{},
		Log:        logger.Nop(),
	})
	return harness{uc: uc, engine: engine, kv: kv}
}

type noSleep struct{}

func (noSleep) Sleep(time.Duration) {}

func TestSelectLoadsStarterCode(t *testing.T) {
	t.Parallel()
	h := newHarness(false, prompt.Always(true))
	out, err := h.uc.Select(context.Background(), "python")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if out.Language != "Python" || out.Source != domain.Python.Info().StarterCode || out.Dirty {
		t.Fatalf("unexpected editor: %+v", out)
	}
}

func TestPremiumLanguageRequiresLogin(t *testing.T) {
	t.Parallel()
	h := newHarness(false, prompt.Always(true))
	if _, err := h.uc.Select(context.Background(), "PHP"); !errors.Is(err, apperrors.ErrPremiumLanguage) {
		t.Fatalf("expected premium error, got %v", err)
	}
	langs, err := h.uc.Languages(context.Background())
	if err != nil {
		t.Fatalf("languages: %v", err)
	}
	locked := 0
	for _, l := range langs {
		if l.Locked {
			locked++
		}
	}
	if locked != 6 {
		t.Fatalf("expected 6 locked languages, got %d", locked)
	}

	logged := newHarness(true, prompt.Always(true))
	if _, err := logged.uc.Select(context.Background(), "PHP"); err != nil {
		t.Fatalf("logged user should select premium language: %v", err)
	}
}

func TestRunWithoutLanguage(t *testing.T) {
	t.Parallel()
	h := newHarness(false, prompt.Always(true))
	if _, err := h.uc.Run(context.Background()); !errors.Is(err, apperrors.ErrNoLanguage) {
		t.Fatalf("expected no language error, got %v", err)
	}
	if n := len(h.uc.Console(context.Background())); n != 0 {
		t.Fatalf("console should stay empty, got %d entries", n)
	}
}

func TestRunJavaScriptLogsToConsole(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(false, prompt.Always(true))
	if _, err := h.uc.Select(ctx, "JavaScript"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := h.uc.Edit(ctx, "console.log(1+1)"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	out, err := h.uc.Run(ctx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Result != "2" {
		t.Fatalf("unexpected result %q", out.Result)
	}
	got := []string{}
	for _, e := range out.Console {
		got = append(got, e.Kind+":"+e.Message)
	}
	if diff := cmp.Diff([]string{"info:Running code...", "success:2"}, got); diff != "" {
		t.Fatalf("console mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"console.log(1+1)"}, h.engine.got); diff != "" {
		t.Fatalf("engine input mismatch (-want +got):\n%s", diff)
	}
}

func TestRunErrorIsLoggedAsError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(false, prompt.Always(true))
	h.engine.err = errors.New("x is not defined")
	if _, err := h.uc.Select(ctx, "JavaScript"); err != nil {
		t.Fatalf("select: %v", err)
	}
	out, err := h.uc.Run(ctx)
	var execErr *apperrors.ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected execution error, got %v", err)
	}
	last := out.Console[len(out.Console)-1]
	if last.Kind != "error" || last.Message != "Error: x is not defined" {
		t.Fatalf("unexpected console entry %+v", last)
	}
}

func TestRunStubLanguageEchoesSource(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(false, prompt.Always(true))
	if _, err := h.uc.Select(ctx, "Python"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := h.uc.Edit(ctx, "print(1)"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	out, err := h.uc.Run(ctx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.Result, "print(1)") || len(h.engine.got) != 0 {
		t.Fatalf("python must not reach the engine: %q", out.Result)
	}
}

func TestSaveStoresPerLanguage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(false, prompt.Always(true))
	if _, err := h.uc.Save(ctx); !errors.Is(err, apperrors.ErrNoLanguage) {
		t.Fatalf("expected no language error, got %v", err)
	}
	if _, err := h.uc.Select(ctx, "JavaScript"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := h.uc.Edit(ctx, "let a = 1"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	saved, err := h.uc.Save(ctx)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.Timestamp != "2026-05-04T12:00:00.000Z" {
		t.Fatalf("unexpected timestamp %s", saved.Timestamp)
	}
	if h.uc.Editor(ctx).Dirty {
		t.Fatalf("save should clear the dirty flag")
	}
	list, err := h.uc.Saved(ctx)
	if err != nil {
		t.Fatalf("saved: %v", err)
	}
	if len(list) != 1 || list[0].Code != "let a = 1" || list[0].Language != "JavaScript" {
		t.Fatalf("unexpected saved list %+v", list)
	}
	if h.kv.Writes[kvstore.KeySavedCode] != 1 {
		t.Fatalf("expected one write, got %d", h.kv.Writes[kvstore.KeySavedCode])
	}
}

func TestClearRequiresConfirmation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	confirm := &prompt.Scripted{Answers: []bool{false, true}}
	h := newHarness(false, confirm)
	if _, err := h.uc.Select(ctx, "JavaScript"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := h.uc.Clear(ctx); !errors.Is(err, apperrors.ErrNotConfirmed) {
		t.Fatalf("expected not confirmed, got %v", err)
	}
	if h.uc.Editor(ctx).Source == "" {
		t.Fatalf("declined clear must keep the source")
	}
	out, err := h.uc.Clear(ctx)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if out.Source != "" {
		t.Fatalf("source should be empty, got %q", out.Source)
	}
	console := h.uc.Console(ctx)
	if len(console) != 1 || console[0].Message != "Editor cleared!" {
		t.Fatalf("unexpected console %+v", console)
	}
}

func TestLeaveResetsEditorButKeepsConsole(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(false, prompt.Always(true))
	if _, err := h.uc.Select(ctx, "JavaScript"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := h.uc.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
	h.uc.Leave(ctx)
	if ed := h.uc.Editor(ctx); ed.Language != "" || ed.Source != "" {
		t.Fatalf("editor should be reset: %+v", ed)
	}
	if len(h.uc.Console(ctx)) == 0 {
		t.Fatalf("console survives leaving the view")
	}
	h.uc.ClearConsole(ctx)
	if len(h.uc.Console(ctx)) != 0 {
		t.Fatalf("console should be empty after clear")
	}
}

func TestLoadChallenge(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(false, prompt.Always(true))
	if _, err := h.uc.LoadChallenge(ctx, "nope"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	out, err := h.uc.LoadChallenge(ctx, "py-1")
	if err != nil {
		t.Fatalf("load challenge: %v", err)
	}
	if out.Language != "Python" || !strings.HasPrefix(out.Source, "// Challenge: py-1") || !out.Dirty {
		t.Fatalf("unexpected editor %+v", out)
	}
	list, err := h.uc.Challenges(ctx, "javascript")
	if err != nil {
		t.Fatalf("challenges: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 javascript challenges, got %d", len(list))
	}
}

func TestAssistantConversation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(false, prompt.Always(true))
	if _, err := h.uc.AskAssistant(ctx, "   "); !errors.Is(err, apperrors.ErrEmptySource) {
		t.Fatalf("expected empty question error, got %v", err)
	}
	msgs, err := h.uc.AskAssistant(ctx, "what is a loop?")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if msgs[0].Sender != "user" || msgs[1].Sender != "assistant" {
		t.Fatalf("unexpected senders %+v", msgs)
	}
	if !strings.Contains(msgs[1].Text, `"what is a loop?"`) {
		t.Fatalf("answer should quote the question: %q", msgs[1].Text)
	}
	if _, err := h.uc.AnalyzeWithAssistant(ctx); !errors.Is(err, apperrors.ErrEmptySource) {
		t.Fatalf("analysis of an empty editor must fail, got %v", err)
	}
	if _, err := h.uc.LoadChallenge(ctx, "js-1"); err != nil {
		t.Fatalf("load challenge: %v", err)
	}
	analysis, err := h.uc.AnalyzeWithAssistant(ctx)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !strings.Contains(analysis.Text, "4 lines of code") {
		t.Fatalf("unexpected analysis %q", analysis.Text)
	}
	if n := len(h.uc.Conversation(ctx)); n != 3 {
		t.Fatalf("expected 3 messages, got %d", n)
	}
}
