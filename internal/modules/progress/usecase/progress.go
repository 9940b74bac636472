package usecase

import (
	"context"
	"errors"
	"fmt"

	"syntaxlabs/internal/modules/progress/domain"
	progressdto "syntaxlabs/internal/modules/progress/dto"
	progressin "syntaxlabs/internal/modules/progress/port/in"
	progressout "syntaxlabs/internal/modules/progress/port/out"
	"syntaxlabs/internal/modules/progress/service"
	sessionin "syntaxlabs/internal/modules/session/port/in"
	apperrors "syntaxlabs/internal/platform/errors"
	"syntaxlabs/internal/platform/logger"
	"syntaxlabs/internal/platform/prompt"
)

type Interactor struct {
	svc     *service.ProgressService
	store   progressout.Store
	files   progressout.FileWriter
	session sessionin.Usecase
	confirm prompt.Confirmer
	log     *logger.Logger
}

func NewInteractor(
	svc *service.ProgressService,
	store progressout.Store,
	files progressout.FileWriter,
	session sessionin.Usecase,
	confirm prompt.Confirmer,
	log *logger.Logger,
) progressin.Usecase {
	if log == nil {
		log = logger.Nop()
	}
	return &Interactor{svc: svc, store: store, files: files, session: session, confirm: confirm, log: log.With("module", "progress")}
}

func (i *Interactor) Get(ctx context.Context) (progressdto.SnapshotOutput, error) {
	snapshot, err := i.load(ctx)
	if err != nil {
		return progressdto.SnapshotOutput{}, err
	}
	return toSnapshotOutput(snapshot), nil
}

func (i *Interactor) load(ctx context.Context) (domain.Snapshot, error) {
	snapshot, ok, err := i.store.LoadSnapshot(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if ok {
		return snapshot, nil
	}
	snapshot = i.svc.Defaults()
	if err := i.store.SaveSnapshot(ctx, snapshot); err != nil {
		return domain.Snapshot{}, err
	}
	return snapshot, nil
}

func (i *Interactor) Reset(ctx context.Context) (progressdto.SnapshotOutput, error) {
	ok, err := i.confirm.Confirm(ctx, "Reset all of your progress? This cannot be undone.")
	if err != nil {
		return progressdto.SnapshotOutput{}, err
	}
	if !ok {
		return progressdto.SnapshotOutput{}, apperrors.ErrNotConfirmed
	}
	snapshot := domain.Reset()
	if err := i.store.SaveSnapshot(ctx, snapshot); err != nil {
		return progressdto.SnapshotOutput{}, err
	}
	i.log.Info("progress reset")
	return toSnapshotOutput(snapshot), nil
}

func (i *Interactor) Settings(ctx context.Context) (progressdto.SettingsOutput, error) {
	settings, err := i.settings(ctx)
	if err != nil {
		return progressdto.SettingsOutput{}, err
	}
	return toSettingsOutput(settings), nil
}

func (i *Interactor) settings(ctx context.Context) (domain.Settings, error) {
	settings, ok, err := i.store.LoadSettings(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	if ok {
		return settings, nil
	}
	dark, err := i.store.DarkTheme(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	return domain.DefaultSettings(dark), nil
}

func (i *Interactor) SaveSetting(ctx context.Context, key string, value bool) (progressdto.SettingsOutput, error) {
	settings, err := i.settings(ctx)
	if err != nil {
		return progressdto.SettingsOutput{}, err
	}
	updated, err := settings.With(key, value)
	if err != nil {
		return progressdto.SettingsOutput{}, apperrors.Validation("setting", err.Error())
	}
	if err := i.store.SaveSettings(ctx, updated); err != nil {
		return progressdto.SettingsOutput{}, err
	}
	return toSettingsOutput(updated), nil
}

func (i *Interactor) Ranking(context.Context) ([]progressdto.RankEntry, error) {
	entries := domain.Ranking()
	out := make([]progressdto.RankEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, progressdto.RankEntry{Position: e.Position, Name: e.Name, Points: e.Points, Tier: e.Tier, BarPercent: e.BarPercent})
	}
	return out, nil
}

func (i *Interactor) Overview(ctx context.Context) (progressdto.OverviewOutput, error) {
	user, err := i.session.Current(ctx)
	if err != nil {
		return progressdto.OverviewOutput{}, err
	}
	level := user.Level
	if level == 0 {
		level = 1
	}
	out := progressdto.OverviewOutput{
		Name:         user.Name,
		Profile:      user.Profile,
		Level:        level,
		Points:       user.Points,
		LevelPercent: domain.LevelProgress(user.Points),
		NextLevel:    level + 1,
	}
	for _, a := range domain.Achievements(level, user.Points) {
		out.Achievements = append(out.Achievements, progressdto.Achievement{Name: a.Name, Unlocked: a.Unlocked})
	}
	return out, nil
}

func (i *Interactor) Export(ctx context.Context, dir string) (progressdto.ExportOutput, error) {
	user, _, err := i.store.LoadUser(ctx)
	if err != nil {
		return progressdto.ExportOutput{}, err
	}
	snapshot, err := i.load(ctx)
	if err != nil {
		return progressdto.ExportOutput{}, err
	}
	settings, err := i.settings(ctx)
	if err != nil {
		return progressdto.ExportOutput{}, err
	}
	name, payload, err := i.svc.Encode(user, snapshot, settings)
	if err != nil {
		return progressdto.ExportOutput{}, err
	}
	out := progressdto.ExportOutput{FileName: name, Payload: payload}
	if dir != "" {
		path, err := i.files.Write(ctx, dir, name, payload)
		if err != nil {
			return progressdto.ExportOutput{}, err
		}
		out.Path = path
		i.log.Info("data exported", "path", path)
	}
	return out, nil
}

// Import writes the exported triple back and reloads the session from it. A
// payload without a user ends the current session.
func (i *Interactor) Import(ctx context.Context, payload []byte) error {
	doc, err := i.svc.Decode(payload)
	if err != nil {
		return err
	}
	err = i.store.Within(ctx, func(ctx context.Context) error {
		if err := i.store.SaveSnapshot(ctx, doc.Progress); err != nil {
			return err
		}
		if err := i.store.SaveSettings(ctx, doc.Settings); err != nil {
			return err
		}
		if doc.User == nil {
			return i.store.ClearUser(ctx)
		}
		return i.store.SaveUser(ctx, doc.User)
	})
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if doc.User == nil {
		return i.session.Forget(ctx)
	}
	if _, err := i.session.Restore(ctx); err != nil && !errors.Is(err, apperrors.ErrNoSession) {
		return err
	}
	return nil
}

func (i *Interactor) DeleteAccount(ctx context.Context) error {
	for _, question := range []string{
		"WARNING: this permanently deletes your account and all data. Continue?",
		"Confirm account deletion. Type y to delete everything.",
	} {
		ok, err := i.confirm.Confirm(ctx, question)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrNotConfirmed
		}
	}
	err := i.store.Within(ctx, func(ctx context.Context) error {
		if err := i.store.ClearUser(ctx); err != nil {
			return err
		}
		return i.store.DeleteUserData(ctx)
	})
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	// The stored keys are gone; this drops the in-memory session.
	if err := i.session.Forget(ctx); err != nil {
		return err
	}
	i.log.Info("account deleted")
	return nil
}

func toSnapshotOutput(s domain.Snapshot) progressdto.SnapshotOutput {
	out := progressdto.SnapshotOutput{
		LinesOfCode:          s.LinesOfCode,
		ChallengesCompleted:  s.ChallengesCompleted,
		StudyTimeHours:       s.StudyTimeHours,
		Level:                s.Level,
		DailyActivityMinutes: s.DailyActivityMinutes,
		SuccessRate:          s.ChallengePerformance.SuccessRate,
		AverageTimeMinutes:   s.ChallengePerformance.AverageTimeMinutes,
		Complexity:           s.ChallengePerformance.Complexity,
		Languages:            []progressdto.LanguageProgress{},
	}
	for _, name := range s.LanguageNames() {
		lp := s.Languages[name]
		out.Languages = append(out.Languages, progressdto.LanguageProgress{Name: name, Percent: lp.ProgressPercent, Challenges: lp.ChallengesCount})
	}
	return out
}

func toSettingsOutput(s domain.Settings) progressdto.SettingsOutput {
	return progressdto.SettingsOutput{EmailNotifications: s.EmailNotifications, DarkMode: s.DarkMode, AIAssistance: s.AIAssistance}
}
