package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"syntaxlabs/internal/bootstrap"
	"syntaxlabs/internal/platform/clock"
	"syntaxlabs/internal/platform/config"
	"syntaxlabs/internal/platform/prompt"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globals struct {
	dataDir string
	yes     bool
	fast    bool
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:           "syntaxlabs",
		Short:         "Syntax Labs learning platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(g)
		},
	}
	root.PersistentFlags().StringVar(&g.dataDir, "data", defaultDataDir(), "directory holding .syntaxlabs/")
	root.PersistentFlags().BoolVarP(&g.yes, "yes", "y", false, "answer yes to every confirmation")
	root.PersistentFlags().BoolVar(&g.fast, "fast", false, "skip the simulated network delays")

	root.AddCommand(newTUICmd(g))
	root.AddCommand(newLoginCmd(g), newRegisterCmd(g), newLogoutCmd(g), newWhoAmICmd(g), newRenameCmd(g))
	root.AddCommand(newThemeCmd(g), newTabCmd(g))
	root.AddCommand(newRunCmd(g), newCodeCmd(g), newLanguagesCmd(g), newChallengesCmd(g), newAskCmd(g))
	root.AddCommand(newReportCmd(g), newProgressCmd(g), newSettingsCmd(g), newRankingCmd(g))
	root.AddCommand(newExportCmd(g), newImportCmd(g), newAccountCmd(g))
	return root
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

func loadConfig(g *globals) (config.Config, error) {
	return config.New(g.dataDir)
}

// loadApp builds the application for a one-shot command. Confirmations go
// to the terminal unless --yes was given.
func loadApp(cmd *cobra.Command, g *globals, recorder *bootstrap.ViewRecorder) (*bootstrap.App, error) {
	cfg, err := loadConfig(g)
	if err != nil {
		return nil, err
	}
	var confirm prompt.Confirmer = prompt.NewTerminal(cmd.InOrStdin(), cmd.ErrOrStderr())
	if g.yes {
		confirm = prompt.Always(true)
	}
	opts := bootstrap.Options{Confirm: confirm}
	if g.fast {
		opts.Sleeper = clock.NoSleep{}
	}
	if recorder != nil {
		opts.Renderer = recorder
	}
	return bootstrap.New(cfg, opts)
}

func runTUI(g *globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	return bootstrap.RunTUI(cfg)
}

func newTUICmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the Syntax Labs terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(g)
		},
	}
}

// ─── session ─────────────────────────────────────────────────────────────────

func newLoginCmd(g *globals) *cobra.Command {
	var profile, name, email, password string
	login := &cobra.Command{
		Use:   "login --email <email> --password <password>",
		Short: "Log in and keep the session for later commands",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, g, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			user, err := app.SessionCLI.Login(context.Background(), profile, name, email, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Welcome back, %s! (%s, level %d, %d points)\n", user.Name, user.Profile, user.Level, user.Points)
			return nil
		},
	}
	login.Flags().StringVar(&profile, "profile", "student", "profile: student|professional|company")
	login.Flags().StringVar(&name, "name", "", "display name (optional)")
	login.Flags().StringVar(&email, "email", "", "email address")
	login.Flags().StringVar(&password, "password", "", "password")
	return login
}

func newRegisterCmd(g *globals) *cobra.Command {
	var profile, name, email, password, confirm string
	register := &cobra.Command{
		Use:   "register --name <name> --email <email> --password <password>",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if confirm == "" {
				confirm = password
			}
			app, err := loadApp(cmd, g, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.SessionCLI.Register(context.Background(), profile, name, email, password, confirm)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "account created (%s). next: syntaxlabs %s\n", out.Profile, out.NextStep)
			return nil
		},
	}
	register.Flags().StringVar(&profile, "profile", "student", "profile: student|professional|company")
	register.Flags().StringVar(&name, "name", "", "full name or company name")
	register.Flags().StringVar(&email, "email", "", "email address")
	register.Flags().StringVar(&password, "password", "", "password (at least 6 characters)")
	register.Flags().StringVar(&confirm, "confirm", "", "password confirmation (defaults to --password)")
	return register
}

func newLogoutCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, g, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.SessionCLI.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newWhoAmICmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, g, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			user, err := app.SessionCLI.WhoAmI(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "name: %s\nemail: %s\nprofile: %s\nlevel: %d\npoints: %d\n", user.Name, user.Email, user.Profile, user.Level, user.Points)
			return nil
		},
	}
}

func newRenameCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <name>",
		Short: "Change the display name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, g, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			user, err := app.SessionCLI.Rename(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "renamed to %s\n", user.Name)
			return nil
		},
	}
}

// ─── navigation ──────────────────────────────────────────────────────────────

func newThemeCmd(g *globals) *cobra.Command {
	theme := &cobra.Command{Use: "theme", Short: "Show or change the color theme"}
	theme.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the stored theme",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, g, &bootstrap.ViewRecorder{})
			if err != nil {
				return err
			}
			defer app.Close()
			state, err := app.NavigationCLI.Theme(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), state.Theme)
			return nil
		},
	})
	theme.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between dark and light",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, g, &bootstrap.ViewRecorder{})
			if err != nil {
				return err
			}
			defer app.Close()
			state, err := app.NavigationCLI.ToggleTheme(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "theme: %s\n", state.Theme)
			return nil
		},
	})
	theme.AddCommand(&cobra.Command{
		Use:   "set <dark|light>",
		Short: "Store a theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, g, &bootstrap.ViewRecorder{})
			if err != nil {
				return err
			}
			defer app.Close()
			state, err := app.NavigationCLI.SetTheme(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "theme: %s\n", state.Theme)
			return nil
		},
	})
	return theme
}

func newTabCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "tab [id]",
		Short: "Render a tab as YAML (lists tabs without an id)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recorder := &bootstrap.ViewRecorder{}
			app, err := loadApp(cmd, g, recorder)
			if err != nil {
				return err
			}
			defer app.Close()
			if len(args) == 0 {
				for i, t := range app.NavigationCLI.Tabs() {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", i+1, t.ID, t.Title)
				}
				return nil
			}
			if _, err := app.NavigationCLI.Open(context.Background(), args[0]); err != nil {
				return err
			}
			return recorder.Flush(context.Background(), cmd.OutOrStdout())
		},
	}
}

// ─── playground ──────────────────────────────────────────────────────────────

// readSource reads file, or stdin when file is empty or "-".
func readSource(cmd *cobra.Command, file string) (string, error) {
	if file == "" || file == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(raw), nil
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", file, err)
	}
	return string(raw), nil
}

func newRunCmd(g *globals) *cobra.Command {
	var language, file string
	run := &cobra.Command{
		Use:   "run --lang <name> [--file path]",
		Short: "Execute code (JavaScript runs, other languages are simulated)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, err := readSource(cmd, file)
			if err != nil {
				return err
			}
			app, err := loadApp(cmd, g, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.PlaygroundCLI.Run(context.Background(), language, source)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	run.Flags().StringVar(&language, "lang", "JavaScript", "language name")
	run.Flags().StringVar(&file, "file", "", "source file (defaults to stdin)")
	return run
}

func newCodeCmd(g *globals) *cobra.Command {
	code := &cobra.Command{Use: "code", Short: "Saved code per language"}

	var language, file string
	save := &cobra.Command{
		Use:   "save --lang <name> [--file path]",
		Short: "Save code for a language",
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, err := readSource(cmd, file)
			if err != nil {
				return err
			}
			app, err := loadApp(cmd, g, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.PlaygroundCLI.SaveCode(context.Background(), language, source)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %s code at %s\n", out.Language, out.Timestamp)
			return nil
		},
	}
	save.Flags().StringVar(&language, "lang", "", "language name")
	save.Flags().StringVar(&file, "file", "", "source file (defaults to stdin)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, g, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			saved, err := app.PlaygroundCLI.SavedCode(context.Background())
			if err != nil {
				return err
			}
			if len(saved) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no saved code")
				return nil
			}
			for _, s := range saved {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d lines\n", s.Language, s.Timestamp, strings.Count(s.Code, "\n")+1)
			}
			return nil
		},
	}

	code.AddCommand(save, list)
	return code
}

func newLanguagesCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List playground languages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, g, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			items, err := app.PlaygroundCLI.Languages(context.Background())
			if err != nil {
				return err
			}
			for _, l := range items {
				state := "open"
				switch {
				case l.Locked:
					state = "locked"
				case l.Premium:
					state = "premium"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", l.Name, l.Extension, state)
			}
			return nil
		},
	}
}

func newChallengesCmd(g *globals) *cobra.Command {
	var language string
	challenges := &cobra.Command{
		Use:   "challenges [--lang name]",
		Short: "List coding challenges",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, g, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			items, err := app.PlaygroundCLI.Challenges(context.Background(), language)
			if err != nil {
				return err
			}
			for _, c := range items {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%d pts\n", c.ID, c.Language, c.Difficulty, c.Title, c.Points)
			}
			return nil
		},
	}
	challenges.Flags().StringVar(&language, "lang", "JavaScript", "language name")
	return challenges
}

func newAskCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the programming assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, g, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			messages, err := app.PlaygroundCLI.Ask(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			for _, m := range messages {
				if m.Sender == "assistant" {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), m.Text)
				}
			}
			return nil
		},
	}
}

// ─── progress and reports ────────────────────────────────────────────────────

func newReportCmd(g *globals) *cobra.Command {
	report := &cobra.Command{Use: "report", Short: "Generate markdown reports"}

	var outDir string
	progress := &cobra.Command{
		Use:   "progress [--out dir]",
		Short: "Progress report of the logged-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, g, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			out, saved, err := app.ReportCLI.Progress(context.Background(), outDir)
			if err != nil {
				return err
			}
			if saved != nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "report saved to %s\n", saved.Path)
				return nil
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Markdown)
			return nil
		},
	}
	progress.Flags().StringVar(&outDir, "out", "", "write the report into this directory")

	var language, file, codeOut string
	code := &cobra.Command{
		Use:   "code --lang <name> [--file path] [--out dir]",
		Short: "Code analysis report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, err := readSource(cmd, file)
			if err != nil {
				return err
			}
			app, err := loadApp(cmd, g, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			out, saved, err := app.ReportCLI.Code(context.Background(), language, source, codeOut)
			if err != nil {
				return err
			}
			if saved != nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "report saved to %s\n", saved.Path)
				return nil
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Markdown)
			return nil
		},
	}
	code.Flags().StringVar(&language, "lang", "", "language name")
	code.Flags().StringVar(&file, "file", "", "source file (defaults to stdin)")
	code.Flags().StringVar(&codeOut, "out", "", "write the report into this directory")

	report.AddCommand(progress, code)
	return report
}

func newProgressCmd(g *globals) *cobra.Command {
	progress := &cobra.Command{Use: "progress", Short: "Learning progress"}
	progress.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show progress statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, g, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			s, err := app.ProgressCLI.Show(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "lines of code: %d\nchallenges: %d\nstudy time: %dh\nlevel: %d\nsuccess rate: %d%%\ncomplexity: %d\n",
				s.LinesOfCode, s.ChallengesCompleted, s.StudyTimeHours, s.Level, s.SuccessRate, s.Complexity)
			for _, l := range s.Languages {
				_, _ = fmt.Fprintf(w, "%s\t%d%%\t%d challenges\n", l.Name, l.Percent, l.Challenges)
			}
			return nil
		},
	})
	progress.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reset all progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, g, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			if _, err := app.ProgressCLI.Reset(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "progress reset")
			return nil
		},
	})
	return progress
}

func newSettingsCmd(g *globals) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Profile settings"}
	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, g, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			s, err := app.ProgressCLI.Settings(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "emailNotifications: %t\ndarkMode: %t\naiAssistance: %t\n", s.EmailNotifications, s.DarkMode, s.AIAssistance)
			return nil
		},
	})
	settings.AddCommand(&cobra.Command{
		Use:   "set <emailNotifications|darkMode|aiAssistance> <true|false>",
		Short: "Change one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}
			app, err := loadApp(cmd, g, &bootstrap.ViewRecorder{})
			if err != nil {
				return err
			}
			defer app.Close()
			if _, err := app.ProgressCLI.SetSetting(context.Background(), args[0], value); err != nil {
				return err
			}
			if args[0] == "darkMode" {
				theme := "light"
				if value {
					theme = "dark"
				}
				if _, err := app.NavigationCLI.SetTheme(context.Background(), theme); err != nil {
					return err
				}
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %t\n", args[0], value)
			return nil
		},
	})
	return settings
}

func newRankingCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "ranking",
		Short: "Show the leaderboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, g, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			entries, err := app.ProgressCLI.Ranking(context.Background())
			if err != nil {
				return err
			}
			for _, e := range entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d pts\t%s\n", e.Position, e.Name, e.Points, e.Tier)
			}
			return nil
		},
	}
}

// ─── account data ────────────────────────────────────────────────────────────

func newExportCmd(g *globals) *cobra.Command {
	var outDir string
	export := &cobra.Command{
		Use:   "export [--out dir]",
		Short: "Export account data as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, g, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.ProgressCLI.Export(context.Background(), outDir)
			if err != nil {
				return err
			}
			if out.Path != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", out.Path)
				return nil
			}
			_, _ = cmd.OutOrStdout().Write(out.Payload)
			return nil
		},
	}
	export.Flags().StringVar(&outDir, "out", "", "write the export into this directory (prints otherwise)")
	return export
}

func newImportCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a previous export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			app, err := loadApp(cmd, g, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.ProgressCLI.Import(context.Background(), payload); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "import completed")
			return nil
		},
	}
}

func newAccountCmd(g *globals) *cobra.Command {
	account := &cobra.Command{Use: "account", Short: "Account management"}
	account.AddCommand(&cobra.Command{
		Use:   "delete",
		Short: "Delete every stored account record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, g, nil)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.ProgressCLI.DeleteAccount(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "account deleted")
			return nil
		},
	})
	return account
}
