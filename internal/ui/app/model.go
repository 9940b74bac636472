package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	navdto "syntaxlabs/internal/modules/navigation/dto"
	progressdto "syntaxlabs/internal/modules/progress/dto"
	reportdto "syntaxlabs/internal/modules/report/dto"
	sessiondto "syntaxlabs/internal/modules/session/dto"
	apperrors "syntaxlabs/internal/platform/errors"
	"syntaxlabs/internal/ui/components"
	"syntaxlabs/internal/ui/theme"
	aboutview "syntaxlabs/internal/ui/views/about"
	homeview "syntaxlabs/internal/ui/views/home"
	learningview "syntaxlabs/internal/ui/views/learning"
	profileview "syntaxlabs/internal/ui/views/profile"
	programmingview "syntaxlabs/internal/ui/views/programming"
	rankingview "syntaxlabs/internal/ui/views/ranking"
	reportsview "syntaxlabs/internal/ui/views/reports"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// The root model only sees module usecases through these. Views declare
// their own, narrower ports.

type navigationPort interface {
	Start(ctx context.Context) (navdto.State, error)
	SwitchTab(ctx context.Context, id string) error
	ToggleTheme(ctx context.Context) (navdto.State, error)
	SetTheme(ctx context.Context, theme string) (navdto.State, error)
	Refresh(ctx context.Context) error
	Notify(kind, message string) navdto.Banner
	Banner() (navdto.Banner, bool)
	DismissBanner()
	State() navdto.State
	Tabs() []navdto.TabOutput
}

type sessionPort interface {
	Login(ctx context.Context, input sessiondto.LoginInput) (sessiondto.SessionOutput, error)
	Register(ctx context.Context, input sessiondto.RegisterInput) (sessiondto.RegisterOutput, error)
	Logout(ctx context.Context) error
	Rename(ctx context.Context, name string) (sessiondto.SessionOutput, error)
}

type progressPort interface {
	Reset(ctx context.Context) (progressdto.SnapshotOutput, error)
	SaveSetting(ctx context.Context, key string, value bool) (progressdto.SettingsOutput, error)
	Export(ctx context.Context, dir string) (progressdto.ExportOutput, error)
	Import(ctx context.Context, payload []byte) error
	DeleteAccount(ctx context.Context) error
}

type reportPort interface {
	Full(ctx context.Context) (reportdto.ReportOutput, error)
	Code(ctx context.Context) (reportdto.ReportOutput, error)
	Save(ctx context.Context, report reportdto.ReportOutput, dir string) (reportdto.SavedReport, error)
}

// Deps groups what the root model needs. Sink must be the renderer the
// navigation controller was built with, Confirmer the one the usecases ask.
type Deps struct {
	Navigation navigationPort
	Session    sessionPort
	Progress   progressPort
	Playground programmingview.Port
	Reports    reportPort
	Sink       *Sink
	Confirmer  *components.Confirmer
	// OutputDir receives exports and saved reports.
	OutputDir string
}

// ─── async messages ───────────────────────────────────────────────────────────

type loggedInMsg struct {
	user sessiondto.SessionOutput
	err  error
}

type registeredMsg struct {
	out sessiondto.RegisterOutput
	err error
}

type loggedOutMsg struct{ err error }

type progressResetMsg struct{ err error }

type importedMsg struct {
	file string
	err  error
}

type codeReportMsg struct {
	report reportdto.ReportOutput
	err    error
}

type bannerTickMsg struct{}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab      key.Binding
	PrevTab  key.Binding
	Jump     key.Binding
	Theme    key.Binding
	Login    key.Binding
	Register key.Binding
	Logout   key.Binding
	Help     key.Binding
	Palette  key.Binding
	Quit     key.Binding
	Run      key.Binding
	Save     key.Binding
	Ask      key.Binding
	Report   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous tab")),
		Jump:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7"), key.WithHelp("1-7", "jump to tab")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Login:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log in")),
		Register: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "create account")),
		Logout:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "log out")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Run:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "run code")),
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save code")),
		Ask:      key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "ask assistant")),
		Report:   key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "code report")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Theme, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.PrevTab, k.Jump, k.Theme},
		{k.Login, k.Register, k.Logout},
		{k.Run, k.Save, k.Ask, k.Report},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. The navigation controller decides what
// each tab shows; this model forwards its view models to the sub-views and
// owns the modals, the banner line and the command palette.
type Model struct {
	deps Deps

	home        homeview.Model
	learning    learningview.Model
	ranking     rankingview.Model
	programming programmingview.Model
	reports     reportsview.Model
	profile     profileview.Model
	about       aboutview.Model

	styles    theme.Styles
	themeName string
	tab       string
	tabs      []navdto.TabOutput
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	form      components.Form
	confirm   components.ConfirmModal
	banner    *navdto.Banner
	busy      string
	spinner   spinner.Model
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

// NewModel starts navigation and applies the first view model. A failing
// start is returned so the caller can abort before entering the alt screen.
func NewModel(deps Deps) (Model, error) {
	state := deps.Navigation.State()
	styles := theme.New(state.Theme)
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	m := Model{
		deps:        deps,
		home:        homeview.New(styles),
		learning:    learningview.New(styles),
		ranking:     rankingview.New(styles),
		programming: programmingview.New(deps.Playground, styles),
		reports:     reportsview.New(deps.Reports, deps.OutputDir, styles),
		profile:     profileview.New(profilePortBridge{session: deps.Session, progress: deps.Progress}, deps.OutputDir, styles),
		about:       aboutview.New(styles),
		styles:      styles,
		themeName:   state.Theme,
		keys:        defaultKeys(),
		help:        newHelp(),
		palette:     components.NewPalette(styles),
		form:        components.NewForm(styles),
		confirm:     components.NewConfirmModal(styles),
		spinner:     sp,
	}
	for _, t := range deps.Navigation.Tabs() {
		deps.Sink.Register(t.ID)
	}
	if _, err := deps.Navigation.Start(context.Background()); err != nil {
		return Model{}, fmt.Errorf("start navigation: %w", err)
	}
	m.sync()
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return m.deps.Confirmer.Wait()
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Modals intercept all input while open.
	if km, ok := msg.(tea.KeyMsg); ok {
		if km.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch {
		case m.confirm.Visible():
			var closed bool
			m.confirm, closed = m.confirm.Update(msg)
			if closed {
				return m, m.deps.Confirmer.Wait()
			}
			return m, nil
		case m.form.Visible():
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		case m.palette.Visible():
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case components.ConfirmAskMsg:
		m.confirm.Open(msg.Request)
		return m, nil

	case components.NoticeMsg:
		return m, m.notify(msg.Kind, msg.Message)

	case bannerTickMsg:
		if b, ok := m.deps.Navigation.Banner(); ok {
			m.banner = &b
			return m, bannerTick(b)
		}
		m.banner = nil
		return m, nil

	case spinner.TickMsg:
		var cmds []tea.Cmd
		if m.busy != "" {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		var cmd tea.Cmd
		m.programming, cmd = m.programming.Update(msg)
		return m, tea.Batch(append(cmds, cmd)...)

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg, components.FormCancelMsg:
		return m, nil

	case components.FormSubmitMsg:
		if msg.Kind == components.FormRegister {
			m.busy = "Creating your account..."
			return m, tea.Batch(m.registerCmd(msg), m.spinner.Tick)
		}
		m.busy = "Logging in..."
		return m, tea.Batch(m.loginCmd(msg), m.spinner.Tick)

	case loggedInMsg:
		m.busy = ""
		if msg.err != nil {
			return m, components.ErrorNotice(msg.err)
		}
		return m, m.refreshWith("success", fmt.Sprintf("Welcome back, %s!", msg.user.Name))

	case registeredMsg:
		m.busy = ""
		if msg.err != nil {
			return m, components.ErrorNotice(msg.err)
		}
		return m, tea.Batch(
			m.notify("success", "Account created! Log in to continue."),
			m.form.Open(components.FormLogin),
		)

	case loggedOutMsg:
		if errors.Is(msg.err, apperrors.ErrNotConfirmed) {
			return m, nil
		}
		if msg.err != nil {
			return m, components.ErrorNotice(msg.err)
		}
		return m, m.refreshWith("info", "You have been logged out.")

	case progressResetMsg:
		if errors.Is(msg.err, apperrors.ErrNotConfirmed) {
			return m, nil
		}
		if msg.err != nil {
			return m, components.ErrorNotice(msg.err)
		}
		return m, m.refreshWith("success", "Progress reset.")

	case importedMsg:
		if msg.err != nil {
			return m, components.ErrorNotice(msg.err)
		}
		return m, m.refreshWith("success", "Data imported from "+msg.file)

	case learningview.ResetRequestMsg:
		return m, m.resetCmd()

	case profileview.SettingSavedMsg:
		if msg.Err != nil {
			return m, components.ErrorNotice(msg.Err)
		}
		if msg.Key == "darkMode" {
			name := "light"
			if msg.Value {
				name = "dark"
			}
			if _, err := m.deps.Navigation.SetTheme(context.Background(), name); err != nil {
				return m, components.ErrorNotice(err)
			}
		}
		return m, m.refreshWith("success", "Settings saved.")

	case profileview.RenamedMsg:
		if msg.Err != nil {
			return m, components.ErrorNotice(msg.Err)
		}
		return m, m.refreshWith("success", "Profile updated.")

	case profileview.ExportedMsg:
		if msg.Err != nil {
			return m, components.ErrorNotice(msg.Err)
		}
		return m, m.notify("success", "Data exported to "+msg.Out.Path)

	case profileview.AccountDeletedMsg:
		if errors.Is(msg.Err, apperrors.ErrNotConfirmed) {
			return m, nil
		}
		if msg.Err != nil {
			return m, components.ErrorNotice(msg.Err)
		}
		if err := m.deps.Navigation.SwitchTab(context.Background(), "inicio"); err != nil {
			return m, components.ErrorNotice(err)
		}
		return m, m.refreshWith("info", "Account deleted.")

	case programmingview.CodeReportRequestMsg:
		m.busy = "Analyzing your code..."
		return m, tea.Batch(m.codeReportCmd(), m.spinner.Tick)

	case codeReportMsg:
		m.busy = ""
		if msg.err != nil {
			return m, components.ErrorNotice(msg.err)
		}
		// Generate before switching: leaving programming resets the editor.
		if err := m.deps.Navigation.SwitchTab(context.Background(), "relatorios"); err != nil {
			return m, components.ErrorNotice(err)
		}
		m.sync()
		var cmd tea.Cmd
		m.reports, cmd = m.reports.Update(reportsview.GeneratedMsg{Report: msg.report})
		return m, cmd

	case reportsview.GeneratedMsg:
		var cmd tea.Cmd
		m.reports, cmd = m.reports.Update(msg)
		if msg.Err != nil {
			return m, tea.Batch(cmd, components.ErrorNotice(msg.Err))
		}
		return m, tea.Batch(cmd, m.notify("success", "Report generated."))

	case reportsview.SavedMsg:
		if msg.Err != nil {
			return m, components.ErrorNotice(msg.Err)
		}
		return m, m.notify("success", "Report saved to "+msg.Saved.Path)

	case programmingview.RunDoneMsg, programmingview.SavedMsg,
		programmingview.ClearedMsg, programmingview.AssistantMsg:
		var cmd tea.Cmd
		m.programming, cmd = m.programming.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.banner != nil {
			m.deps.Navigation.DismissBanner()
			m.banner = nil
		}
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the sub-view while it owns text input.
		if m.subViewCapturing() {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			return m, m.switchTab(m.neighbourTab(1))
		case key.Matches(msg, m.keys.PrevTab):
			return m, m.switchTab(m.neighbourTab(-1))
		case key.Matches(msg, m.keys.Jump):
			i := int(msg.String()[0] - '1')
			if i >= 0 && i < len(m.tabs) {
				return m, m.switchTab(m.tabs[i].ID)
			}
			return m, nil
		case key.Matches(msg, m.keys.Theme):
			return m, m.toggleTheme()
		case key.Matches(msg, m.keys.Login):
			return m, m.form.Open(components.FormLogin)
		case key.Matches(msg, m.keys.Register):
			return m, m.form.Open(components.FormRegister)
		case key.Matches(msg, m.keys.Logout):
			return m, m.logoutCmd()
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Palette):
			return m, m.palette.Open()
		}
	}

	// Propagate the message to the active tab's sub-view.
	var cmd tea.Cmd
	switch m.tab {
	case "aprendizados":
		m.learning, cmd = m.learning.Update(msg)
	case "ranking":
		m.ranking, cmd = m.ranking.Update(msg)
	case "programacao":
		m.programming, cmd = m.programming.Update(msg)
	case "relatorios":
		m.reports, cmd = m.reports.Update(msg)
	case "perfil":
		m.profile, cmd = m.profile.Update(msg)
	}
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	bannerLine := ""
	if m.banner != nil {
		bannerLine = components.Banner(m.styles, *m.banner, m.width)
	}
	contentH := max(m.height-lipgloss.Height(tabBar)-lipgloss.Height(statusBar)-lipgloss.Height(bannerLine), 1)

	var content string
	switch {
	case m.confirm.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.confirm.View())
	case m.form.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.form.View())
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	default:
		content = m.activeView()
	}

	parts := []string{tabBar}
	if bannerLine != "" {
		parts = append(parts, bannerLine)
	}
	parts = append(parts, content, statusBar)
	return m.styles.App.Padding(0).Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) activeView() string {
	switch m.tab {
	case "inicio":
		return m.home.View()
	case "aprendizados":
		return m.learning.View()
	case "ranking":
		return m.ranking.View()
	case "programacao":
		return m.programming.View()
	case "relatorios":
		return m.reports.View()
	case "perfil":
		return m.profile.View()
	case "sobre":
		return m.about.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		label := fmt.Sprintf(" %d %s ", i+1, t.Title)
		if t.Active {
			parts[i] = m.styles.Hot.Render(label)
		} else {
			parts[i] = m.styles.Muted.Render(label)
		}
	}
	sep := m.styles.Muted.Render(" │ ")
	bar := m.styles.Title.Render("</> Syntax Labs") + "  " + strings.Join(parts, sep)
	return m.styles.Bar.Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.styles.Muted.Render("theme: " + m.themeName)
	if m.busy != "" {
		left = m.spinner.View() + " " + m.busy
	}
	right := m.styles.Muted.Render("?:help  tab:switch  t:theme  l/u/L:account  :::palette  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + m.styles.Bar.Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	input = strings.TrimSpace(input)
	if input == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	rest := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
	ctx := context.Background()

	switch parts[0] {
	case "tab":
		if rest == "" {
			return m, m.notify("warning", "usage: tab <id>")
		}
		return m, m.switchTab(rest)

	case "theme:toggle":
		return m, m.toggleTheme()

	case "login":
		return m, m.form.Open(components.FormLogin)

	case "register":
		return m, m.form.Open(components.FormRegister)

	case "logout":
		return m, m.logoutCmd()

	case "lang", "challenge", "run", "save", "ask", "analyze":
		if cmd := m.switchTab("programacao"); cmd != nil {
			return m, cmd
		}
		switch parts[0] {
		case "lang":
			if rest == "" {
				return m, m.notify("warning", "usage: lang <name>")
			}
			return m, m.programming.SelectLanguage(rest)
		case "challenge":
			if rest == "" {
				return m, m.notify("warning", "usage: challenge <id>")
			}
			return m, m.programming.LoadChallenge(rest)
		case "run":
			return m, m.programming.Run()
		case "save":
			return m, m.programming.Save()
		case "ask":
			return m, m.programming.Ask(rest)
		case "analyze":
			return m, m.programming.Analyze()
		}

	case "report:progress":
		if cmd := m.switchTab("relatorios"); cmd != nil {
			return m, cmd
		}
		return m, func() tea.Msg {
			report, err := m.deps.Reports.Full(ctx)
			return reportsview.GeneratedMsg{Report: report, Err: err}
		}

	case "report:code":
		m.busy = "Analyzing your code..."
		return m, tea.Batch(m.codeReportCmd(), m.spinner.Tick)

	case "progress:reset":
		return m, m.resetCmd()

	case "export":
		return m, func() tea.Msg {
			out, err := m.deps.Progress.Export(ctx, m.deps.OutputDir)
			return profileview.ExportedMsg{Out: out, Err: err}
		}

	case "import":
		if rest == "" {
			return m, m.notify("warning", "usage: import <file>")
		}
		return m, m.importCmd(rest)

	case "rename":
		return m, func() tea.Msg {
			user, err := m.deps.Session.Rename(ctx, rest)
			return profileview.RenamedMsg{User: user, Err: err}
		}

	case "account:delete":
		return m, func() tea.Msg {
			return profileview.AccountDeletedMsg{Err: m.deps.Progress.DeleteAccount(ctx)}
		}

	default:
		return m, m.notify("warning", "unknown command: "+parts[0])
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// sync hands the latest rendered view model to its view and refreshes the
// tab bar, the theme and the banner.
func (m *Model) sync() {
	state := m.deps.Navigation.State()
	if state.Theme != m.themeName {
		m.restyle(state.Theme)
	}
	m.tab = state.Tab
	m.tabs = m.deps.Navigation.Tabs()
	if b, ok := m.deps.Navigation.Banner(); ok {
		m.banner = &b
	} else {
		m.banner = nil
	}

	vm, ok := m.deps.Sink.Take()
	if !ok {
		return
	}
	switch vm.Tab {
	case "inicio":
		m.home.SetView(vm)
	case "aprendizados":
		m.learning.SetView(vm)
	case "ranking":
		m.ranking.SetView(vm)
	case "programacao":
		m.programming.SetView(vm)
	case "relatorios":
		m.reports.SetView(vm)
	case "perfil":
		m.profile.SetView(vm)
	case "sobre":
		m.about.SetView(vm)
	}
}

func (m *Model) restyle(name string) {
	s := theme.New(name)
	m.styles = s
	m.themeName = name
	m.home.SetStyles(s)
	m.learning.SetStyles(s)
	m.ranking.SetStyles(s)
	m.programming.SetStyles(s)
	m.reports.SetStyles(s)
	m.profile.SetStyles(s)
	m.about.SetStyles(s)
	m.palette.SetStyles(s)
	m.form.SetStyles(s)
	m.confirm.SetStyles(s)
}

func (m *Model) switchTab(id string) tea.Cmd {
	if err := m.deps.Navigation.SwitchTab(context.Background(), id); err != nil {
		return components.ErrorNotice(err)
	}
	m.sync()
	return nil
}

func (m *Model) toggleTheme() tea.Cmd {
	if _, err := m.deps.Navigation.ToggleTheme(context.Background()); err != nil {
		return components.ErrorNotice(err)
	}
	m.sync()
	return nil
}

// refreshWith re-renders the active tab and then shows a banner.
func (m *Model) refreshWith(kind, message string) tea.Cmd {
	if err := m.deps.Navigation.Refresh(context.Background()); err != nil {
		return components.ErrorNotice(err)
	}
	m.sync()
	return m.notify(kind, message)
}

func (m *Model) notify(kind, message string) tea.Cmd {
	b := m.deps.Navigation.Notify(kind, message)
	m.banner = &b
	return bannerTick(b)
}

func bannerTick(b navdto.Banner) tea.Cmd {
	return tea.Tick(time.Until(b.ExpiresAt), func(time.Time) tea.Msg { return bannerTickMsg{} })
}

func (m Model) neighbourTab(step int) string {
	if len(m.tabs) == 0 {
		return m.tab
	}
	current := 0
	for i, t := range m.tabs {
		if t.ID == m.tab {
			current = i
		}
	}
	next := (current + step + len(m.tabs)) % len(m.tabs)
	return m.tabs[next].ID
}

// subViewCapturing reports whether the active tab has a focused text input,
// in which case global key bindings must yield to allow free typing.
func (m Model) subViewCapturing() bool {
	switch m.tab {
	case "programacao":
		return m.programming.Capturing()
	case "perfil":
		return m.profile.Capturing()
	}
	return false
}

func (m *Model) propagateSize() {
	h := max(m.height-5, 1)
	m.home.SetSize(m.width, h)
	m.learning.SetSize(m.width, h)
	m.ranking.SetSize(m.width, h)
	m.programming.SetSize(m.width, h)
	m.reports.SetSize(m.width, h)
	m.profile.SetSize(m.width, h)
	m.about.SetSize(m.width, h)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loginCmd(in components.FormSubmitMsg) tea.Cmd {
	return func() tea.Msg {
		user, err := m.deps.Session.Login(context.Background(), sessiondto.LoginInput{
			Profile:  in.Profile,
			Name:     in.Name,
			Email:    in.Email,
			Password: in.Password,
		})
		return loggedInMsg{user: user, err: err}
	}
}

func (m Model) registerCmd(in components.FormSubmitMsg) tea.Cmd {
	return func() tea.Msg {
		out, err := m.deps.Session.Register(context.Background(), sessiondto.RegisterInput{
			Profile:  in.Profile,
			Name:     in.Name,
			Email:    in.Email,
			Password: in.Password,
			Confirm:  in.Confirm,
		})
		return registeredMsg{out: out, err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: m.deps.Session.Logout(context.Background())}
	}
}

func (m Model) resetCmd() tea.Cmd {
	return func() tea.Msg {
		_, err := m.deps.Progress.Reset(context.Background())
		return progressResetMsg{err: err}
	}
}

func (m Model) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		payload, err := os.ReadFile(path)
		if err != nil {
			return importedMsg{file: path, err: fmt.Errorf("read import file: %w", err)}
		}
		return importedMsg{file: path, err: m.deps.Progress.Import(context.Background(), payload)}
	}
}

func (m Model) codeReportCmd() tea.Cmd {
	return func() tea.Msg {
		report, err := m.deps.Reports.Code(context.Background())
		return codeReportMsg{report: report, err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// A bridge narrows the root ports to the minimal interface a sub-view needs.

type profilePortBridge struct {
	session  sessionPort
	progress progressPort
}

func (b profilePortBridge) SaveSetting(ctx context.Context, key string, value bool) (progressdto.SettingsOutput, error) {
	return b.progress.SaveSetting(ctx, key, value)
}
func (b profilePortBridge) Rename(ctx context.Context, name string) (sessiondto.SessionOutput, error) {
	return b.session.Rename(ctx, name)
}
func (b profilePortBridge) Export(ctx context.Context, dir string) (progressdto.ExportOutput, error) {
	return b.progress.Export(ctx, dir)
}
func (b profilePortBridge) DeleteAccount(ctx context.Context) error {
	return b.progress.DeleteAccount(ctx)
}

func newHelp() help.Model {
	h := help.New()
	h.ShowAll = true
	return h
}
