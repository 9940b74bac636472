package domain

// TabID names one of the fixed top-level views.
type TabID string

const (
	TabHome        TabID = "inicio"
	TabProgress    TabID = "aprendizados"
	TabRanking     TabID = "ranking"
	TabProgramming TabID = "programacao"
	TabReports     TabID = "relatorios"
	TabProfile     TabID = "perfil"
	TabAbout       TabID = "sobre"
)

const DefaultTab = TabHome

var tabs = []TabID{TabHome, TabProgress, TabRanking, TabProgramming, TabReports, TabProfile, TabAbout}

var titles = map[TabID]string{
	TabHome:        "Home",
	TabProgress:    "Learning",
	TabRanking:     "Ranking",
	TabProgramming: "Programming",
	TabReports:     "Reports",
	TabProfile:     "Profile",
	TabAbout:       "About",
}

// Tabs returns the tab bar order.
func Tabs() []TabID {
	out := make([]TabID, len(tabs))
	copy(out, tabs)
	return out
}

func ParseTab(raw string) (TabID, bool) {
	for _, t := range tabs {
		if string(t) == raw {
			return t, true
		}
	}
	return "", false
}

func (t TabID) Title() string {
	return titles[t]
}

// NeedsSession reports whether the tab shows a login placeholder when
// nobody is logged in.
func (t TabID) NeedsSession() bool {
	switch t {
	case TabProgress, TabReports, TabProfile:
		return true
	default:
		return false
	}
}

// ViewState is rebuilt on every start: theme from storage, tab from DefaultTab.
type ViewState struct {
	ActiveTab TabID
	Theme     Theme
}
