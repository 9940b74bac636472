package domain

import (
	"fmt"
	"sort"
)

type LanguageProgress struct {
	ProgressPercent int `json:"progress"`
	ChallengesCount int `json:"challenges"`
}

type ChallengePerformance struct {
	SuccessRate        int `json:"successRate"`
	AverageTimeMinutes int `json:"averageTime"`
	Complexity         int `json:"complexity"`
}

// Snapshot is the learning-progress dataset shown in charts and reports.
type Snapshot struct {
	LinesOfCode          int                         `json:"linesOfCode"`
	ChallengesCompleted  int                         `json:"challengesCompleted"`
	StudyTimeHours       int                         `json:"studyTime"`
	Level                int                         `json:"level"`
	Languages            map[string]LanguageProgress `json:"languages"`
	DailyActivityMinutes [7]int                      `json:"dailyActivity"`
	ChallengePerformance ChallengePerformance        `json:"challengePerformance"`
}

// DefaultSnapshot is the mock dataset used when nothing is stored. intn
// supplies the daily activity minutes.
func DefaultSnapshot(intn func(n int) int) Snapshot {
	s := Snapshot{
		LinesOfCode:         1250,
		ChallengesCompleted: 24,
		StudyTimeHours:      45,
		Level:               5,
		Languages: map[string]LanguageProgress{
			"JavaScript": {ProgressPercent: 85, ChallengesCount: 12},
			"Python":     {ProgressPercent: 70, ChallengesCount: 8},
			"HTML":       {ProgressPercent: 90, ChallengesCount: 10},
			"CSS":        {ProgressPercent: 80, ChallengesCount: 6},
			"Java":       {ProgressPercent: 60, ChallengesCount: 4},
		},
		ChallengePerformance: ChallengePerformance{SuccessRate: 85, AverageTimeMinutes: 12, Complexity: 60},
	}
	for i := range s.DailyActivityMinutes {
		s.DailyActivityMinutes[i] = 30 + intn(120)
	}
	return s
}

// Reset returns the zeroed snapshot.
func Reset() Snapshot {
	return Snapshot{Languages: map[string]LanguageProgress{}}
}

func (s Snapshot) Validate() error {
	for name, lp := range s.Languages {
		if lp.ProgressPercent < 0 || lp.ProgressPercent > 100 {
			return fmt.Errorf("language %s progress %d out of range", name, lp.ProgressPercent)
		}
	}
	return nil
}

var displayOrder = []string{"JavaScript", "Python", "HTML", "CSS", "Java", "PHP", "C++", "MySQL", "Node.js", "Lua", "Assembly"}

// LanguageNames lists the snapshot's languages in catalog order, unknown
// names last and sorted.
func (s Snapshot) LanguageNames() []string {
	rank := make(map[string]int, len(displayOrder))
	for i, name := range displayOrder {
		rank[name] = i
	}
	names := make([]string, 0, len(s.Languages))
	for name := range s.Languages {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, iok := rank[names[i]]
		rj, jok := rank[names[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return names[i] < names[j]
		}
	})
	return names
}

type Settings struct {
	EmailNotifications bool `json:"emailNotifications"`
	DarkMode           bool `json:"darkMode"`
	AIAssistance       bool `json:"aiAssistance"`
}

func DefaultSettings(dark bool) Settings {
	return Settings{EmailNotifications: true, DarkMode: dark, AIAssistance: true}
}

const (
	SettingEmailNotifications = "emailNotifications"
	SettingDarkMode           = "darkMode"
	SettingAIAssistance       = "aiAssistance"
)

func (s Settings) With(key string, value bool) (Settings, error) {
	switch key {
	case SettingEmailNotifications:
		s.EmailNotifications = value
	case SettingDarkMode:
		s.DarkMode = value
	case SettingAIAssistance:
		s.AIAssistance = value
	default:
		return s, fmt.Errorf("unknown setting %q", key)
	}
	return s, nil
}
