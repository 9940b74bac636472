package dto

type LanguageProgress struct {
	Name       string
	Percent    int
	Challenges int
}

type SnapshotOutput struct {
	LinesOfCode          int
	ChallengesCompleted  int
	StudyTimeHours       int
	Level                int
	Languages            []LanguageProgress
	DailyActivityMinutes [7]int
	SuccessRate          int
	AverageTimeMinutes   int
	Complexity           int
}

type SettingsOutput struct {
	EmailNotifications bool
	DarkMode           bool
	AIAssistance       bool
}

type RankEntry struct {
	Position   int
	Name       string
	Points     int
	Tier       string
	BarPercent float64
}

type Achievement struct {
	Name     string
	Unlocked bool
}

type OverviewOutput struct {
	Name         string
	Profile      string
	Level        int
	Points       int
	LevelPercent float64
	NextLevel    int
	Achievements []Achievement
}

type ExportOutput struct {
	FileName string
	Path     string
	Payload  []byte
}
