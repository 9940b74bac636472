package domain

const rankingScale = 3000

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

func Ranking() []RankEntry {
	entries := []RankEntry{
		{Name: "Ana Silva", Points: 2850, Tier: "Legend"},
		{Name: "João Santos", Points: 2420, Tier: "Master"},
		{Name: "Maria Costa", Points: 2180, Tier: "Advanced"},
		{Name: "Pedro Oliveira", Points: 1950, Tier: "Advanced"},
		{Name: "Carla Rodrigues", Points: 1720, Tier: "Intermediate"},
	}
	for i := range entries {
		entries[i].Position = i + 1
		entries[i].BarPercent = float64(entries[i].Points*100) / rankingScale
	}
	return entries
}

func Achievements(level, points int) []Achievement {
	return []Achievement{
		{Name: "First Program", Unlocked: points > 0},
		{Name: "Bug Hunter", Unlocked: level >= 3},
		{Name: "Junior Developer", Unlocked: level >= 5},
		{Name: "Code Master", Unlocked: level >= 8},
	}
}

// LevelProgress is the percentage towards the next level.
func LevelProgress(points int) float64 {
	if points < 0 {
		return 0
	}
	return float64(points%1000) / 10
}
