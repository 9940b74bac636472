package domain

import "fmt"

type Challenge struct {
	ID          string
	Language    Language
	Title       string
	Description string
	Difficulty  string
	Points      int
}

var challenges = []Challenge{
	{ID: "js-1", Language: JavaScript, Title: "Simple Calculator", Description: "Build a basic calculator.", Difficulty: "Beginner", Points: 100},
	{ID: "js-2", Language: JavaScript, Title: "Form Validator", Description: "Validate form data.", Difficulty: "Intermediate", Points: 200},
	{ID: "py-1", Language: Python, Title: "Hangman", Description: "Write the hangman game.", Difficulty: "Beginner", Points: 150},
	{ID: "py-2", Language: Python, Title: "Data Analysis", Description: "Analyse a data set.", Difficulty: "Advanced", Points: 300},
	{ID: "html-1", Language: HTML, Title: "Personal Portfolio", Description: "Publish your portfolio.", Difficulty: "Beginner", Points: 100},
	{ID: "css-1", Language: CSS, Title: "Responsive Layout", Description: "Build a layout that adapts to any screen.", Difficulty: "Intermediate", Points: 180},
	{ID: "java-1", Language: Java, Title: "Banking System", Description: "Simulate basic bank operations.", Difficulty: "Intermediate", Points: 250},
}

func ChallengesFor(l Language) []Challenge {
	out := []Challenge{}
	for _, c := range challenges {
		if c.Language == l {
			out = append(out, c)
		}
	}
	return out
}

func FindChallenge(id string) (Challenge, bool) {
	for _, c := range challenges {
		if c.ID == id {
			return c, true
		}
	}
	return Challenge{}, false
}

func (c Challenge) Scaffold() string {
	return fmt.Sprintf("// Challenge: %s\n// Write your solution below\n\nconsole.log(\"Good luck!\");", c.ID)
}
