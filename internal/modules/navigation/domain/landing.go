package domain

var snippets = []string{
	`function syntax() {`,
	`const labs = "awesome";`,
	`console.log("Syntax Labs");`,
	`if (code) { learn(); }`,
	`for (let i = 0; i < 10; i++)`,
	`class SyntaxLabs {`,
	`import { Code } from "syntax"`,
	`def learn():`,
	`print("Python")`,
	`<div className="labs">`,
	`public static void main`,
	`System.out.println`,
	`<?php echo "Labs"; ?>`,
	`SELECT * FROM syntax`,
	`git commit -m "feat"`,
	`docker build -t labs`,
	`npm start syntax`,
	`python3 labs.py`,
	`java -version`,
	`node syntax.js`,
}

const LandingLines = 12

// LandingSnippets picks the floating code lines of the landing animation.
func LandingSnippets(intn func(n int) int) []string {
	out := make([]string, 0, LandingLines)
	for i := 0; i < LandingLines; i++ {
		out = append(out, snippets[intn(len(snippets))])
	}
	return out
}
