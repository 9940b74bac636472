package domain

import (
	"fmt"
	"strings"

	"syntaxlabs/internal/platform/slug"
)

// Language is the closed set of editor languages. Adding one means adding a
// constant here and an entry in every table indexed by Language.
type Language int

const (
	JavaScript Language = iota
	Python
	HTML
	CSS
	Java
	PHP
	CPlusPlus
	MySQL
	NodeJS
	Lua
	Assembly
	languageCount
)

// Count is the number of supported languages.
const Count = int(languageCount)

type Info struct {
	Name        string
	Description string
	Extension   string
	StarterCode string
}

var catalog = [languageCount]Info{
	JavaScript: {
		Name:        "JavaScript",
		Description: "The language of the web",
		Extension:   "js",
		StarterCode: `// Welcome to JavaScript!
// Write your code below and run it.

function greet(name) {
    return "Hello, " + name + "! Welcome to Syntax Labs.";
}

console.log(greet("Developer"));

// Challenge: write a function that adds two numbers
function add(a, b) {
    return a + b;
}

console.log("Sum:", add(5, 3));`,
	},
	Python: {
		Name:        "Python",
		Description: "Versatile and powerful",
		Extension:   "py",
		StarterCode: `# Welcome to Python!

def greet(name):
    return f"Hello, {name}! Welcome to Syntax Labs."

print(greet("Developer"))

numbers = [1, 2, 3, 4, 5]
print("Sum:", sum(numbers))`,
	},
	HTML: {
		Name:        "HTML",
		Description: "Markup for the web",
		Extension:   "html",
		StarterCode: `<!DOCTYPE html>
<html>
<head>
    <title>My Page</title>
</head>
<body>
    <h1>Welcome to Syntax Labs!</h1>
    <p>Edit this page and run it.</p>
</body>
</html>`,
	},
	CSS: {
		Name:        "CSS",
		Description: "Styling for the web",
		Extension:   "css",
		StarterCode: `/* Welcome to CSS! */

body {
    font-family: sans-serif;
    background: #1a1a2e;
    color: #ffffff;
}

h1 {
    color: #4a90e2;
}`,
	},
	Java: {
		Name:        "Java",
		Description: "Enterprise workhorse",
		Extension:   "java",
		StarterCode: `public class Main {
    public static void main(String[] args) {
        System.out.println("Hello, Syntax Labs!");
    }
}`,
	},
	PHP: {
		Name:        "PHP",
		Description: "Dynamic web pages",
		Extension:   "php",
		StarterCode: `<?php
echo "Hello, Syntax Labs!";
?>`,
	},
	CPlusPlus: {
		Name:        "C++",
		Description: "High performance",
		Extension:   "cpp",
		StarterCode: `#include <iostream>

int main() {
    std::cout << "Hello, Syntax Labs!" << std::endl;
    return 0;
}`,
	},
	MySQL: {
		Name:        "MySQL",
		Description: "Relational database",
		Extension:   "sql",
		StarterCode: `CREATE TABLE students (
    id INT PRIMARY KEY,
    name VARCHAR(100)
);

SELECT * FROM students;`,
	},
	NodeJS: {
		Name:        "Node.js",
		Description: "JavaScript on the server",
		Extension:   "js",
		StarterCode: `const http = require('http');

http.createServer((req, res) => {
    res.end('Hello, Syntax Labs!');
}).listen(3000);`,
	},
	Lua: {
		Name:        "Lua",
		Description: "Lightweight scripting",
		Extension:   "lua",
		StarterCode: `-- Welcome to Lua!
print("Hello, Syntax Labs!")`,
	},
	Assembly: {
		Name:        "Assembly",
		Description: "Close to the metal",
		Extension:   "asm",
		StarterCode: `section .data
    msg db "Hello, Syntax Labs!", 10

section .text
    global _start
_start:
    mov rax, 1
    mov rdi, 1
    mov rsi, msg
    mov rdx, 20
    syscall`,
	},
}

func All() []Language {
	out := make([]Language, 0, languageCount)
	for l := Language(0); l < languageCount; l++ {
		out = append(out, l)
	}
	return out
}

func (l Language) Valid() bool {
	return l >= 0 && l < languageCount
}

func (l Language) Info() Info {
	if !l.Valid() {
		return Info{}
	}
	return catalog[l]
}

func (l Language) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Language(%d)", int(l))
	}
	return catalog[l].Name
}

// Slug is the command-line spelling, e.g. "cplusplus" or "nodejs".
func (l Language) Slug() string {
	return slug.Make(l.String())
}

// Premium languages are listed for everyone but selectable only with a session.
func (l Language) Premium() bool {
	return l >= PHP
}

// ParseLanguage accepts the display name or the slug, case-insensitively.
func ParseLanguage(raw string) (Language, error) {
	want := strings.TrimSpace(raw)
	for _, l := range All() {
		if strings.EqualFold(want, l.String()) || strings.EqualFold(want, l.Slug()) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown language %q", raw)
}
