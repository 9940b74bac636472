package service

import (
	"context"
	"fmt"
	"strings"

	"syntaxlabs/internal/modules/playground/domain"
	playgroundout "syntaxlabs/internal/modules/playground/port/out"
	apperrors "syntaxlabs/internal/platform/errors"
)

type handler func(ctx context.Context, source string) (string, error)

type stub struct {
	title string
	label string
	hint  string
}

var stubs = map[domain.Language]stub{
	domain.Python:    {"Python execution simulation", "Your code", "Use a Python environment to run it."},
	domain.HTML:      {"HTML preview simulation", "Your markup", "Save it as an .html file and open it in a browser."},
	domain.CSS:       {"CSS execution simulation", "Your CSS code", "Combine it with HTML to see the styles applied."},
	domain.Java:      {"Java execution simulation", "Your code", "Compile with javac and run with java."},
	domain.PHP:       {"PHP execution simulation", "Your code", "Run it on a web server with PHP."},
	domain.CPlusPlus: {"C++ execution simulation", "Your code", "Compile with g++ and run the binary."},
	domain.MySQL:     {"MySQL execution simulation", "Your queries", "Run them against a MySQL server."},
	domain.NodeJS:    {"Node.js execution simulation", "Your code", "Save it as a .js file and run it with node."},
	domain.Lua:       {"Lua execution simulation", "Your code", "Run it with the Lua interpreter."},
	domain.Assembly:  {"Assembly execution simulation", "Your code", "Assembly needs a target-specific assembler."},
}

// Dispatcher maps every language to its handler. JavaScript is evaluated by
// the script engine; every other language gets a fixed template around the
// verbatim source.
type Dispatcher struct {
	handlers [domain.Count]handler
}

func NewDispatcher(engine playgroundout.ScriptEngine) *Dispatcher {
	d := &Dispatcher{}
	for _, lang := range domain.All() {
		if lang == domain.JavaScript {
			d.handlers[lang] = engine.Eval
			continue
		}
		d.handlers[lang] = stubHandler(stubs[lang])
	}
	return d
}

func stubHandler(s stub) handler {
	return func(_ context.Context, source string) (string, error) {
		return fmt.Sprintf("%s\n\n%s:\n%s\n\nHint: %s", s.title, s.label, source, s.hint), nil
	}
}

func (d *Dispatcher) Run(ctx context.Context, lang domain.Language, source string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", apperrors.ErrEmptySource
	}
	if !lang.Valid() {
		return "", apperrors.ErrNoLanguage
	}
	out, err := d.handlers[lang](ctx, source)
	if err != nil {
		return "", &apperrors.ExecutionError{Language: lang.String(), Err: err}
	}
	return out, nil
}
