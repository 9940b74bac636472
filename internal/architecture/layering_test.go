package architecture_test

import (
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
)

const modulesPrefix = "syntaxlabs/internal/modules/"

var layers = []string{"adapter/in", "adapter/out", "port/in", "port/out", "usecase", "service", "domain", "dto"}

// allowed lists the layers of its own module each layer may import.
var allowed = map[string][]string{
	"domain":      {"domain"},
	"dto":         {"dto", "domain"},
	"port/in":     {"dto", "domain"},
	"port/out":    {"dto", "domain"},
	"service":     {"domain", "dto", "port/out"},
	"usecase":     {"domain", "dto", "port/in", "port/out", "service"},
	"adapter/in":  {"port/in", "dto"},
	"adapter/out": {"domain", "dto", "port/out"},
}

type moduleImport struct {
	file   string
	module string
	layer  string
}

// parseTarget splits an import path under internal/modules into module and layer.
func parseTarget(importPath string) (moduleImport, bool) {
	rest, ok := strings.CutPrefix(importPath, modulesPrefix)
	if !ok {
		return moduleImport{}, false
	}
	module, layerPath, _ := strings.Cut(rest, "/")
	for _, l := range layers {
		if layerPath == l || strings.HasPrefix(layerPath, l+"/") {
			return moduleImport{module: module, layer: l}, true
		}
	}
	return moduleImport{module: module}, true
}

// walkImports calls fn for every module import found in the Go files under dir.
func walkImports(t *testing.T, dir string, withTests bool, fn func(file, importPath string)) {
	t.Helper()
	fset := token.NewFileSet()
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") {
			return nil
		}
		if !withTests && strings.HasSuffix(path, "_test.go") {
			return nil
		}
		node, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)
			if strings.HasPrefix(importPath, modulesPrefix) {
				fn(filepath.ToSlash(path), importPath)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", dir, err)
	}
}

func TestModuleLayerImports(t *testing.T) {
	t.Parallel()
	walkImports(t, filepath.Join("..", "modules"), false, func(file, importPath string) {
		_, rel, _ := strings.Cut(file, "modules/")
		from, ok := parseTarget(modulesPrefix + rel)
		if !ok || from.layer == "" {
			return
		}
		to, _ := parseTarget(importPath)
		if to.module != from.module {
			if to.layer != "port/in" && to.layer != "dto" {
				t.Errorf("%s: %s may only use another module's port/in or dto, got %s", file, from.layer, importPath)
			}
			return
		}
		for _, l := range allowed[from.layer] {
			if l == to.layer {
				return
			}
		}
		t.Errorf("%s: %s must not import %s", file, from.layer, importPath)
	})
}

// The renderer sees modules through inbound ports, DTOs and value types only.
func TestUIImportsOnlyPortsDTOsAndDomain(t *testing.T) {
	t.Parallel()
	walkImports(t, filepath.Join("..", "ui"), true, func(file, importPath string) {
		to, _ := parseTarget(importPath)
		switch to.layer {
		case "port/in", "dto", "domain":
		default:
			t.Errorf("%s imports %s", file, importPath)
		}
	})
}

func TestParseTarget(t *testing.T) {
	t.Parallel()
	cases := map[string]moduleImport{
		modulesPrefix + "session/port/in":      {module: "session", layer: "port/in"},
		modulesPrefix + "progress/adapter/out": {module: "progress", layer: "adapter/out"},
		modulesPrefix + "playground/domain":    {module: "playground", layer: "domain"},
		modulesPrefix + "report/service/x.go":  {module: "report", layer: "service"},
		modulesPrefix + "navigation/dto/sub":   {module: "navigation", layer: "dto"},
		modulesPrefix + "navigation/unlayered": {module: "navigation"},
	}
	for in, want := range cases {
		got, ok := parseTarget(in)
		if !ok || got != want {
			t.Fatalf("parseTarget(%q) = %+v, %v; want %+v", in, got, ok, want)
		}
	}
	if _, ok := parseTarget("syntaxlabs/internal/platform/kvstore"); ok {
		t.Fatalf("platform packages are not module imports")
	}
}
