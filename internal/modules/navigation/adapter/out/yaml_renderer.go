package out

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	navigationdto "syntaxlabs/internal/modules/navigation/dto"
	navigationout "syntaxlabs/internal/modules/navigation/port/out"
)

// YAMLRenderer prints view models as YAML documents. The CLI uses it to
// show a tab without starting the terminal UI.
type YAMLRenderer struct {
	w io.Writer
}

func NewYAMLRenderer(w io.Writer) navigationout.Renderer {
	return &YAMLRenderer{w: w}
}

func (r *YAMLRenderer) Render(_ context.Context, view navigationdto.ViewModel) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("encode view: %w", err)
	}
	return enc.Close()
}
