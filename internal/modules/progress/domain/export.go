package domain

import "encoding/json"

// ExportDocument is the downloadable account dump. User stays raw so a
// re-import writes back exactly what was exported.
type ExportDocument struct {
	User       json.RawMessage `json:"user"`
	Progress   Snapshot        `json:"progress"`
	Settings   Settings        `json:"settings"`
	ExportDate string          `json:"exportDate"`
}
