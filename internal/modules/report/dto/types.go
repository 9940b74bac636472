package dto

import "time"

type ReportOutput struct {
	Kind        string
	Title       string
	Language    string
	GeneratedAt time.Time
	// Markdown is the full document, frontmatter included.
	Markdown string
	// Body is Markdown without frontmatter, for display.
	Body string
}

type SavedReport struct {
	FileName string
	Path     string
}
