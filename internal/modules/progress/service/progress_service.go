package service

import (
	"bytes"
	"encoding/json"
	"fmt"

	"syntaxlabs/internal/modules/progress/domain"
	"syntaxlabs/internal/platform/clock"
	apperrors "syntaxlabs/internal/platform/errors"
)

const exportDateLayout = "2006-01-02T15:04:05.000Z"

type ProgressService struct {
	clock clock.Clock
	intn  func(n int) int
}

func NewProgressService(clock clock.Clock, intn func(n int) int) *ProgressService {
	return &ProgressService{clock: clock, intn: intn}
}

func (s *ProgressService) Defaults() domain.Snapshot {
	return domain.DefaultSnapshot(s.intn)
}

// Encode renders the export document with two-space indentation and names
// the file after the export instant.
func (s *ProgressService) Encode(user json.RawMessage, snapshot domain.Snapshot, settings domain.Settings) (string, []byte, error) {
	now := s.clock.Now().UTC()
	doc := domain.ExportDocument{
		User:       user,
		Progress:   snapshot,
		Settings:   settings,
		ExportDate: now.Format(exportDateLayout),
	}
	if len(doc.User) == 0 {
		doc.User = json.RawMessage("null")
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("marshal export: %w", err)
	}
	return fmt.Sprintf("syntax-labs-data-%d.json", now.UnixMilli()), payload, nil
}

func (s *ProgressService) Decode(payload []byte) (domain.ExportDocument, error) {
	doc := domain.ExportDocument{}
	dec := json.NewDecoder(bytes.NewReader(payload))
	if err := dec.Decode(&doc); err != nil {
		return domain.ExportDocument{}, apperrors.Validation("file", "The file is not a valid export document.")
	}
	if err := doc.Progress.Validate(); err != nil {
		return domain.ExportDocument{}, apperrors.Validation("progress", err.Error())
	}
	if doc.Progress.Languages == nil {
		doc.Progress.Languages = map[string]domain.LanguageProgress{}
	}
	if len(doc.User) > 0 && !bytes.Equal(bytes.TrimSpace(doc.User), []byte("null")) {
		compact := bytes.Buffer{}
		if err := json.Compact(&compact, doc.User); err != nil {
			return domain.ExportDocument{}, apperrors.Validation("user", "The exported user is malformed.")
		}
		doc.User = compact.Bytes()
	} else {
		doc.User = nil
	}
	return doc, nil
}
