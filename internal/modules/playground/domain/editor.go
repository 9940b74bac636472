package domain

// EditorBuffer is the programming view's working copy. It lives only while
// the view is open.
type EditorBuffer struct {
	Language *Language
	Source   string
	Dirty    bool
}

func (b *EditorBuffer) Select(l Language) {
	b.Language = &l
	b.Source = l.Info().StarterCode
	b.Dirty = false
}

func (b *EditorBuffer) Edit(source string) {
	if source == b.Source {
		return
	}
	b.Source = source
	b.Dirty = true
}

func (b *EditorBuffer) Reset() {
	*b = EditorBuffer{}
}

// SavedCode is one entry of the per-language saved code map.
type SavedCode struct {
	Code      string `json:"code"`
	Timestamp string `json:"timestamp"`
	Language  string `json:"language"`
}
