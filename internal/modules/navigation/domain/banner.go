package domain

import "time"

type BannerKind string

const (
	BannerInfo    BannerKind = "info"
	BannerSuccess BannerKind = "success"
	BannerWarning BannerKind = "warning"
	BannerError   BannerKind = "error"
)

func ParseBannerKind(raw string) BannerKind {
	switch BannerKind(raw) {
	case BannerSuccess, BannerWarning, BannerError:
		return BannerKind(raw)
	default:
		return BannerInfo
	}
}

// Banner is a transient notice. It is dismissed on keypress or once
// ExpiresAt has passed.
type Banner struct {
	Kind      BannerKind
	Message   string
	ExpiresAt time.Time
}

func (b Banner) Expired(now time.Time) bool {
	return !now.Before(b.ExpiresAt)
}
