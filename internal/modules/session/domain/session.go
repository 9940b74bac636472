package domain

import (
	"fmt"
	"regexp"
	"strings"
)

type ProfileKind string

const (
	ProfileStudent      ProfileKind = "student"
	ProfileProfessional ProfileKind = "professional"
	ProfileCompany      ProfileKind = "company"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ParseProfile(raw string) (ProfileKind, error) {
	switch ProfileKind(strings.ToLower(strings.TrimSpace(raw))) {
	case ProfileStudent:
		return ProfileStudent, nil
	case ProfileProfessional:
		return ProfileProfessional, nil
	case ProfileCompany:
		return ProfileCompany, nil
	default:
		return "", fmt.Errorf("unknown profile %q", raw)
	}
}

// Title is the capitalised profile name used as a fallback display name.
func (p ProfileKind) Title() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Session is the single logged-in mock user. ID is the creation time in
// unix milliseconds.
type Session struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Profile   ProfileKind `json:"profileKind"`
	Level     int         `json:"level"`
	Points    int         `json:"points"`
	Specialty string      `json:"specialty,omitempty"`
	Plan      string      `json:"plan,omitempty"`
	Employees string      `json:"employees,omitempty"`
}

// NewSession applies the per-profile defaults.
func NewSession(id int64, name, email string, profile ProfileKind) Session {
	if strings.TrimSpace(name) == "" {
		name = profile.Title()
	}
	s := Session{ID: id, Name: strings.TrimSpace(name), Email: email, Profile: profile}
	switch profile {
	case ProfileStudent:
		s.Level, s.Points = 5, 1250
	case ProfileProfessional:
		s.Level, s.Points = 7, 2000
		s.Specialty = "Fullstack"
	case ProfileCompany:
		s.Level, s.Points = 1, 0
		s.Plan = "Corporate"
		s.Employees = "51-200"
	}
	return s
}
