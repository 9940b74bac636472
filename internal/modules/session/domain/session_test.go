package domain

import "testing"

func TestValidEmail(t *testing.T) {
	t.Parallel()
	cases := map[string]bool{
		"ana@example.com":  true,
		"a@b.co":           true,
		"ana@example":      false,
		"ana.example.com":  false,
		"ana @example.com": false,
		"":                 false,
		"@example.com":     false,
	}
	for email, want := range cases {
		if got := ValidEmail(email); got != want {
			t.Fatalf("ValidEmail(%q) = %v, want %v", email, got, want)
		}
	}
}

func TestNewSessionProfileDefaults(t *testing.T) {
	t.Parallel()
	student := NewSession(1, "", "s@x.io", ProfileStudent)
	if student.Name != "Student" || student.Level != 5 || student.Points != 1250 {
		t.Fatalf("unexpected student session %+v", student)
	}
	kind, err := ParseProfile(" Professional ")
	if err != nil {
		t.Fatalf("parse profile: %v", err)
	}
	pro := NewSession(2, "Rui", "p@x.io", kind)
	if pro.Level != 7 || pro.Points != 2000 || pro.Specialty != "Fullstack" {
		t.Fatalf("unexpected professional session %+v", pro)
	}
	company := NewSession(3, "Acme", "c@x.io", ProfileCompany)
	if company.Plan != "Corporate" || company.Employees != "51-200" || company.Level != 1 {
		t.Fatalf("unexpected company session %+v", company)
	}
}

func TestParseProfileRejectsUnknown(t *testing.T) {
	t.Parallel()
	if _, err := ParseProfile("admin"); err == nil {
		t.Fatalf("expected error for unknown profile")
	}
}
