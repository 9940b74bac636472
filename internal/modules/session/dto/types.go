package dto

type LoginInput struct {
	Profile  string
	Name     string
	Email    string
	Password string
}

type RegisterInput struct {
	Profile  string
	Name     string
	Email    string
	Password string
	Confirm  string
}

type RegisterOutput struct {
	Profile  string
	NextStep string
}

type SessionOutput struct {
	ID        int64
	Name      string
	Email     string
	Profile   string
	Level     int
	Points    int
	Specialty string
	Plan      string
	Employees string
}
