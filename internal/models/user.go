package models

// UserRole gates access to administrative operations.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleAgent UserRole = "AGENT"
)

type User struct {
	ID           string   `json:"id"`
	Matricula    string   `json:"matricula"`
	PasswordHash string   `json:"passwordHash"`
	FullName     string   `json:"fullName"`
	Role         UserRole `json:"role"`
	IsApproved   bool     `json:"isApproved"`
}

// PublicUser is a User without credentials.
type PublicUser struct {
	ID         string   `json:"id"`
	Matricula  string   `json:"matricula"`
	FullName   string   `json:"fullName"`
	Role       UserRole `json:"role"`
	IsApproved bool     `json:"isApproved"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		Matricula:  u.Matricula,
		FullName:   u.FullName,
		Role:       u.Role,
		IsApproved: u.IsApproved,
	}
}
