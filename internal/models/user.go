package models

// User represents a registered user. The password field holds a bcrypt hash
// and travels with the record into storage; handlers blank it before
// returning a user in a response.
type User struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required,min=6"`
}

// SessionUser is the projection of a User kept as the current session.
type SessionUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session returns the session projection of the user.
func (u User) Session() SessionUser {
	return SessionUser{Name: u.Name, Email: u.Email}
}
