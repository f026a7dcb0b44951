package types

import "fmt"

// User is a plain value object built by NewUser.
type User struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// NewUser builds a User from its two fields.
func NewUser(name, role string) User {
	return User{Name: name, Role: role}
}

// Greet returns the user's self-introduction.
func (u User) Greet() string {
	return fmt.Sprintf("Hola, soy %s y soy %s", u.Name, u.Role)
}
