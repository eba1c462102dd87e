package menu

import "airline_reservation/internal/models"

// Role aliases the model role so wiring code deals with one type.
type Role = models.Role

const (
	RoleAnonymous = models.RoleAnonymous
	RolePassenger = models.RolePassenger
	RoleAdmin     = models.RoleAdmin
)

// Session is the process-wide record of who is currently logged in.
// A zero Session is anonymous.
type Session struct {
	UserID uint
	Name   string
	Email  string
	Role   Role
}

func (s *Session) Anonymous() bool {
	return s.UserID == 0
}

// Establish records a successful login.
func (s *Session) Establish(id uint, name, email string, role Role) {
	s.UserID = id
	s.Name = name
	s.Email = email
	s.Role = role
}

// Reset drops the identity, forcing the loop back to the main menu.
func (s *Session) Reset() {
	*s = Session{}
}
