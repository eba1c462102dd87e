package models

// Role identifies which menu a logged-in user is routed to.
type Role int

const (
	RoleAnonymous Role = iota
	RolePassenger
	RoleAdmin
)

// User is a single identity row. Admins and passengers share the users
// table and are told apart by the IsAdmin flag.
type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Age         int    `gorm:"not null" json:"age"`
	Email       string `gorm:"unique;not null" json:"email"`
	Password    string `gorm:"not null" json:"password"`
	PhoneNumber string `gorm:"not null" json:"phone_number"`
	IsAdmin     bool   `gorm:"not null" json:"is_admin"`
}

// Authenticate compares the candidate password against the stored one.
// Passwords are kept in plain text, so this is a straight string compare.
func (u *User) Authenticate(candidate string) bool {
	return u.Password == candidate
}

func (u *User) Role() Role {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RolePassenger
}
