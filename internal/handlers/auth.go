package handlers

import (
	"errors"

	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"airline_reservation/internal/console"
	"airline_reservation/internal/menu"
	"airline_reservation/internal/models"
	"airline_reservation/internal/repository"
	"airline_reservation/internal/validate"
)

// Auth handles login and registration for both roles. A failed login
// never establishes a session and never reveals which field was wrong.
type Auth struct {
	users   repository.UserRepository
	term    *console.Console
	session *menu.Session
}

func NewAuth(users repository.UserRepository, term *console.Console, session *menu.Session) *Auth {
	return &Auth{users: users, term: term, session: session}
}

func (a *Auth) Login(asAdmin bool) error {
	if asAdmin {
		a.term.Banner("Admin Login")
	} else {
		a.term.Banner("Passenger Login")
	}

	rawEmail, err := a.term.ReadLine("Enter the email: ")
	if err != nil {
		return err
	}
	rawPassword, err := a.term.ReadLine("Enter the password: ")
	if err != nil {
		return err
	}

	// Fail closed on malformed credentials, same message as a mismatch.
	email, emailErr := validate.Email(rawEmail)
	password, passErr := validate.Password(rawPassword)
	if emailErr != nil || passErr != nil {
		a.term.Println("Invalid credentials")
		return nil
	}

	var user *models.User
	if asAdmin {
		user, err = a.users.FindAdminByEmail(email)
	} else {
		user, err = a.users.FindByEmail(email)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			a.term.Println("Invalid credentials")
			return nil
		}
		return err
	}

	if !user.Authenticate(password) {
		a.term.Println("Invalid credentials")
		return nil
	}

	a.session.Establish(user.ID, user.Name, user.Email, user.Role())
	logrus.WithFields(logrus.Fields{"user_id": user.ID, "admin": user.IsAdmin}).Info("login")
	a.term.Printf("%s logged in successfully\n", user.Email)
	return nil
}

func (a *Auth) Register(asAdmin bool) error {
	role := "passenger"
	if asAdmin {
		role = "admin"
		a.term.Banner("Admin Registration")
	} else {
		a.term.Banner("Passenger Registration")
	}

	input, err := a.promptUserInput(role)
	if err != nil {
		return err
	}

	user := models.User{
		Name:        input.Name,
		Age:         input.Age,
		Email:       input.Email,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		IsAdmin:     asAdmin,
	}
	if err := a.users.Create(&user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			a.term.Printf("Error registering %s: %v\n", role, err)
			return nil
		}
		return err
	}

	logrus.WithField("email", user.Email).Info("registered")
	a.term.Printf("%s %s registered successfully\n", role, user.Email)
	return nil
}

// promptUserInput walks the shared registration form. The first
// validation failure aborts the whole action.
func (a *Auth) promptUserInput(role string) (validate.UserInput, error) {
	var input validate.UserInput

	raw, err := a.term.ReadLine("Enter the " + role + " name: ")
	if err != nil {
		return input, err
	}
	if input.Name, err = validate.NonEmpty(raw, "Name"); err != nil {
		return input, err
	}

	raw, err = a.term.ReadLine("Enter the " + role + "'s age: ")
	if err != nil {
		return input, err
	}
	if input.Age, err = validate.PositiveInt(raw, "Age"); err != nil {
		return input, err
	}

	raw, err = a.term.ReadLine("Enter the " + role + " email: ")
	if err != nil {
		return input, err
	}
	if input.Email, err = validate.Email(raw); err != nil {
		return input, err
	}

	raw, err = a.term.ReadLine("Enter the " + role + " password: ")
	if err != nil {
		return input, err
	}
	if input.Password, err = validate.Password(raw); err != nil {
		return input, err
	}

	raw, err = a.term.ReadLine("Enter the " + role + " phone number: ")
	if err != nil {
		return input, err
	}
	if input.PhoneNumber, err = validate.Phone(raw); err != nil {
		return input, err
	}

	return input, validate.Check(input)
}
