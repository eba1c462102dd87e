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

// Admin implements the administrator menu. The session loop guarantees an
// admin is logged in before any of these run.
type Admin struct {
	users    repository.UserRepository
	flights  repository.FlightRepository
	bookings repository.BookingRepository
	term     *console.Console
	session  *menu.Session
	auth     *Auth
}

func NewAdmin(users repository.UserRepository, flights repository.FlightRepository,
	bookings repository.BookingRepository, term *console.Console, session *menu.Session) *Admin {
	return &Admin{
		users:    users,
		flights:  flights,
		bookings: bookings,
		term:     term,
		session:  session,
		auth:     NewAuth(users, term, session),
	}
}

// AddNewPassenger inserts a validated user with the passenger role flag,
// reusing the registration form.
func (h *Admin) AddNewPassenger() error {
	h.term.Banner("Add New Passenger")

	input, err := h.auth.promptUserInput("passenger")
	if err != nil {
		return err
	}

	user := models.User{
		Name:        input.Name,
		Age:         input.Age,
		Email:       input.Email,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		IsAdmin:     false,
	}
	if err := h.users.Create(&user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			h.term.Printf("Error registering passenger: %v\n", err)
			return nil
		}
		return err
	}
	h.term.Println("Passenger registered successfully")
	return nil
}

func (h *Admin) SearchForPassenger() error {
	h.term.Banner("Search For Passenger")

	user, err := h.lookupByEmail()
	if err != nil || user == nil {
		return err
	}
	h.term.PassengerTable([]models.User{*user})
	return nil
}

// UpdatePassengerData displays the row, prompts a full replacement and
// writes it keyed by the original email. If that email vanished in the
// meantime the update silently touches zero rows.
func (h *Admin) UpdatePassengerData() error {
	h.term.Banner("Update Passenger Data")

	user, err := h.lookupByEmail()
	if err != nil || user == nil {
		return err
	}
	h.term.PassengerTable([]models.User{*user})

	input, err := h.auth.promptUserInput("new passenger")
	if err != nil {
		return err
	}

	replacement := models.User{
		Name:        input.Name,
		Age:         input.Age,
		Email:       input.Email,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
	}
	if err := h.users.ReplaceByEmail(user.Email, replacement); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			h.term.Printf("Error updating passenger data: %v\n", err)
			return nil
		}
		return err
	}
	h.term.Println("Passenger data updated successfully")
	return nil
}

func (h *Admin) DeletePassenger() error {
	h.term.Banner("Delete Passenger")

	user, err := h.lookupByEmail()
	if err != nil || user == nil {
		return err
	}
	h.term.PassengerTable([]models.User{*user})

	if !h.term.Confirm("Are you sure you want to delete this passenger? (yes/no): ") {
		h.term.Println("Passenger deletion cancelled")
		return nil
	}

	if err := h.users.DeleteWithBookings(user.ID); err != nil {
		return err
	}
	logrus.WithField("user_id", user.ID).Info("passenger deleted by admin")
	h.term.Println("Passenger deleted successfully")
	return nil
}

func (h *Admin) DisplayAllPassengers() error {
	h.term.Banner("All Passengers")

	passengers, err := h.users.FindPassengers()
	if err != nil {
		return err
	}
	h.term.PassengerTable(passengers)
	return nil
}

func (h *Admin) DisplayFlightsByPassenger() error {
	h.term.Banner("Flights Registered By Passenger")

	user, err := h.lookupByEmail()
	if err != nil || user == nil {
		return err
	}

	flights, err := h.flights.FindByPassenger(user.ID)
	if err != nil {
		return err
	}
	h.term.Printf("Flights registered by %s:\n", user.Name)
	h.term.FlightTable(flights)
	return nil
}

func (h *Admin) DisplayPassengersForFlight() error {
	h.term.Banner("Registered Passengers For Flight")

	raw, err := h.term.ReadLine("Enter the flight number: ")
	if err != nil {
		return err
	}
	number, err := validate.NonEmpty(raw, "Flight Number")
	if err != nil {
		return err
	}

	rows, err := h.bookings.PassengersByFlightNumber(number)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		h.term.Printf("No registered passengers found for Flight %s\n", number)
		return nil
	}
	h.term.Printf("Registered passengers for Flight %s:\n", number)
	h.term.PassengerBookingTable(rows)
	return nil
}

func (h *Admin) DeleteFlight() error {
	h.term.Banner("Delete Flight")

	raw, err := h.term.ReadLine("Enter the flight number: ")
	if err != nil {
		return err
	}
	number, err := validate.NonEmpty(raw, "Flight Number")
	if err != nil {
		return err
	}

	if err := h.flights.DeleteByNumber(number); err != nil {
		return err
	}
	logrus.WithField("flight_number", number).Info("flight deleted")
	h.term.Printf("Flight %s deleted successfully\n", number)
	return nil
}

func (h *Admin) Logout() error {
	h.session.Reset()
	return nil
}

// lookupByEmail prompts for an email and fetches the matching user.
// A missing row is reported here and returned as (nil, nil).
func (h *Admin) lookupByEmail() (*models.User, error) {
	raw, err := h.term.ReadLine("Enter the passenger email: ")
	if err != nil {
		return nil, err
	}
	email, err := validate.Email(raw)
	if err != nil {
		return nil, err
	}

	user, err := h.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.term.Println("No passenger found with that email")
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
