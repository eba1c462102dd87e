package handlers

import (
	"errors"

	logrus "github.com/sirupsen/logrus"

	"airline_reservation/internal/console"
	"airline_reservation/internal/menu"
	"airline_reservation/internal/repository"
	"airline_reservation/internal/validate"
)

// Passenger implements the passenger menu for the logged-in user.
type Passenger struct {
	users    repository.UserRepository
	flights  repository.FlightRepository
	bookings repository.BookingRepository
	term     *console.Console
	session  *menu.Session
}

func NewPassenger(users repository.UserRepository, flights repository.FlightRepository,
	bookings repository.BookingRepository, term *console.Console, session *menu.Session) *Passenger {
	return &Passenger{
		users:    users,
		flights:  flights,
		bookings: bookings,
		term:     term,
		session:  session,
	}
}

// BookFlight lists all flights, prompts for a flight number and ticket
// count, and books in a single transaction. Unknown flights and capacity
// misses leave everything untouched.
func (h *Passenger) BookFlight() error {
	h.term.Banner("Book A Flight")

	flights, err := h.flights.FindAll()
	if err != nil {
		return err
	}
	h.term.FlightTable(flights)

	raw, err := h.term.ReadLine("Enter the flight number: ")
	if err != nil {
		return err
	}
	number, err := validate.NonEmpty(raw, "Flight Number")
	if err != nil {
		return err
	}

	raw, err = h.term.ReadLine("Enter the number of tickets required: ")
	if err != nil {
		return err
	}
	tickets, err := validate.PositiveInt(raw, "Number of tickets")
	if err != nil {
		return err
	}

	booking, err := h.bookings.Book(h.session.UserID, number, tickets)
	switch {
	case errors.Is(err, repository.ErrFlightNotFound):
		h.term.Println("Flight not found.")
		return nil
	case errors.Is(err, repository.ErrNotEnoughSeats):
		h.term.Println("Not enough seats available.")
		return nil
	case err != nil:
		return err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":   h.session.UserID,
		"flight_id": booking.FlightID,
		"tickets":   booking.Tickets,
	}).Info("flight booked")
	h.term.Printf("Successfully booked %d seat(s) on flight %s.\n", tickets, number)
	return nil
}

// UpdatePersonalData replaces name/age/email/phone for the current
// session's user. The password stays as it is.
func (h *Passenger) UpdatePersonalData() error {
	h.term.Banner("Update Personal Data")

	raw, err := h.term.ReadLine("Enter new passenger name: ")
	if err != nil {
		return err
	}
	name, err := validate.NonEmpty(raw, "Name")
	if err != nil {
		return err
	}

	raw, err = h.term.ReadLine("Enter the passenger's age: ")
	if err != nil {
		return err
	}
	age, err := validate.PositiveInt(raw, "Age")
	if err != nil {
		return err
	}

	raw, err = h.term.ReadLine("Enter new passenger email: ")
	if err != nil {
		return err
	}
	email, err := validate.Email(raw)
	if err != nil {
		return err
	}

	raw, err = h.term.ReadLine("Enter the passenger phone number: ")
	if err != nil {
		return err
	}
	phone, err := validate.Phone(raw)
	if err != nil {
		return err
	}

	if err := h.users.UpdatePersonal(h.session.UserID, name, age, email, phone); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			h.term.Printf("Error updating personal data: %v\n", err)
			return nil
		}
		return err
	}
	h.session.Name = name
	h.session.Email = email
	h.term.Println("Personal data updated successfully.")
	return nil
}

// DeleteAccount removes the current user after explicit confirmation and
// resets the session to anonymous. The user's bookings are cancelled in
// the same transaction, with seats returned to their flights.
func (h *Passenger) DeleteAccount() error {
	h.term.Banner("Delete Account")

	if !h.term.Confirm("Are you sure you want to delete your account? (yes/no): ") {
		h.term.Println("Account deletion cancelled.")
		return nil
	}

	if err := h.users.DeleteWithBookings(h.session.UserID); err != nil {
		return err
	}
	logrus.WithField("user_id", h.session.UserID).Info("account deleted")
	h.session.Reset()
	h.term.Println("Account deleted successfully.")
	return nil
}

func (h *Passenger) DisplayFlightSchedule() error {
	h.term.Banner("Flight Schedule")

	flights, err := h.flights.FindAll()
	if err != nil {
		return err
	}
	h.term.FlightTable(flights)
	return nil
}

// CancelBooking shows the user's bookings, prompts for a flight number
// and reverses the matching booking in one transaction. Bookings of other
// users on the same flight stay invisible.
func (h *Passenger) CancelBooking() error {
	h.term.Banner("Cancel Booking")

	details, err := h.bookings.DetailsByUser(h.session.UserID)
	if err != nil {
		return err
	}
	h.term.BookingTable(details)

	raw, err := h.term.ReadLine("Enter the flight number to cancel booking: ")
	if err != nil {
		return err
	}
	number, err := validate.NonEmpty(raw, "Flight Number")
	if err != nil {
		return err
	}

	err = h.bookings.Cancel(h.session.UserID, number)
	switch {
	case errors.Is(err, repository.ErrFlightNotFound):
		h.term.Println("Flight not found.")
		return nil
	case errors.Is(err, repository.ErrBookingNotFound):
		h.term.Println("Booking not found.")
		return nil
	case err != nil:
		return err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":       h.session.UserID,
		"flight_number": number,
	}).Info("booking cancelled")
	h.term.Println("Booking canceled successfully.")
	return nil
}

func (h *Passenger) ViewMyBookings() error {
	h.term.Banner("My Bookings")

	details, err := h.bookings.DetailsByUser(h.session.UserID)
	if err != nil {
		return err
	}
	h.term.BookingTable(details)
	return nil
}

func (h *Passenger) Logout() error {
	h.session.Reset()
	return nil
}
