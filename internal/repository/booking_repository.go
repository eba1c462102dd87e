package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"airline_reservation/internal/models"
)

type BookingRepository interface {
	Book(userID uint, flightNumber string, tickets int) (*models.Booking, error)
	Cancel(userID uint, flightNumber string) error
	DetailsByUser(userID uint) ([]models.BookingDetail, error)
	PassengersByFlightNumber(number string) ([]models.PassengerBooking, error)
	Count() (int64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Book reserves tickets on the flight carrying flightNumber. The seat
// decrement and the booking insert commit together or not at all.
func (r *bookingRepository) Book(userID uint, flightNumber string, tickets int) (*models.Booking, error) {
	var booking models.Booking

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var flight models.Flight
		err := tx.Where("flight_number = ?", flightNumber).Order("id ASC").First(&flight).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFlightNotFound
			}
			return err
		}

		if tickets > flight.AvailableSeats {
			return ErrNotEnoughSeats
		}

		err = tx.Model(&models.Flight{}).
			Where("id = ?", flight.ID).
			Update("available_seats", gorm.Expr("available_seats - ?", tickets)).Error
		if err != nil {
			return err
		}

		booking = models.Booking{
			UserID:      userID,
			FlightID:    flight.ID,
			Tickets:     tickets,
			BookingDate: time.Now(),
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Cancel drops the caller's booking on the flight and returns its tickets
// to the seat pool. Bookings are session-scoped: another user's booking on
// the same flight is not found.
func (r *bookingRepository) Cancel(userID uint, flightNumber string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var flight models.Flight
		err := tx.Where("flight_number = ?", flightNumber).Order("id ASC").First(&flight).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFlightNotFound
			}
			return err
		}

		var booking models.Booking
		err = tx.Where("flight_id = ? AND user_id = ?", flight.ID, userID).First(&booking).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		err = tx.Model(&models.Flight{}).
			Where("id = ?", flight.ID).
			Update("available_seats", gorm.Expr("available_seats + ?", booking.Tickets)).Error
		if err != nil {
			return err
		}
		return tx.Delete(&models.Booking{}, booking.ID).Error
	})
}

func (r *bookingRepository) DetailsByUser(userID uint) ([]models.BookingDetail, error) {
	var details []models.BookingDetail
	err := r.db.Table("bookings").
		Select(`bookings.id AS booking_id, bookings.booking_date, flights.flight_number,
			bookings.tickets, flights.from_location, flights.to_location,
			flights.departure_time, flights.arrival_time, flights.flight_time,
			flights.gate, flights.status`).
		Joins("JOIN flights ON flights.id = bookings.flight_id").
		Where("bookings.user_id = ?", userID).
		Order("bookings.id ASC").
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *bookingRepository) PassengersByFlightNumber(number string) ([]models.PassengerBooking, error) {
	var rows []models.PassengerBooking
	err := r.db.Table("flights").
		Select(`users.id AS user_id, users.name, users.age, users.email,
			users.password, users.phone_number, bookings.tickets`).
		Joins("INNER JOIN bookings ON bookings.flight_id = flights.id").
		Joins("INNER JOIN users ON users.id = bookings.user_id").
		Where("flights.flight_number = ?", number).
		Order("users.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *bookingRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).Count(&count).Error
	return count, err
}
