package models

import "time"

// Booking joins a user to a flight. Creating or deleting one must always
// happen in the same transaction as the matching available_seats change.
type Booking struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null" json:"user_id"`
	FlightID    uint      `gorm:"not null" json:"flight_id"`
	Tickets     int       `gorm:"not null" json:"tickets"`
	BookingDate time.Time `gorm:"not null" json:"booking_date"`

	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Flight *Flight `gorm:"foreignKey:FlightID" json:"flight,omitempty"`
}

// BookingDetail is the read model for a passenger's booking list,
// one row per booking joined with its flight.
type BookingDetail struct {
	BookingID     uint      `gorm:"column:booking_id"`
	BookingDate   time.Time `gorm:"column:booking_date"`
	FlightNumber  string    `gorm:"column:flight_number"`
	Tickets       int       `gorm:"column:tickets"`
	FromLocation  string    `gorm:"column:from_location"`
	ToLocation    string    `gorm:"column:to_location"`
	DepartureTime time.Time `gorm:"column:departure_time"`
	ArrivalTime   time.Time `gorm:"column:arrival_time"`
	FlightTime    string    `gorm:"column:flight_time"`
	Gate          string    `gorm:"column:gate"`
	Status        string    `gorm:"column:status"`
}

// PassengerBooking is the read model for the admin listing of everyone
// booked on a flight. Password is included, the listing shows it as-is.
type PassengerBooking struct {
	UserID      uint   `gorm:"column:user_id"`
	Name        string `gorm:"column:name"`
	Age         int    `gorm:"column:age"`
	Email       string `gorm:"column:email"`
	Password    string `gorm:"column:password"`
	PhoneNumber string `gorm:"column:phone_number"`
	Tickets     int    `gorm:"column:tickets"`
}
