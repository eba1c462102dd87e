package models

import "time"

// Flight is one scheduled flight. FlightNumber carries no uniqueness
// constraint; lookups take the first matching row in id order.
type Flight struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FlightSchedule string    `gorm:"not null" json:"flight_schedule"`
	FlightNumber   string    `gorm:"not null" json:"flight_number"`
	AvailableSeats int       `gorm:"not null" json:"available_seats"`
	FromLocation   string    `gorm:"not null" json:"from_location"`
	ToLocation     string    `gorm:"not null" json:"to_location"`
	DepartureTime  time.Time `gorm:"not null" json:"departure_time"`
	ArrivalTime    time.Time `gorm:"not null" json:"arrival_time"`
	FlightTime     string    `gorm:"not null" json:"flight_time"`
	Gate           string    `gorm:"not null" json:"gate"`
	Distance       string    `gorm:"not null" json:"distance"`
	Status         string    `gorm:"not null" json:"status"`
}
