package handlers

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"airline_reservation/internal/console"
	"airline_reservation/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Flight{}, &models.Booking{}))
	return db
}

// scriptedConsole feeds the given lines as user input and captures output.
func scriptedConsole(lines ...string) (*console.Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	return console.New(in, out), out
}

func seedUser(t *testing.T, db *gorm.DB, email string, admin bool) models.User {
	t.Helper()
	user := models.User{
		Name:        "Amina",
		Age:         29,
		Email:       email,
		Password:    "pass1234",
		PhoneNumber: "0300-1234567",
		IsAdmin:     admin,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedFlight(t *testing.T, db *gorm.DB, number string, seats int) models.Flight {
	t.Helper()
	departure := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	flight := models.Flight{
		FlightSchedule: "Karachi -> Bangkok",
		FlightNumber:   number,
		AvailableSeats: seats,
		FromLocation:   "Karachi, 24.871940, 66.988060",
		ToLocation:     "Bangkok, 13.921430, 100.595337",
		DepartureTime:  departure,
		ArrivalTime:    departure.Add(5 * time.Hour),
		FlightTime:     "5h0m0s",
		Gate:           "G7",
		Distance:       "3764 km",
		Status:         "As Per Schedule",
	}
	require.NoError(t, db.Create(&flight).Error)
	return flight
}

func userCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	return count
}
