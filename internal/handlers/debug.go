package handlers

import (
	"gorm.io/gorm"

	"airline_reservation/internal/console"
	"airline_reservation/internal/models"
)

// Debug exposes the raw-table utilities on the main menu. They exist for
// demos and manual poking, not for regular operation.
type Debug struct {
	db   *gorm.DB
	term *console.Console
}

func NewDebug(db *gorm.DB, term *console.Console) *Debug {
	return &Debug{db: db, term: term}
}

func (h *Debug) DumpUsers() error {
	var users []models.User
	if err := h.db.Order("id ASC").Find(&users).Error; err != nil {
		return err
	}
	h.term.Printf("%+v\n", users)
	return nil
}

func (h *Debug) DumpFlights() error {
	var flights []models.Flight
	if err := h.db.Order("id ASC").Find(&flights).Error; err != nil {
		return err
	}
	h.term.Printf("%+v\n", flights)
	return nil
}

func (h *Debug) DumpBookings() error {
	var bookings []models.Booking
	if err := h.db.Order("id ASC").Find(&bookings).Error; err != nil {
		return err
	}
	h.term.Printf("%+v\n", bookings)
	return nil
}

// ClearTables wipes all three tables after confirmation. On SQLite the
// autoincrement counters are reset as well so ids start over from 1.
func (h *Debug) ClearTables() error {
	if !h.term.Confirm("Are you sure you want to clear all tables? (yes/no): ") {
		h.term.Println("Table clearing cancelled.")
		return nil
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"bookings", "flights", "users"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}
		if tx.Dialector.Name() == "sqlite" {
			for _, table := range []string{"users", "flights", "bookings"} {
				if err := tx.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	h.term.Println("Tables cleared successfully and auto-increment IDs reset.")
	return nil
}
