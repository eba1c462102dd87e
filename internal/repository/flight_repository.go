package repository

import (
	"errors"

	"gorm.io/gorm"

	"airline_reservation/internal/models"
)

type FlightRepository interface {
	CreateBatch(flights []models.Flight) error
	FindAll() ([]models.Flight, error)
	FindByNumber(number string) (*models.Flight, error)
	FindByPassenger(userID uint) ([]models.Flight, error)
	DeleteByNumber(number string) error
}

type flightRepository struct {
	db *gorm.DB
}

func NewFlightRepository(db *gorm.DB) FlightRepository {
	return &flightRepository{db: db}
}

func (r *flightRepository) CreateBatch(flights []models.Flight) error {
	if len(flights) == 0 {
		return nil
	}
	return r.db.Create(&flights).Error
}

func (r *flightRepository) FindAll() ([]models.Flight, error) {
	var flights []models.Flight
	if err := r.db.Order("id ASC").Find(&flights).Error; err != nil {
		return nil, err
	}
	return flights, nil
}

// FindByNumber returns the first flight carrying the number. Numbers are
// not unique in the schema, so first match in id order wins.
func (r *flightRepository) FindByNumber(number string) (*models.Flight, error) {
	var flight models.Flight
	err := r.db.Where("flight_number = ?", number).Order("id ASC").First(&flight).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return &flight, nil
}

func (r *flightRepository) FindByPassenger(userID uint) ([]models.Flight, error) {
	var flights []models.Flight
	err := r.db.
		Where("id IN (?)", r.db.Model(&models.Booking{}).Select("flight_id").Where("user_id = ?", userID)).
		Order("id ASC").
		Find(&flights).Error
	if err != nil {
		return nil, err
	}
	return flights, nil
}

// DeleteByNumber removes every flight carrying the number along with the
// bookings that reference them, so no booking row is left dangling.
func (r *flightRepository) DeleteByNumber(number string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&models.Flight{}).Where("flight_number = ?", number).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Where("flight_id IN ?", ids).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&models.Flight{}).Error
	})
}
