package repository

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"airline_reservation/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindAdminByEmail(email string) (*models.User, error)
	FindPassengers() ([]models.User, error)
	ReplaceByEmail(originalEmail string, user models.User) error
	UpdatePersonal(id uint, name string, age int, email, phone string) error
	DeleteWithBookings(id uint) error
	Count() (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// isUniqueViolation covers both backends: GORM's translated error for
// SQLite and the raw 23505 code when running on Postgres.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return false
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAdminByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ? AND is_admin = ?", email, true).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindPassengers() ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("is_admin = ?", false).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ReplaceByEmail overwrites the full record keyed by the email the row had
// when it was displayed. If that email is gone the update affects zero
// rows, which is not treated as an error here.
func (r *userRepository) ReplaceByEmail(originalEmail string, user models.User) error {
	err := r.db.Model(&models.User{}).
		Where("email = ?", originalEmail).
		Updates(map[string]interface{}{
			"name":         user.Name,
			"age":          user.Age,
			"email":        user.Email,
			"password":     user.Password,
			"phone_number": user.PhoneNumber,
		}).Error
	if err != nil && isUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

// UpdatePersonal rewrites the self-service fields, leaving the password
// untouched.
func (r *userRepository) UpdatePersonal(id uint, name string, age int, email, phone string) error {
	err := r.db.Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":         name,
			"age":          age,
			"email":        email,
			"phone_number": phone,
		}).Error
	if err != nil && isUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

// DeleteWithBookings removes a user and cancels every booking they hold,
// returning the booked tickets to each flight's seat pool. One unit of
// work: either everything applies or nothing does.
func (r *userRepository) DeleteWithBookings(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var bookings []models.Booking
		if err := tx.Where("user_id = ?", id).Find(&bookings).Error; err != nil {
			return err
		}
		for _, b := range bookings {
			err := tx.Model(&models.Flight{}).
				Where("id = ?", b.FlightID).
				Update("available_seats", gorm.Expr("available_seats + ?", b.Tickets)).Error
			if err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}

func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}
