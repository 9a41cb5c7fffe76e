package utils

import (
	"errors"

	"github.com/Govind-619/BooksCourier/models"
	"gorm.io/gorm"
)

// GetUserByEmail retrieves a user by email
func GetUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UserRole returns the role of the user with email, or RoleUser when there is no such user
func UserRole(db *gorm.DB, email string) (string, error) {
	user, err := GetUserByEmail(db, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.RoleUser, nil
	}
	if err != nil {
		return "", err
	}
	if user.Role == "" {
		return models.RoleUser, nil
	}
	return user.Role, nil
}

// SetUserRole changes the role of the user with email. A missing user is not an error.
func SetUserRole(db *gorm.DB, email, role string) (int64, error) {
	result := db.Model(&models.User{}).Where("email = ?", email).Update("role", role)
	return result.RowsAffected, result.Error
}

// GetBookByID retrieves a book by ID
func GetBookByID(db *gorm.DB, id uint) (*models.Book, error) {
	var book models.Book
	if err := db.First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// UpdateByID applies updates to the row of model with the given ID and
// returns a NotFoundError when no row matched
func UpdateByID(db *gorm.DB, model interface{}, id uint, updates map[string]interface{}) error {
	result := db.Model(model).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return NotFoundError("Record not found", nil)
	}
	return nil
}

// DeleteByID deletes the row of model with the given ID
func DeleteByID(db *gorm.DB, model interface{}, id uint) error {
	result := db.Delete(model, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return NotFoundError("Record not found", nil)
	}
	return nil
}

// FindByID loads the row with the given ID into dest, mapping a missing row to NotFoundError
func FindByID(db *gorm.DB, dest interface{}, id uint) error {
	err := db.First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError("Record not found", nil)
	}
	return err
}
