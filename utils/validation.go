package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Govind-619/BooksCourier/models"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

func (e *FieldValidationErrors) add(field, message string) {
	*e = append(*e, FieldValidationError{Field: field, Message: message})
}

// OrNil returns nil for an empty list so callers can return it as an error
func (e FieldValidationErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail checks the email format
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateUser checks a new user document
func ValidateUser(u *models.User) error {
	var errs FieldValidationErrors
	if !IsValidEmail(u.Email) {
		errs.add("email", "Invalid email format")
	}
	return errs.OrNil()
}

// ValidateBook checks a new book listing
func ValidateBook(b *models.Book) error {
	var errs FieldValidationErrors
	if strings.TrimSpace(b.Title) == "" {
		errs.add("title", "Title is required")
	}
	if b.Price < 0 {
		errs.add("price", "Price cannot be negative")
	}
	if b.Quantity < 0 {
		errs.add("quantity", "Quantity cannot be negative")
	}
	if b.SellerEmail != "" && !IsValidEmail(b.SellerEmail) {
		errs.add("seller_email", "Invalid email format")
	}
	return errs.OrNil()
}

// ValidateOrder checks a new order
func ValidateOrder(o *models.Order) error {
	var errs FieldValidationErrors
	if !IsValidEmail(o.CustomerEmail) {
		errs.add("customer_email", "Invalid email format")
	}
	if o.BookID == 0 {
		errs.add("book_id", "Book is required")
	}
	if o.Quantity < 0 {
		errs.add("quantity", "Quantity cannot be negative")
	}
	if o.Price < 0 {
		errs.add("price", "Price cannot be negative")
	}
	return errs.OrNil()
}

// ValidateSeller checks a seller application
func ValidateSeller(s *models.Seller) error {
	var errs FieldValidationErrors
	if !IsValidEmail(s.Email) {
		errs.add("email", "Invalid email format")
	}
	if strings.TrimSpace(s.Name) == "" {
		errs.add("name", "Name is required")
	}
	return errs.OrNil()
}
