package utils

import "time"

// Application constants
const (
	AppName = "BooksCourier"

	// Tracking identifiers look like BC-20240115-A1B2C3D4
	TrackingIDPrefix = "BC"

	DefaultPaginationLimit = 10
	MaxPaginationLimit     = 100

	// How long a payment confirmation holds its in-flight guard
	ConfirmGuardTTL = 30 * time.Second

	// Context keys set by the auth middleware
	ContextEmail = "email"
	ContextUID   = "uid"
	ContextUser  = "user"

	// Cookie session key holding the last checkout session created by the client
	SessionCheckoutKey = "checkout_session_id"
)

// Error messages
const (
	ErrUnauthorized        = "Unauthorized access"
	ErrForbidden           = "Forbidden access"
	ErrInvalidID           = "Invalid ID"
	ErrInvalidRequest      = "Invalid request"
	ErrNoUpdatableFields   = "No updatable fields in request"
	ErrPaymentNotCompleted = "Payment not completed"
	ErrConfirmInProgress   = "Payment confirmation already in progress"
	ErrInternalServer      = "Internal server error"
)
