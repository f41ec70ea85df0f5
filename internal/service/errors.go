package service

import "errors"

var (
	// ErrInvalidCredentials is returned when login credentials do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotStaff is returned when a non-admin profile attempts to log in.
	ErrNotStaff = errors.New("profile is not staff")

	// ErrAccountDisabled is returned when a disabled profile attempts to log in.
	ErrAccountDisabled = errors.New("account disabled")

	// ErrInvalidDriverID is returned when driver ID is empty.
	ErrInvalidDriverID = errors.New("invalid driver id")

	// ErrInvalidUserID is returned when user ID is empty.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidPaymentID is returned when payment ID is empty.
	ErrInvalidPaymentID = errors.New("invalid payment id")

	// ErrDriverNotSuspended is returned when reinstating a driver who is not suspended.
	ErrDriverNotSuspended = errors.New("driver not suspended")

	// ErrDriverAlreadySuspended is returned when suspending an already suspended driver.
	ErrDriverAlreadySuspended = errors.New("driver already suspended")

	// ErrPaymentLocked is returned when another apply is in flight for the payment.
	ErrPaymentLocked = errors.New("payment is locked by another operation")

	// ErrPaymentNotPending is returned when verifying a payment that is not pending.
	ErrPaymentNotPending = errors.New("payment is not pending")
)
