package service

import "errors"

var (
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrAlreadyVerified     = errors.New("email is already verified and on the waitlist")
	ErrVerificationPending = errors.New("verification email already sent")
	ErrEmailDeliveryFailed = errors.New("failed to send verification email")
	ErrMissingToken        = errors.New("missing verification token")
	ErrTokenInvalid        = errors.New("invalid or expired token")
	ErrTokenExpired        = errors.New("verification link expired")
)
