package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrBioTooLong          = errors.New("bio must be at most 250 characters")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrResetTokenInvalidOrExpired = errors.New("reset token is invalid or has expired")
	ErrEmailDeliveryFailed        = errors.New("there was an error sending the email, try again later")
)
