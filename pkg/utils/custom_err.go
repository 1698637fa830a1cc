package utils

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")

	ErrAccountNotFound     = errors.New("account not found")
	ErrTourNotFound        = errors.New("tour not found")
	ErrHotelNotFound       = errors.New("hotel not found")
	ErrBookingNotFound     = errors.New("not found")
	ErrPaymentPlanNotFound = errors.New("payment plan not found")
	ErrImageNotFound       = errors.New("image not found")
	ErrWishlistNotFound    = errors.New("wishlist item not found")
	ErrPreferencesNotFound = errors.New("preferences not found")

	ErrValidation              = errors.New("validation error")
	ErrCapacityExceeded        = errors.New("exceeds maximum group size")
	ErrInvalidStatus           = errors.New("invalid booking status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidBookingType      = errors.New("invalid booking type")
	ErrPlanNotActive           = errors.New("payment plan is not active")
	ErrAmbiguousTarget         = errors.New("exactly one of tourId or hotelId must be provided")
	ErrWishlistDuplicate       = errors.New("item already in wishlist")
	ErrReviewDuplicate         = errors.New("you have already reviewed this tour")
	ErrReviewNotAllowed        = errors.New("you can only review tours you have booked")
	ErrInvalidImage            = errors.New("invalid image")
	ErrFileTooLarge            = errors.New("file exceeds maximum size")
	ErrInvalidRole             = errors.New("invalid role")

	ErrEmailAlreadyExists = errors.New("email already exists")

	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
)
