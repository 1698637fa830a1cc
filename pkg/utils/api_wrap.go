package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string       `json:"status"`
	Code    int          `json:"code"`
	Message string       `json:"message,omitempty"`
	TraceID string       `json:"trace_id,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// RespondBindingError reports a request body that failed binding, with one
// entry per offending field when the validator produced them.
func RespondBindingError(c *gin.Context, err error, message string) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: message,
		TraceID: traceID(c),
		Errors:  FieldErrors(err),
	})
}

// HandleServiceError maps service sentinels onto HTTP status codes.
func HandleServiceError(c *gin.Context, err error) {
	code, message := StatusFor(err)
	if code == http.StatusInternalServerError {
		zap.L().Error("internal error",
			zap.String("trace_id", traceID(c)),
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}
	RespondError(c, code, message)
}

func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"

	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, "Forbidden: insufficient permissions"
	case errors.Is(err, ErrReviewNotAllowed):
		return http.StatusForbidden, "You can only review tours you have booked"

	case errors.Is(err, ErrBookingNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, ErrTourNotFound):
		return http.StatusNotFound, "Tour not found"
	case errors.Is(err, ErrHotelNotFound):
		return http.StatusNotFound, "Hotel not found"
	case errors.Is(err, ErrPaymentPlanNotFound):
		return http.StatusNotFound, "Payment plan not found"
	case errors.Is(err, ErrImageNotFound):
		return http.StatusNotFound, "Image not found"
	case errors.Is(err, ErrWishlistNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, ErrPreferencesNotFound):
		return http.StatusNotFound, "Preferences not found"
	case errors.Is(err, ErrAccountNotFound):
		return http.StatusNotFound, "User not found"

	case errors.Is(err, ErrCapacityExceeded):
		return http.StatusBadRequest, "Exceeds maximum group size"
	case errors.Is(err, ErrInvalidStatus):
		return http.StatusBadRequest, "Invalid booking status"
	case errors.Is(err, ErrInvalidStatusTransition):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrInvalidBookingType):
		return http.StatusBadRequest, "Invalid booking type"
	case errors.Is(err, ErrPlanNotActive):
		return http.StatusBadRequest, "Payment plan is not active"
	case errors.Is(err, ErrAmbiguousTarget):
		return http.StatusBadRequest, "Either tourId or hotelId must be provided, not both"
	case errors.Is(err, ErrWishlistDuplicate):
		return http.StatusBadRequest, "Item already in wishlist"
	case errors.Is(err, ErrReviewDuplicate):
		return http.StatusBadRequest, "You have already reviewed this tour"
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrInvalidImage):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrInvalidRole):
		return http.StatusBadRequest, "Invalid role"
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrInvalidPage):
		return http.StatusBadRequest, "Page must be greater than 0"
	case errors.Is(err, ErrInvalidPageSize):
		return http.StatusBadRequest, "Page size must be between 1 and 100"

	case errors.Is(err, ErrEmailAlreadyExists):
		return http.StatusConflict, "Email already registered"

	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
