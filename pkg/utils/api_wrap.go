package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/pkg/logger"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
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

// HandleServiceError maps service-layer sentinel errors to HTTP status codes.
// Conflicts map to 400 to match the public API contract.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidDateFormat),
		errors.Is(err, ErrSelfFriendship),
		errors.Is(err, ErrUserAlreadyExists),
		errors.Is(err, ErrFriendshipExists),
		errors.Is(err, ErrAlreadyReviewed),
		errors.Is(err, ErrAlreadyExists):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidSocialToken):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrPlaceNotFound),
		errors.Is(err, ErrTripNotFound),
		errors.Is(err, ErrTripMemberNotFound),
		errors.Is(err, ErrTripPlaceNotFound),
		errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrBookingOwnerNotFound),
		errors.Is(err, ErrFriendshipNotFound),
		errors.Is(err, ErrNotificationNotFound),
		errors.Is(err, ErrReviewNotFound),
		errors.Is(err, ErrRecommendationNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrDatabaseError):
		logger.Log.Errorw("database error", "err", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		logger.Log.Errorw("unexpected error", "err", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
