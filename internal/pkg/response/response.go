package response

import (
	"net/http"

	"github.com/coastwatch/coastwatch-api/internal/database"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every endpoint returns. Data carries the
// payload on success; Message or Errors explain a failure.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
}

// PaginatedResponse wraps a list payload with its pagination metadata.
type PaginatedResponse struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// Success sends a 200 OK with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// SuccessMessage sends a 200 OK with data and a human-readable message.
func SuccessMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Message: message, Data: data})
}

// Created sends a 201 Created with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// Paginated sends a 200 OK list response with pagination metadata.
func Paginated(c *gin.Context, data interface{}, p Pagination) {
	c.JSON(http.StatusOK, PaginatedResponse{Success: true, Data: data, Pagination: p})
}

// Error sends a failure envelope with the given status code.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{Success: false, Message: message})
}

// ValidationErrors sends a 400 with per-field validation failures.
func ValidationErrors(c *gin.Context, errs interface{}) {
	c.JSON(http.StatusBadRequest, APIResponse{Success: false, Errors: errs})
}

// BadRequest sends a 400 Bad Request error.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 Unauthorized error.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 Forbidden error.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// ForbiddenRoles sends a 403 explaining which roles would have been accepted.
func ForbiddenRoles(c *gin.Context, message string, requiredRoles []string, userRole string) {
	c.JSON(http.StatusForbidden, gin.H{
		"success":       false,
		"message":       message,
		"requiredRoles": requiredRoles,
		"userRole":      userRole,
	})
}

// NotFound sends a 404 Not Found error.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict sends a 409 Conflict error.
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// TooManyRequests sends a 429 rate-limit error.
func TooManyRequests(c *gin.Context, message string) {
	Error(c, http.StatusTooManyRequests, message)
}

// InternalServerError sends a 500 Internal Server Error.
func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// ServiceUnavailable sends a 503, used when the storage collaborator is
// unreachable. Callers are expected to retry with backoff.
func ServiceUnavailable(c *gin.Context, message string) {
	Error(c, http.StatusServiceUnavailable, message)
}

// StorageError maps a storage failure onto the envelope: unavailability
// answers 503 so the client retries with backoff, anything else uses the
// caller's 500 message.
func StorageError(c *gin.Context, err error, message string) {
	if database.IsUnavailable(err) {
		ServiceUnavailable(c, "Storage temporarily unavailable")
		return
	}
	InternalServerError(c, message)
}
