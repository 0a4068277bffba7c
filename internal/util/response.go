package util

import (
	"mahad_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response is the shared API envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	InternalServerError(c)
}

// DomainError maps the grading/scoping error taxonomy onto HTTP responses.
// Unknown errors fall through to a logged 500.
func DomainError(c *gin.Context, err error) {
	switch err {
	case ErrNoScopeAssigned:
		// Recoverable: the staff member simply has no residents yet.
		Success(c, gin.H{"assigned": false, "message": "no residents to manage yet"})
	case ErrOutOfScope:
		Forbidden(c, err.Error())
	case ErrUnknownResident, ErrUnknownTarget, ErrUnknownGroup, ErrUnknownFloor, ErrUserNotFound, ErrQuizNotFound:
		NotFound(c, err.Error())
	case ErrSupervisorTaken, ErrAssistantTaken, ErrQuizUnpublished, ErrEmailRegistered:
		BadRequest(c, err.Error())
	case ErrConcurrentWriteConflict:
		Error(c, http.StatusConflict, err.Error())
	default:
		LogInternalError(c, err)
	}
}
