package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error body: {"error": "<human readable message>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleError writes err to the response. AppErrors keep their attached
// status; anything else becomes a 500 carrying the underlying message.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}
	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr.Message})
}

// AsAppError attempts to unwrap err into an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
