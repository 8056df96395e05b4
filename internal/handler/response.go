package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/vladimirahmad90-oss/AccountManagement/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError maps a service error to an HTTP status and writes the
// standard error envelope. Internal errors are logged and masked.
func RespondError(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.Internal(err)
	}
	if appErr.Kind == apperrors.KindInternal {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("internal error")
		c.JSON(appErr.HTTPStatus(), NewErrorResponse("internal server error"))
		return
	}
	c.JSON(appErr.HTTPStatus(), NewErrorResponse(appErr.Message))
}
