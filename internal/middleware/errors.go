package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/campus-api/internal/repository"
	"github.com/stemsi/campus-api/internal/response"
	"github.com/stemsi/campus-api/internal/service"
)

// ErrorHandler renders errors that handlers pushed with c.Error and did not
// answer themselves. A not-found error may carry a response.ErrCode as its
// meta to select the message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		err := last.Err

		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, ve.Fields)
		case errors.Is(err, repository.ErrNotFound):
			code, ok := last.Meta.(response.ErrCode)
			if !ok {
				code = response.ErrNotFound
			}
			response.Fail(c, http.StatusNotFound, code)
		default:
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("Unhandled error")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
	}
}

// Recovery turns a panic into a 500 response and logs it.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zerolog.Ctx(c.Request.Context()).Error().
			Interface("panic", recovered).
			Msg("Recovered from panic")
		response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
	})
}
