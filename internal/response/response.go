package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// MessageBody is the JSON body of responses that only carry a message.
type MessageBody struct {
	Message string `json:"message"`
}

// Success sends data as the JSON body with the given status code.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Message sends a {"message": ...} body.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageBody{Message: message})
}

// Fail sends an error response with an error code and no field-level details.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, ErrorBody{Error: GetMessage(code)})
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, ErrorBody{Error: GetMessage(code), Fields: fields})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{Error: GetMessage(code)})
}
