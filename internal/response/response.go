package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON body of every error response. Error carries the
// human-readable message, Code the stable machine-readable identifier.
type ErrorBody struct {
	Error  string            `json:"error"`
	Code   ErrCode           `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Success sends a successful JSON response with the given status code and data.
// Success bodies are flat domain payloads, not wrapped in an envelope.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Fail sends an error response with an error code and no field-level details.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, ErrorBody{Error: GetMessage(code), Code: code})
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, ErrorBody{Error: GetMessage(code), Code: code, Fields: fields})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{Error: GetMessage(code), Code: code})
}
