package utils

import "github.com/gin-gonic/gin"

// Response is the JSON envelope for every endpoint.
type Response struct {
	Status  string      `json:"status"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// SuccessResponse writes a success envelope with the given payload.
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes an error envelope and aborts the handler chain.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, Response{
		Status:  "error",
		Code:    codeForStatus(statusCode),
		Message: message,
	})
}

// ErrorFrom writes the envelope for any error, mapping CustomError to its
// status and everything else to a 500.
func ErrorFrom(c *gin.Context, err error) {
	if customErr, ok := err.(*CustomError); ok {
		c.AbortWithStatusJSON(customErr.StatusCode, Response{
			Status:  "error",
			Code:    customErr.Code,
			Message: customErr.Message,
		})
		return
	}
	ErrorResponse(c, 500, "Internal Server Error")
}
