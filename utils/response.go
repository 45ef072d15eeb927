package utils

import "github.com/gin-gonic/gin"

// APIResponse is the JSON envelope of every /api reply.
type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func JSONSuccess(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, APIResponse{Status: "success", Message: message, Data: data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{Status: "error", Message: message})
}

// JSONErrorData is JSONError with a payload, e.g. the state a rejected
// action left behind.
func JSONErrorData(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, APIResponse{Status: "error", Message: message, Data: data})
}
