package server

import "github.com/gin-gonic/gin"

// ApiResponse is the JSON envelope of every API endpoint.
type ApiResponse struct {
	Message         string `json:"message"`
	Data            any    `json:"data,omitempty"`
	Error           bool   `json:"error,omitempty"`
	RequestID       string `json:"request_id,omitempty"`
	RequestedEntity string `json:"requested_entity,omitempty"`
}

func successResponse(c *gin.Context, message string, data any) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		RequestID:       c.GetString(requestIDKey),
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}

func errorResponse(c *gin.Context, message string) ApiResponse {
	return ApiResponse{
		Message:         message,
		Error:           true,
		RequestID:       c.GetString(requestIDKey),
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}
