// Package httputil provides shared HTTP response helpers.
package httputil

import "github.com/gin-gonic/gin"

// ErrorResponse is the JSON body of every error reply. RequestID echoes
// the id assigned by the request-id middleware so a failing call can be
// matched to its log line.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// RespondError writes a standardized JSON error response and aborts the
// request.
func RespondError(c *gin.Context, status int, code, message string) {
	resp := ErrorResponse{Code: code, Message: message}

	if rid, exists := c.Get("request_id"); exists {
		if s, ok := rid.(string); ok {
			resp.RequestID = s
		}
	}

	c.AbortWithStatusJSON(status, resp)
}
