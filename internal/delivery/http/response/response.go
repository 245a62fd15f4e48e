package response

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// TotalCountHeader carries the size of the filtered collection on list responses
const TotalCountHeader = "X-Total-Count"

// Response standardizes the API JSON envelope
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Data      any    `json:"data"`
	RequestID string `json:"request_id,omitempty"`
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// List sends a page of items and exposes the filtered total in a header
func List(c *gin.Context, items any, total int) {
	c.Header(TotalCountHeader, strconv.Itoa(total))
	Success(c, 200, "", items)
}

// Error sends an error response. data is always null.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Data:      nil,
		RequestID: requestID(c),
	})
}
