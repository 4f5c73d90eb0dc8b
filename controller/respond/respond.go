package respond

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const startTimeKey = "startTime"

// Response unified API response envelope
type Response struct {
	Code           int         `json:"code" example:"0"`
	Message        string      `json:"message" example:"success"`
	Data           interface{} `json:"data"`
	ProcessingTime int64       `json:"processingTime" example:"3"` // milliseconds
}

// Error codes
const (
	CodeSuccess            = 0
	CodeInvalidParam       = 40000
	CodeNotFound           = 40400
	CodeTooManyRequests    = 42900
	CodeServerError        = 50000
	CodeServiceUnavailable = 50300
)

// TimingMiddleware record request start time for processingTime
func TimingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(startTimeKey, time.Now())
		c.Next()
	}
}

func processingTime(c *gin.Context) int64 {
	value, ok := c.Get(startTimeKey)
	if !ok {
		return 0
	}
	start, ok := value.(time.Time)
	if !ok {
		return 0
	}
	return time.Since(start).Milliseconds()
}

func write(c *gin.Context, status int, code int, message string, data interface{}) {
	c.JSON(status, Response{
		Code:           code,
		Message:        message,
		Data:           data,
		ProcessingTime: processingTime(c),
	})
}

// Success 200 with data
func Success(c *gin.Context, data interface{}) {
	write(c, http.StatusOK, CodeSuccess, "success", data)
}

// InvalidParam 400
func InvalidParam(c *gin.Context, message string) {
	write(c, http.StatusBadRequest, CodeInvalidParam, message, nil)
}

// InvalidParamWithData 400 carrying a payload
func InvalidParamWithData(c *gin.Context, message string, data interface{}) {
	write(c, http.StatusBadRequest, CodeInvalidParam, message, data)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	write(c, http.StatusNotFound, CodeNotFound, message, nil)
}

// TooManyRequests 429
func TooManyRequests(c *gin.Context, message string) {
	write(c, http.StatusTooManyRequests, CodeTooManyRequests, message, nil)
	c.Abort()
}

// ServerError 500
func ServerError(c *gin.Context, message string) {
	write(c, http.StatusInternalServerError, CodeServerError, message, nil)
}

// ServiceUnavailable 503 carrying a payload
func ServiceUnavailable(c *gin.Context, message string, data interface{}) {
	write(c, http.StatusServiceUnavailable, CodeServiceUnavailable, message, data)
}
