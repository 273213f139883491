package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 错误响应体 {"message": "..."}
type Response struct {
	Message string `json:"message"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Fail(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, Response{Message: msg})
}
