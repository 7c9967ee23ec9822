package handler

import (
	"github.com/gin-gonic/gin"

	"data-catalog/pkg/responses"
	"data-catalog/pkg/utils"
)

// currentUser 认证中间件写入的用户名, 未认证时为空
func currentUser(c *gin.Context) string {
	return c.GetString("username")
}

func bindError(c *gin.Context, err error) {
	responses.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
}
