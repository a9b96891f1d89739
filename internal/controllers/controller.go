package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// errInvalidID パスパラメータのIDが不正
var errInvalidID = errors.New("無効なIDです")

// parseID パスパラメータ :id を解析する。失敗時はバインドエラーとして記録する
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		_ = ctx.Error(errInvalidID).SetType(gin.ErrorTypeBind)
		return 0, false
	}
	return uint(id), true
}

// bindJSON リクエストボディをバインドする。失敗時はバインドエラーとして記録する
func bindJSON(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		_ = ctx.Error(err).SetType(gin.ErrorTypeBind)
		return false
	}
	return true
}
