package middlewares

import (
	"errors"
	"net/http"

	"github.com/SketchShifter/tag_backend/internal/repository"
	"github.com/SketchShifter/tag_backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatusFor ハンドラが記録したエラーをHTTPステータスに対応付ける
func StatusFor(err *gin.Error) int {
	if err.IsType(gin.ErrorTypeBind) {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err.Err, repository.ErrTagNotFound),
		errors.Is(err.Err, repository.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err.Err, repository.ErrTagConflict),
		errors.Is(err.Err, services.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err.Err, services.ErrInvalidTag),
		errors.Is(err.Err, services.ErrPasswordTooLong):
		return http.StatusBadRequest
	case errors.Is(err.Err, services.ErrInvalidCredentials),
		errors.Is(err.Err, services.ErrInvalidToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// ErrorMiddleware エラーハンドリングミドルウェア
// panic を 500 に変換し、ctx.Error で記録された最後のエラーをレスポンスにする
func ErrorMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panicを回復しました",
					zap.Any("panic", r),
					zap.String("path", ctx.Request.URL.Path),
					zap.Stack("stack"))
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "サーバーエラーが発生しました",
				})
			}
		}()

		ctx.Next()

		if len(ctx.Errors) == 0 || ctx.Writer.Written() {
			return
		}

		last := ctx.Errors.Last()
		status := StatusFor(last)
		if status >= http.StatusInternalServerError {
			log.Error("リクエスト処理に失敗しました",
				zap.String("method", ctx.Request.Method),
				zap.String("path", ctx.Request.URL.Path),
				zap.Error(last.Err))
		}

		ctx.JSON(status, gin.H{"error": last.Error()})
	}
}

// CORSMiddleware CORSミドルウェア
func CORSMiddleware(origin string) gin.HandlerFunc {
	if origin == "" {
		origin = "*"
	}
	return func(ctx *gin.Context) {
		ctx.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		ctx.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		ctx.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		ctx.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}
