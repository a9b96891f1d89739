package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
)

// SecureMiddleware セキュリティヘッダーを付与する
func SecureMiddleware(isDevelopment bool) gin.HandlerFunc {
	sec := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "no-referrer",
		IsDevelopment:      isDevelopment,
	})

	return func(ctx *gin.Context) {
		if err := sec.Process(ctx.Writer, ctx.Request); err != nil {
			ctx.Abort()
			return
		}

		// リダイレクト済みならヘッダーを書き換えない
		if status := ctx.Writer.Status(); status > 300 && status < 399 {
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
