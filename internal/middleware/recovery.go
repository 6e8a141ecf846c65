package middleware

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/transaction-api/pkg/web"
)

// Recovery turns a panic in a handler into a logged 500 with the generic message.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		zerolog.Ctx(c.Request.Context()).Error().Msgf("panic recovered: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, web.NewMessage(web.MsgInternal))
	})
}
