package rest

import (
	"net/http"

	"github.com/Gunvolt24/orderlines/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "olb_session"
	sessionMaxAge = 7 * 24 * 60 * 60
	ctxSessionKey = "session_id"
)

// sessionMiddleware — id сессии из cookie olb_session (UUID) либо новый.
// Кладёт id в контекст запроса для логов и в gin.Context для хендлеров.
func sessionMiddleware(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || uuid.Validate(sid) != nil {
			sid = uuid.NewString()
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, sid, sessionMaxAge, "/", "", secure, true)

		c.Set(ctxSessionKey, sid)
		c.Request = c.Request.WithContext(ctxmeta.WithSessionID(c.Request.Context(), sid))
		c.Next()
	}
}

func sessionID(c *gin.Context) string { return c.GetString(ctxSessionKey) }
