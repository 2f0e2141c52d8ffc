package middleware

import (
	"psychotest/internal/logger"
	"psychotest/internal/service"
	"psychotest/internal/util"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	SessionTokenHeader = "X-Session-Token"
	SessionIDKey       = "sessionID"
)

// SessionToken resolves the caller's session id from a signed token in the
// cookie or the X-Session-Token header. A missing or invalid token gets a new
// session. Tokens past half their lifetime are re-signed for the same
// session, so an active session does not expire mid-quiz.
func SessionToken(tokens service.SessionTokenService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(cookieName)
		if raw == "" {
			raw = c.Get(SessionTokenHeader)
		}

		var sessionID string
		reissue := true
		if raw != "" {
			if claims, err := tokens.Validate(raw); err == nil && util.IsULID(claims.Subject) {
				sessionID = claims.Subject
				reissue = claims.IssuedAt == nil || time.Since(claims.IssuedAt.Time) > tokens.TTL()/2
			}
		}
		if sessionID == "" {
			sessionID = util.NewULID()
			logger.Get().Debug("Starting new session", zap.String("sessionID", sessionID), zap.String("trace_id", TraceID(c)))
		}

		if reissue {
			token, err := tokens.Issue(sessionID)
			if err != nil {
				return err
			}
			c.Cookie(&fiber.Cookie{
				Name:     cookieName,
				Value:    token,
				Path:     "/",
				Expires:  time.Now().Add(tokens.TTL()),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
			c.Set(SessionTokenHeader, token)
		}

		c.Locals(SessionIDKey, sessionID)
		return c.Next()
	}
}

// SessionID returns the session id set by SessionToken.
func SessionID(c *fiber.Ctx) string {
	sessionID, _ := c.Locals(SessionIDKey).(string)
	return sessionID
}
