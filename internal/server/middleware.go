package server

import (
	"time"

	authdomain "github.com/amanahworks/folio/internal/auth/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	contextUserKey    = "current_user"
	contextSessionKey = "current_session"

	headerRequestID = "X-Request-ID"
)

// RequestLogger emits one structured line per request. It also assigns a
// request id when the caller did not send one.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set(headerRequestID, requestID)

		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		if last := c.Errors.Last(); last != nil {
			fields = append(fields, zap.Error(last.Err))
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Error("http request", fields...)
		case c.Writer.Status() >= 400:
			log.Warn("http request", fields...)
		default:
			log.Info("http request", fields...)
		}
	}
}

// AuthRequired resolves the session cookie into a user and stores both on
// the gin context. Requests without a valid session are rejected before the
// handler runs.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		session, err := s.authsvc.Authenticate(c.Request.Context(), rawToken)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		user, err := s.authsvc.UserByID(c.Request.Context(), session.UserID)
		if err != nil {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		c.Set(contextSessionKey, session)
		c.Set(contextUserKey, user)
		c.Next()
	}
}

// AdminRequired allows only the user whose normalized email equals the
// configured ADMIN_EMAIL. With no ADMIN_EMAIL set the check fails closed,
// even for a user whose email is empty.
func (s *Server) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		if s.cfg.AdminEmail == "" {
			AbortWithError(c, ErrAdminNotConfigured)
			return
		}
		if user.Email != s.cfg.AdminEmail {
			AbortWithError(c, ErrForbidden)
			return
		}

		c.Next()
	}
}

func currentUser(c *gin.Context) (*authdomain.User, bool) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*authdomain.User)
	return user, ok && user != nil
}

func currentSession(c *gin.Context) (*authdomain.Session, bool) {
	value, exists := c.Get(contextSessionKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*authdomain.Session)
	return session, ok && session != nil
}

func (s *Server) isAdmin(user *authdomain.User) bool {
	if user == nil || s.cfg.AdminEmail == "" {
		return false
	}
	return user.Email == s.cfg.AdminEmail
}
