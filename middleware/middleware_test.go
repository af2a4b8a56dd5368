package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"hotelbooking/constants"
	apperrors "hotelbooking/errors"
	"hotelbooking/policy"
	"hotelbooking/services/logger"
)

type stubTokens map[string]*policy.Caller

func (s stubTokens) ParseToken(token string) (*policy.Caller, error) {
	if caller, ok := s[token]; ok {
		return caller, nil
	}
	return nil, apperrors.Unauthenticated("invalid token")
}

var tokens = stubTokens{
	"user":  {UserID: 1, Role: constants.RoleUser},
	"admin": {UserID: 2, Role: constants.RoleAdmin},
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(logger.Nop{}), RequestLogger(logger.Nop{}), Metrics())
	handlers = append(handlers, func(c *gin.Context) {
		caller := CallerFromContext(c)
		if caller == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, caller.Role)
	})
	r.GET("/", handlers...)
	return r
}

func do(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	r := newRouter(RequireAuth(tokens))

	assert.Equal(t, http.StatusUnauthorized, do(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "forged").Code)

	w := do(r, "user")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constants.RoleUser, w.Body.String())
}

func TestRequireRole(t *testing.T) {
	r := newRouter(RequireAuth(tokens), RequireRole(constants.RoleAdmin))

	assert.Equal(t, http.StatusUnauthorized, do(r, "").Code)
	assert.Equal(t, http.StatusForbidden, do(r, "user").Code)
	assert.Equal(t, http.StatusOK, do(r, "admin").Code)
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(logger.Nop{}))
	r.GET("/", func(*gin.Context) { panic("boom") })

	w := do(r, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":0,"mess":"Internal server error"}`, w.Body.String())
}

func TestSessionMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, SessionID(c)) })

	w := do(r, "")
	_, err := uuid.Parse(w.Body.String())
	assert.NoError(t, err)
	assert.Equal(t, w.Body.String(), w.Header().Get(SessionHeader))

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionHeader, id)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, id, w.Body.String())
}
