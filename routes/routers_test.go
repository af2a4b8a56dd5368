package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/stretchr/testify/assert"

	"hotelbooking/constants"
	"hotelbooking/controllers"
	apperrors "hotelbooking/errors"
	"hotelbooking/policy"
	"hotelbooking/services/logger"
)

type stubTokens struct{}

func (stubTokens) ParseToken(token string) (*policy.Caller, error) {
	switch token {
	case "user":
		return &policy.Caller{UserID: 1, Role: constants.RoleUser}, nil
	case "admin":
		return &policy.Caller{UserID: 2, Role: constants.RoleAdmin}, nil
	}
	return nil, apperrors.Unauthenticated("invalid token")
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, Controllers{
		Auth:     controllers.NewAuthController(nil),
		Hotels:   controllers.NewHotelController(nil),
		Bookings: controllers.NewBookingController(nil),
		Reviews:  controllers.NewReviewController(nil),
		Contact:  controllers.NewContactController(nil),
		Users:    controllers.NewUserController(nil),
		Admin:    controllers.NewAdminController(nil),
		Notification: controllers.NewNotificationController(
			controllers.NotificationControllerOptions{Logger: logger.Nop{}}, melody.New()),
	}, stubTokens{}, logger.Nop{})
	return r
}

func TestProtectedRoutes(t *testing.T) {
	r := newRouter()

	tests := []struct {
		method, path, token string
		status              int
	}{
		{http.MethodPost, "/api/v1/bookings", "", http.StatusUnauthorized},
		{http.MethodPost, "/api/v1/bookings/1/cancel", "", http.StatusUnauthorized},
		{http.MethodPost, "/api/v1/hotels/1/reviews", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/profile", "bad", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/admin/stats", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/admin/users", "user", http.StatusForbidden},
		{http.MethodPost, "/api/v1/admin/hotels", "user", http.StatusForbidden},
		{http.MethodPost, "/api/v1/admin/notify", "user", http.StatusForbidden},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		if tt.token != "" {
			req.Header.Set("Authorization", "Bearer "+tt.token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, tt.status, w.Code, "%s %s", tt.method, tt.path)
	}
}

func TestWebSocketFeedRequiresAdmin(t *testing.T) {
	r := newRouter()

	upgrade := func(token string) int {
		req := httptest.NewRequest(http.MethodGet, "/ws", nil)
		req.Header.Set("Connection", "Upgrade")
		req.Header.Set("Upgrade", "websocket")
		req.Header.Set("Sec-WebSocket-Version", "13")
		req.Header.Set("Sec-WebSocket-Key", "dGhlIHNhbXBsZSBub25jZQ==")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusUnauthorized, upgrade(""))
	assert.Equal(t, http.StatusUnauthorized, upgrade("forged"))
	assert.Equal(t, http.StatusForbidden, upgrade("user"))
}

func TestOpsRoutes(t *testing.T) {
	r := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, "pong", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}
