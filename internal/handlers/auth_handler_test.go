package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/adventureawaits/api/internal/config"
)

func logoutCookie(t *testing.T, cfg *config.Config) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/auth/logout", Logout(cfg))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	cookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, "access_token=") {
		t.Fatalf("no access_token cookie in %q", cookie)
	}
	return cookie
}

func TestLogoutCookieSecureFollowsEnvironment(t *testing.T) {
	prod := logoutCookie(t, &config.Config{Environment: "production"})
	if !strings.Contains(prod, "Secure") {
		t.Errorf("production cookie not marked Secure: %q", prod)
	}

	dev := logoutCookie(t, &config.Config{Environment: "development"})
	if strings.Contains(dev, "Secure") {
		t.Errorf("development cookie marked Secure: %q", dev)
	}
}
