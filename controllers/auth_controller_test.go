package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"freshmart-backend/models"
	"freshmart-backend/services"
)

type fakeValidator struct {
	user *models.AdminUser
}

func (f *fakeValidator) Validate(username, password string) *models.AdminUser {
	return f.user
}

type fakeIssuer struct {
	token string
	err   error
}

func (f *fakeIssuer) Issue(user *models.AdminUser) (string, error) {
	return f.token, f.err
}

func authRouter(validator CredentialValidator, issuer TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	session := services.SessionConfig{CookieName: "admin_token", MaxAge: 3600}
	controller := NewAuthController(validator, issuer, session)

	r := gin.New()
	r.POST("/api/auth/login", controller.Login)
	r.POST("/api/auth/logout", controller.Logout)
	return r
}

func TestLoginSetsSessionCookie(t *testing.T) {
	r := authRouter(
		&fakeValidator{user: &models.AdminUser{Username: "admin", Role: models.RoleAdmin}},
		&fakeIssuer{token: "aaa.bbb.ccc"},
	)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"admin","password":"admin123"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"user":{"username":"admin","role":"admin"}}`, w.Body.String())

	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "admin_token", cookie.Name)
	assert.Equal(t, "aaa.bbb.ccc", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 3600, cookie.MaxAge)
}

func TestLoginRejectsMissingFields(t *testing.T) {
	r := authRouter(&fakeValidator{}, &fakeIssuer{})

	for _, body := range []string{``, `{}`, `{"username":"admin"}`, `{"password":"x"}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
		assert.JSONEq(t, `{"error":"Username and password are required"}`, w.Body.String())
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := authRouter(&fakeValidator{user: nil}, &fakeIssuer{token: "aaa.bbb.ccc"})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"admin","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
	assert.Empty(t, w.Result().Cookies())
}

func TestLogoutClearsCookie(t *testing.T) {
	r := authRouter(&fakeValidator{}, &fakeIssuer{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
