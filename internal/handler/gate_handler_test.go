package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/kindy-portal/internal/service"
	"github.com/noah-isme/kindy-portal/internal/upstream"
	appErrors "github.com/noah-isme/kindy-portal/pkg/errors"
)

type fakeGateSrv struct {
	adminState   service.GateState
	loginRes     *upstream.Result
	loginErr     error
	lastKey      string
	studentState service.GateState
	studentRes   *upstream.Result
	lastStamp    string
}

func (f *fakeGateSrv) AdminGate(context.Context) service.GateState {
	return f.adminState
}

func (f *fakeGateSrv) AdminLogin(_ context.Context, key string) (*upstream.Result, error) {
	f.lastKey = key
	return f.loginRes, f.loginErr
}

func (f *fakeGateSrv) StudentGate(_ context.Context, stampToken string) (service.GateState, *upstream.Result) {
	f.lastStamp = stampToken
	return f.studentState, f.studentRes
}

func TestAdminLoginRelaysSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewGateHandler(&fakeGateSrv{
		loginRes: &upstream.Result{Cookies: []*http.Cookie{{Name: "session", Value: "tok", HttpOnly: true}}},
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"key":"admin-key"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.AdminLogin(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.Equal(t, "tok", cookies[0].Value)
}

func TestAdminLoginRequiresKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewGateHandler(&fakeGateSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.AdminLogin(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminLoginForwardsBackendError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewGateHandler(&fakeGateSrv{loginErr: appErrors.ApplicationError(401, "wrong key")})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"key":"nope"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.AdminLogin(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var envelope struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "wrong key", envelope.Message)
}

func TestStudentGateStripsStampViaRedirect(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeGateSrv{
		studentState: service.GateState{Status: service.GateAuthenticated},
		studentRes:   &upstream.Result{Cookies: []*http.Cookie{{Name: "session", Value: "stu"}}},
	}
	h := NewGateHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/student/gate?stamp=tok-1", nil)

	h.StudentGate(c)

	assert.Equal(t, "tok-1", srv.lastStamp)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/api/student/gate", rec.Header().Get("Location"), "the stamp token must not survive in the URL")
	require.Len(t, rec.Result().Cookies(), 1)
}

func TestStudentGateWithoutStampAnswersInPlace(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewGateHandler(&fakeGateSrv{
		studentState: service.GateState{Status: service.GateUnauthenticated, Message: "need stamp, please open with original link."},
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/student/gate", nil)

	h.StudentGate(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data service.GateState `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, service.GateUnauthenticated, envelope.Data.Status)
	assert.Equal(t, "need stamp, please open with original link.", envelope.Data.Message)
}
