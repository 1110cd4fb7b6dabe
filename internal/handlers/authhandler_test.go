package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/justsurfingit/job-board/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	s := newTestServer(t)

	res := s.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "success", res.Body["status"])

	res = s.do(http.MethodGet, "/api/test", "", nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Database connection successful", res.message())
}

func TestRegisterEmployee(t *testing.T) {
	s := newTestServer(t)

	res := s.do(http.MethodPost, "/api/register", "", map[string]any{
		"name": "Bo", "email": "bo@example.com", "password": "secret", "userType": "employee",
		"dob": "2000-01-01", "education": "BSc", "skills": `["go", "sql"]`,
	})
	require.Equal(t, http.StatusCreated, res.Code, res.Body)
	assert.Equal(t, "employee", res.Body["userType"])
	assert.Equal(t, "Bo", res.Body["name"])
	assert.NotEmpty(t, res.Body["token"])
	assert.NotContains(t, res.Body, "companyName")

	claims, err := s.tokens.Parse(res.Body["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, uint(res.Body["userId"].(float64)), claims.UserID)

	res = s.do(http.MethodPost, "/api/register", "", map[string]any{
		"name": "Bo", "email": "bo@example.com", "password": "secret", "userType": "employee",
		"dob": "2000-01-01", "education": "BSc",
	})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "Email already registered", res.message())
}

func TestRegisterEmployerThroughGenericEndpoint(t *testing.T) {
	s := newTestServer(t)

	res := s.do(http.MethodPost, "/api/register", "", map[string]any{
		"name": "Ada", "email": "ada@example.com", "password": "secret", "userType": "employer", "companyName": "Engines",
	})
	require.Equal(t, http.StatusCreated, res.Code, res.Body)
	assert.Equal(t, "Engines", res.Body["companyName"])
	assert.Equal(t, "employer", res.Body["userType"])
}

func TestRegisterRejectsOverlongPassword(t *testing.T) {
	s := newTestServer(t)

	res := s.do(http.MethodPost, "/api/register/employer", "", map[string]any{
		"name": "Ada", "email": "ada@example.com", "password": strings.Repeat("p", 80), "companyName": "Engines",
	})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "Password must be at most 72 bytes", res.message())
}

func TestRegisterValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		path string
		body any
		want string
	}{
		{"empty body", "/api/register", nil, "No data provided"},
		{"malformed json", "/api/register", `{"name": `, "Invalid JSON format: unexpected EOF"},
		{"missing fields", "/api/register", map[string]any{"email": "x@example.com"}, "Missing fields: name, password, userType"},
		{"unknown role", "/api/register", map[string]any{"name": "a", "email": "x@example.com", "password": "p", "userType": "admin"}, "Invalid user type"},
		{"employer without company", "/api/register", map[string]any{"name": "a", "email": "x@example.com", "password": "p", "userType": "employer"}, "Missing company name"},
		{"employee without dob", "/api/register", map[string]any{"name": "a", "email": "x@example.com", "password": "p", "userType": "employee", "education": "BSc"}, "Missing field: dob"},
		{"bad skills", "/api/register", map[string]any{"name": "a", "email": "x@example.com", "password": "p", "userType": "employee", "dob": "d", "education": "e", "skills": "go, sql"}, "Invalid skills format"},
		{"employer endpoint", "/api/register/employer", map[string]any{"name": "a"}, "Missing required fields"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := s.do(http.MethodPost, tt.path, "", tt.body)
			assert.Equal(t, http.StatusBadRequest, res.Code)
			assert.Equal(t, "error", res.Body["status"])
			assert.Equal(t, tt.want, res.message())
		})
	}
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	s.registerEmployee("bo@example.com")
	s.registerEmployer("ada@example.com")

	res := s.do(http.MethodPost, "/api/login", "", map[string]any{"email": "bo@example.com", "password": "secret", "userType": "employee"})
	require.Equal(t, http.StatusOK, res.Code, res.Body)
	assert.Equal(t, "Login successful", res.message())
	assert.Equal(t, []any{"go"}, res.Body["skills"])
	assert.Equal(t, "BSc", res.Body["education"])

	res = s.do(http.MethodPost, "/api/login", "", map[string]any{"email": "ada@example.com", "password": "secret", "userType": "employer"})
	require.Equal(t, http.StatusOK, res.Code, res.Body)
	assert.Equal(t, "Engines Ltd", res.Body["companyName"])

	res = s.do(http.MethodPost, "/api/login", "", map[string]any{"email": "bo@example.com", "password": "nope", "userType": "employee"})
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Equal(t, "Invalid credentials", res.message())

	res = s.do(http.MethodPost, "/api/login", "", map[string]any{"email": "bo@example.com", "password": "secret", "userType": "admin"})
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestEmployerLogin(t *testing.T) {
	s := newTestServer(t)
	id, _ := s.registerEmployer("ada@example.com")

	res := s.do(http.MethodPost, "/api/employer/login", "", map[string]any{"email": "ada@example.com", "password": "secret"})
	require.Equal(t, http.StatusOK, res.Code, res.Body)
	assert.Equal(t, float64(id), res.Body["userId"])
	assert.Equal(t, "Engines Ltd", res.Body["companyName"])

	res = s.do(http.MethodPost, "/api/employer/login", "", map[string]any{"email": "ada@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Equal(t, "Invalid email or password", res.message())

	res = s.do(http.MethodPost, "/api/employer/login", "", map[string]any{"email": "ada@example.com"})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "Missing email or password", res.message())
}

func TestUnknownAPIPath(t *testing.T) {
	s := newTestServer(t)

	res := s.do(http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "Endpoint not found", res.message())
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t)

	w := s.raw(http.MethodGet, "/api/health", nil)
	assert.NotEmpty(t, w.Header().Get(logger.RequestIDHeader))

	w = s.raw(http.MethodGet, "/api/health", map[string]string{logger.RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(logger.RequestIDHeader))
}
