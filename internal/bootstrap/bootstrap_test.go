package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/models/dto"
	"github.com/yigit/lms/internal/config"
	"github.com/yigit/lms/internal/seed"
	"github.com/yigit/lms/internal/testutils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope[T any] struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    T                `json:"data"`
	Error   *dto.ErrorDetail `json:"error"`
}

type apiFixture struct {
	t      *testing.T
	store  *testutils.MemStore
	router *gin.Engine
	cfg    *config.Config
}

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:             "0",
			Mode:             "test",
			StoragePath:      t.TempDir(),
			CORSOrigins:      []string{"*"},
			ExposeResetToken: true,
		},
		JWT: config.JWTConfig{
			AccessSecret:       "access-secret",
			RefreshSecret:      "refresh-secret",
			AccessTokenMinutes: 15,
			RefreshTokenDays:   7,
			Issuer:             "lms-test",
		},
		Auth: config.AuthConfig{
			BcryptCost:        4,
			ResetTokenMinutes: 30,
			ResetURL:          "http://frontend/reset?token=%s",
		},
		Admin: config.AdminConfig{Email: "admin@lms.local", Password: "admin-pass", FullName: "Admin"},
	}
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	cfg := testConfig(t)
	store := testutils.NewMemStore()

	_, err := seed.CreateDefaultData(context.Background(), store, NewHasher(cfg), cfg.Admin, zerolog.Nop())
	require.NoError(t, err)

	deps, err := BuildDependencies(cfg, store, nil, zerolog.Nop())
	require.NoError(t, err)
	router, err := SetupRouter(cfg, deps, zerolog.Nop())
	require.NoError(t, err)

	return &apiFixture{t: t, store: store, router: router, cfg: cfg}
}

func (f *apiFixture) serve(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) json(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(f.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return f.serve(req, token)
}

func (f *apiFixture) multipart(path string, data interface{}, files map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	raw, err := json.Marshal(data)
	require.NoError(f.t, err)
	require.NoError(f.t, w.WriteField("data", string(raw)))
	for field, name := range files {
		part, err := w.CreateFormFile(field, name)
		require.NoError(f.t, err)
		_, err = part.Write([]byte("content of " + name))
		require.NoError(f.t, err)
	}
	require.NoError(f.t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return f.serve(req, "")
}

func (f *apiFixture) login(email, password string) dto.TokenResponse {
	f.t.Helper()
	rec := f.json(http.MethodPost, "/auth/login", "", dto.LoginRequest{Email: email, Password: password})
	require.Equal(f.t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[dto.TokenResponse](f.t, rec).Data
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var out envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func studentPayload(email string) map[string]interface{} {
	return map[string]interface{}{
		"firstName":        "Ada",
		"lastName":         "Lovelace",
		"gender":           "female",
		"dob":              "2000-12-10",
		"phoneNumber":      "+44 20 0000",
		"email":            email,
		"password":         "password123",
		"confirm_password": "password123",
	}
}

func TestPublicEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	for _, path := range []string{"/", "/ping", "/health"} {
		rec := f.serve(httptest.NewRequest(http.MethodGet, path, nil), "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := f.serve(httptest.NewRequest(http.MethodGet, "/nope", nil), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.serve(httptest.NewRequest(http.MethodGet, "/metrics", nil), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `lms_http_requests_total{method="GET",route="/ping",status="200"} 1`)
}

func TestSwaggerDocument(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.serve(httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		Swagger string                    `json:"swagger"`
		Info    struct{ Title string }    `json:"info"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "LMS API", doc.Info.Title)
	assert.Contains(t, doc.Paths["/auth/login"], "post")
	assert.Contains(t, doc.Paths["/users/{id}"], "delete")
	assert.Contains(t, doc.Paths["/admin/hires"], "post")

	rec = f.serve(httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStudentRegistrationAndLogin(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.multipart("/auth/register/student", studentPayload(" Ada@Example.COM "), map[string]string{
		"photo":    "me.PNG",
		"document": "cv.pdf",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[dto.UserResponse](t, rec).Data
	assert.Equal(t, "ada@example.com", created.Email)
	assert.Equal(t, "student", created.Role)
	require.NotNil(t, created.FullName)
	assert.Equal(t, "Ada Lovelace", *created.FullName)

	photos, err := os.ReadDir(filepath.Join(f.cfg.Server.StoragePath, "student", "photos"))
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.True(t, strings.HasSuffix(photos[0].Name(), ".png"))

	rec = f.multipart("/auth/register/student", studentPayload("ada@example.com"), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	tokens := f.login("ADA@example.com", "password123")
	assert.Equal(t, "bearer", tokens.TokenType)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)

	rec = f.json(http.MethodGet, "/users/me", tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[dto.MeResponse](t, rec).Data
	require.NotNil(t, me.StudentProfile)
	assert.Nil(t, me.MentorProfile)
	require.NotNil(t, me.StudentProfile.PhotoURL)

	rec = f.serve(httptest.NewRequest(http.MethodGet, *me.StudentProfile.PhotoURL, nil), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "content of me.PNG", rec.Body.String())

	rec = f.json(http.MethodGet, "/student/StudentDetails", tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decode[dto.UserResponse](t, rec).Data.ID)

	// the refresh token is not an access token
	rec = f.json(http.MethodGet, "/users/me", tokens.RefreshToken, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.json(http.MethodPost, "/auth/refresh", "", dto.RefreshTokenRequest{RefreshToken: tokens.AccessToken})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.json(http.MethodPost, "/auth/refresh", "", dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode[dto.TokenResponse](t, rec).Data.AccessToken)

	rec = f.json(http.MethodGet, "/admin/dashboard", tokens.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRegistrationValidation(t *testing.T) {
	f := newAPIFixture(t)

	payload := studentPayload("ada@example.com")
	payload["confirm_password"] = "different1"
	rec := f.multipart("/auth/register/student", payload, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[json.RawMessage](t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
	assert.Equal(t, "confirm_password", resp.Error.Field)

	req := httptest.NewRequest(http.MethodPost, "/auth/register/mentor", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	rec = f.serve(req, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.multipart("/auth/register/mentor", map[string]interface{}{
		"email":                 "m@example.com",
		"password":              "password123",
		"confirm_password":      "password123",
		"name":                  "Grace",
		"totalExperienceMonths": 12,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPasswordResetFlow(t *testing.T) {
	f := newAPIFixture(t)
	rec := f.multipart("/auth/register/student", studentPayload("ada@example.com"), nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.json(http.MethodPost, "/auth/forgot", "", dto.ForgotPasswordRequest{Email: "nobody@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	unknown := decode[dto.ForgotPasswordResponse](t, rec).Data
	assert.Empty(t, unknown.Token)
	assert.Equal(t, "If the email exists, a reset link has been sent", unknown.Message)

	rec = f.json(http.MethodPost, "/auth/forgot", "", dto.ForgotPasswordRequest{Email: "ada@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	issued := decode[dto.ForgotPasswordResponse](t, rec).Data
	require.NotEmpty(t, issued.Token)
	assert.Equal(t, "Reset token generated (dev)", issued.Message)

	reset := dto.ResetPasswordRequest{Token: issued.Token, NewPassword: "brand-new-pass"}
	rec = f.json(http.MethodPost, "/auth/reset", "", reset)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Password reset successful", decode[dto.MessageResponse](t, rec).Data.Message)

	rec = f.json(http.MethodPost, "/auth/reset", "", reset)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[json.RawMessage](t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Invalid or expired token", resp.Error.Message)

	rec = f.json(http.MethodPost, "/auth/login", "", dto.LoginRequest{Email: "ada@example.com", Password: "password123"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	f.login("ada@example.com", "brand-new-pass")
}

func TestAdminFlow(t *testing.T) {
	f := newAPIFixture(t)
	admin := f.login("admin@lms.local", "admin-pass").AccessToken

	rec := f.multipart("/auth/register/student", studentPayload("ada@example.com"), nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	student := decode[dto.UserResponse](t, rec).Data

	rec = f.json(http.MethodPost, "/admin/create-mentor", admin, dto.CreateMentorRequest{Email: "mentor@example.com", Password: "mentor-pass"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = f.json(http.MethodPost, "/admin/create-mentor", admin, dto.CreateMentorRequest{Email: "MENTOR@example.com", Password: "mentor-pass"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.json(http.MethodPost, "/admin/batches", admin, dto.CreateBatchRequest{BatchName: "Go 101"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	batch := decode[dto.BatchResponse](t, rec).Data
	assert.Equal(t, "Scheduled", batch.Status)

	rec = f.json(http.MethodPatch, "/admin/batches/"+strconv.FormatInt(batch.ID, 10)+"/status", admin, dto.UpdateBatchStatusRequest{Status: "Completed"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.json(http.MethodGet, "/admin/dashboard", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	dashboard := decode[dto.DashboardResponse](t, rec).Data
	assert.Zero(t, dashboard.StudentsHired)

	rec = f.json(http.MethodPost, "/admin/hires", admin, dto.CreateHireRequest{
		UserID:       student.ID,
		Fullname:     "Ada Lovelace",
		Email:        "ada@example.com",
		HiredCompany: "Analytical Engines",
		HiredDate:    "2025-01-15",
		BatchID:      &batch.ID,
		DashboardID:  &dashboard.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	hire := decode[dto.HireResponse](t, rec).Data
	require.NotNil(t, hire.Dashboard)
	assert.Equal(t, dto.DashboardResponse{
		ID:                    dashboard.ID,
		BatchesCompletedCount: 1,
		StudentsHired:         1,
		NoOfStudents:          1,
		NoOfMentors:           1,
	}, *hire.Dashboard)

	rec = f.json(http.MethodGet, "/admin/dashboard", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), decode[dto.DashboardResponse](t, rec).Data.StudentsHired)

	rec = f.json(http.MethodGet, "/users/students?limit=101", admin, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = f.json(http.MethodGet, "/users/students?search=lovelace", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]dto.StudentResponse](t, rec).Data, 1)

	path := "/users/" + strconv.FormatInt(student.ID, 10)
	rec = f.json(http.MethodGet, path, admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// hires reference the student
	rec = f.json(http.MethodDelete, path, admin, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.json(http.MethodGet, "/users/abc", admin, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeactivatedAccount(t *testing.T) {
	f := newAPIFixture(t)
	admin := f.login("admin@lms.local", "admin-pass").AccessToken

	rec := f.multipart("/auth/register/student", studentPayload("ada@example.com"), nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	student := decode[dto.UserResponse](t, rec).Data
	studentTokens := f.login("ada@example.com", "password123")

	path := "/admin/users/" + strconv.FormatInt(student.ID, 10) + "/active"
	rec = f.json(http.MethodPatch, path, admin, map[string]bool{"is_active": false})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.False(t, decode[dto.UserResponse](t, rec).Data.IsActive)

	rec = f.json(http.MethodGet, "/users/me", studentTokens.AccessToken, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.json(http.MethodPost, "/auth/login", "", dto.LoginRequest{Email: "ada@example.com", Password: "password123"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.json(http.MethodPost, "/auth/refresh", "", dto.RefreshTokenRequest{RefreshToken: studentTokens.RefreshToken})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.json(http.MethodPatch, path, admin, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	adminUser, err := f.store.Users().GetByEmail(context.Background(), "admin@lms.local")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, adminUser.Role)
	rec = f.json(http.MethodPatch, "/admin/users/"+strconv.FormatInt(adminUser.ID, 10)+"/active", admin, map[string]bool{"is_active": false})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCORSConfig(t *testing.T) {
	all := corsConfig([]string{"*"})
	assert.True(t, all.AllowAllOrigins)
	assert.Empty(t, all.AllowOrigins)

	listed := corsConfig([]string{"https://app.example.com"})
	assert.False(t, listed.AllowAllOrigins)
	assert.Equal(t, []string{"https://app.example.com"}, listed.AllowOrigins)
	assert.NoError(t, listed.Validate())
}
