package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/models/dto"
	"github.com/yigit/lms/internal/app/services"
	"github.com/yigit/lms/internal/middleware"
	"github.com/yigit/lms/internal/pkg/auth"
	"github.com/yigit/lms/internal/pkg/email"
	"github.com/yigit/lms/internal/pkg/filestorage"
	"github.com/yigit/lms/internal/testutils"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := middleware.RegisterValidators(); err != nil {
		panic(err)
	}
}

func newAuthController(t *testing.T, store *testutils.MemStore, expose bool) *AuthController {
	t.Helper()
	files, err := filestorage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	svc := services.NewAuthService(
		store,
		auth.NewBcryptHasher(4),
		auth.NewJWTService(auth.JWTConfig{
			AccessSecret:    "a",
			RefreshSecret:   "r",
			AccessTokenExp:  time.Minute,
			RefreshTokenExp: time.Hour,
		}),
		email.NewEmailService(email.SMTPConfig{}, zerolog.Nop()),
		files,
		nil,
		services.AuthSettings{ResetTokenTTL: 30 * time.Minute, ResetURL: "http://x/reset?token=%s"},
		time.Now,
		zerolog.Nop(),
	)
	return NewAuthController(svc, expose, zerolog.Nop())
}

func postJSON(h gin.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	h(c)
	return rec
}

func TestForgotPasswordHidesTokenByDefault(t *testing.T) {
	store := testutils.NewMemStore()
	store.SeedUser("ada@example.com", models.RoleStudent, "x", true)

	for _, expose := range []bool{false, true} {
		ctrl := newAuthController(t, store, expose)

		rec := postJSON(ctrl.ForgotPassword, dto.ForgotPasswordRequest{Email: "ada@example.com"})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data dto.ForgotPasswordResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		if expose {
			assert.NotEmpty(t, resp.Data.Token)
			assert.Equal(t, msgResetGenerated, resp.Data.Message)
		} else {
			assert.Empty(t, resp.Data.Token)
			assert.Equal(t, msgResetGeneric, resp.Data.Message)
		}
	}
	assert.Equal(t, 2, store.ResetTokenCount())
}

func TestResetPasswordRejectsShortPassword(t *testing.T) {
	ctrl := newAuthController(t, testutils.NewMemStore(), false)

	rec := postJSON(ctrl.ResetPassword, dto.ResetPasswordRequest{Token: "tok", NewPassword: "short"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(ctrl.ResetPassword, dto.ResetPasswordRequest{Token: "unknown", NewPassword: "long-enough"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestOptionalFile(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(formFieldPhoto, "me.jpg")
	require.NoError(t, err)
	_, _ = part.Write([]byte("jpeg"))
	require.NoError(t, w.WriteField(formFieldData, "{}"))
	require.NoError(t, w.Close())

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/", &buf)
	c.Request.Header.Set("Content-Type", w.FormDataContentType())

	fh, ok := optionalFile(c, formFieldPhoto)
	require.True(t, ok)
	require.NotNil(t, fh)
	assert.Equal(t, "me.jpg", fh.Filename)

	fh, ok = optionalFile(c, formFieldDocument)
	assert.True(t, ok)
	assert.Nil(t, fh)
	assert.False(t, c.IsAborted())
}

func TestPathID(t *testing.T) {
	tests := []struct {
		param string
		id    int64
		ok    bool
	}{
		{"42", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Params = gin.Params{{Key: "id", Value: tt.param}}

			id, ok := pathID(c)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.id, id)
			if !ok {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			}
		})
	}
}
