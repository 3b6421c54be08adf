package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-zone-keeper/internal/service"
	"github.com/MKhiriev/go-zone-keeper/internal/store"
	"github.com/MKhiriev/go-zone-keeper/models"
)

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRegister_IssuesBearerToken(t *testing.T) {
	h, m := newTestHandler(t)
	registered := models.User{UserID: 1, Login: "alice"}

	m.auth.EXPECT().RegisterUser(gomock.Any(), models.User{Login: "alice", Password: "secret"}).Return(registered, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), registered).Return(models.Token{SignedString: "signed"}, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, postJSON("/api/auth/register", `{"login":"alice","password":"secret"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed", rec.Header().Get(models.HeaderAuthorization))

	var body models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "alice", body.Login)
	assert.Empty(t, body.Password)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "invalid json", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "empty credentials", body: `{}`, serviceErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "login taken", body: `{"login":"alice","password":"x"}`, serviceErr: store.ErrLoginAlreadyExists, wantStatus: http.StatusConflict},
		{name: "storage failure", body: `{"login":"alice","password":"x"}`, serviceErr: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.serviceErr != nil {
				m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, tt.serviceErr)
			}

			rec := httptest.NewRecorder()
			h.Init().ServeHTTP(rec, postJSON("/api/auth/register", tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, rec.Header().Get(models.HeaderAuthorization))
		})
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		loginErr   error
		tokenErr   error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "wrong password", loginErr: service.ErrWrongPassword, wantStatus: http.StatusUnauthorized},
		{name: "unknown login", loginErr: store.ErrNoUserWasFound, wantStatus: http.StatusUnauthorized},
		{name: "token failure", tokenErr: service.ErrTokenCreationFailed, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			user := models.User{UserID: 2, Login: "bob"}

			m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(user, tt.loginErr)
			if tt.loginErr == nil {
				m.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "t"}, tt.tokenErr)
			}

			rec := httptest.NewRecorder()
			h.Init().ServeHTTP(rec, postJSON("/api/auth/login", `{"login":"bob","password":"pw"}`))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "Bearer t", rec.Header().Get(models.HeaderAuthorization))
			}
		})
	}
}
