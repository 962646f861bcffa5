package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/models"
	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	err      error
	password string
}

func (s *stubAuthService) IssueToken(ctx context.Context, password string) (*models.AdminToken, error) {
	s.password = password
	if s.err != nil {
		return nil, s.err
	}
	return &models.AdminToken{
		Token:     "signed-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

func postToken(h *Auth, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	h.Token(rr, req)
	return rr
}

func TestAuth_TokenIssued(t *testing.T) {
	stub := &stubAuthService{}
	h := NewAuth(stub, testLog())

	rr := postToken(h, `{"password": "secret"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "secret", stub.password)

	body := decodeBody(t, rr)
	require.Contains(t, body, "auth")

	var token models.AdminToken
	require.NoError(t, json.Unmarshal(body["auth"], &token))
	assert.Equal(t, "signed-token", token.Token)
}

func TestAuth_WrongPassword(t *testing.T) {
	h := NewAuth(&stubAuthService{err: types.ErrInvalidCredentials}, testLog())

	rr := postToken(h, `{"password": "wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_EmptyPassword(t *testing.T) {
	h := NewAuth(&stubAuthService{}, testLog())

	rr := postToken(h, `{"password": ""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestAuth_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad json", `{"password": `},
		{"unknown field", `{"passwort": "secret"}`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuth(&stubAuthService{}, testLog())

			rr := postToken(h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}
