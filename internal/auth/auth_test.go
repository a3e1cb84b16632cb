package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/caixa/internal/auth"
)

const secret = "test-secret"

func TestToken_Roundtrip(t *testing.T) {
	userID := uuid.New()

	token, err := auth.NewToken(secret, userID, time.Hour)
	require.NoError(t, err)

	got, err := auth.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestParse_Invalid(t *testing.T) {
	userID := uuid.New()

	type testCase struct {
		name  string
		token func(t *testing.T) string
	}

	tests := []testCase{
		{
			name: "WrongSecret",
			token: func(t *testing.T) string {
				token, err := auth.NewToken("other-secret", userID, time.Hour)
				require.NoError(t, err)

				return token
			},
		},
		{
			name: "Expired",
			token: func(t *testing.T) string {
				token, err := auth.NewToken(secret, userID, -time.Minute)
				require.NoError(t, err)

				return token
			},
		},
		{
			name: "Garbage",
			token: func(t *testing.T) string {
				return "not.a.token"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Parse(secret, tt.token(t))
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestMiddleware(t *testing.T) {
	owner := uuid.New()

	ownerToken, err := auth.NewToken(secret, owner, time.Hour)
	require.NoError(t, err)

	otherToken, err := auth.NewToken(secret, uuid.New(), time.Hour)
	require.NoError(t, err)

	type testCase struct {
		name       string
		secret     string
		authHeader string
		wantStatus int
	}

	tests := []testCase{
		{
			name:       "OpenWithoutSecret",
			secret:     "",
			wantStatus: http.StatusOK,
		},
		{
			name:       "ValidToken",
			secret:     secret,
			authHeader: "Bearer " + ownerToken,
			wantStatus: http.StatusOK,
		},
		{
			name:       "MissingHeader",
			secret:     secret,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "MalformedHeader",
			secret:     secret,
			authHeader: ownerToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "BadToken",
			secret:     secret,
			authHeader: "Bearer invalid",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "WrongUser",
			secret:     secret,
			authHeader: "Bearer " + otherToken,
			wantStatus: http.StatusForbidden,
		},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := auth.Middleware(tt.secret, owner)(next)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/cashbooks", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
