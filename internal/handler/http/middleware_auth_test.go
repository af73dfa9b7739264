package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAuthKey = "shared-secret"

func issueTestToken(t *testing.T, key string, ttl time.Duration) string {
	t.Helper()

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "conf-client",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	signed, err := token.SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func TestAuth_MissingHeaderRejected(t *testing.T) {
	h := newTestHandler(t, testAuthKey, nil)

	response := doGet(t, h, "/api/config", "")

	assert.Equal(t, http.StatusUnauthorized, response.Code)
}

func TestAuth_ValidTokenAccepted(t *testing.T) {
	h := newTestHandler(t, testAuthKey, nil)

	response := doGet(t, h, "/api/config", issueTestToken(t, testAuthKey, time.Minute))

	assert.Equal(t, http.StatusOK, response.Code)
}

func TestAuth_WrongKeyRejected(t *testing.T) {
	h := newTestHandler(t, testAuthKey, nil)

	response := doGet(t, h, "/api/config", issueTestToken(t, "other-key", time.Minute))

	assert.Equal(t, http.StatusUnauthorized, response.Code)
}

func TestAuth_ExpiredTokenRejected(t *testing.T) {
	h := newTestHandler(t, testAuthKey, nil)

	response := doGet(t, h, "/api/config", issueTestToken(t, testAuthKey, -time.Minute))

	assert.Equal(t, http.StatusUnauthorized, response.Code)
}

func TestAuth_VersionRouteStaysOpen(t *testing.T) {
	h := newTestHandler(t, testAuthKey, nil)

	response := doGet(t, h, "/api/version", "")

	assert.Equal(t, http.StatusOK, response.Code)
}

func TestAuth_NoKeyDisablesAuth(t *testing.T) {
	h := newTestHandler(t, "", nil)

	response := doGet(t, h, "/api/config", "")

	assert.Equal(t, http.StatusOK, response.Code)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "well formed", header: "Bearer abc", want: "abc"},
		{name: "missing token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
