package services

import (
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"casaboard/constants"
	"casaboard/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeToken(t *testing.T, payload string) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return header + "." + body + ".signature"
}

func TestGetUserIDFromToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	token := makeToken(t, fmt.Sprintf(`{"exp":%d,"userinfo":{"userid":7,"role":%d}}`, exp, constants.RoleOwner))

	userID, role, err := GetUserIDFromToken(token)

	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
	assert.Equal(t, constants.RoleOwner, role)
}

func TestGetUserIDFromTokenExpired(t *testing.T) {
	exp := time.Now().Add(-time.Minute).Unix()
	token := makeToken(t, fmt.Sprintf(`{"exp":%d,"userinfo":{"userid":7,"role":3}}`, exp))

	_, _, err := GetUserIDFromToken(token)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeExpiredToken))
}

func TestGetUserIDFromTokenMalformed(t *testing.T) {
	cases := []string{
		"",
		"not-a-token",
		"only.two",
		makeToken(t, `{"exp":9999999999}`),                      // thiếu userinfo
		makeToken(t, `{"userinfo":{"role":2}}`),                 // thiếu userid
		makeToken(t, `{"userinfo":{"userid":"seven","role":2}}`), // userid sai kiểu
	}

	for _, token := range cases {
		_, _, err := GetUserIDFromToken(token)
		require.Error(t, err, "token %q", token)
		assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidToken), "token %q", token)
	}
}
