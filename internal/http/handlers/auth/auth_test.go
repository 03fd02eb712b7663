package auth

import (
	"adikart/internal/core/domain/user"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToken(t *testing.T) {
	cases := []struct {
		id     string
		header string
		token  user.SessionToken
		ok     bool
	}{
		{id: "valid", header: "Bearer test-token", token: user.SessionToken("test-token"), ok: true},
		{id: "no-header", header: "", ok: false},
		{id: "scheme-only", header: "Bearer ", ok: false},
		{id: "wrong-scheme", header: "Basic test-token", ok: false},
		{id: "prefixed-scheme", header: "xBearer test-token", ok: false},
		{id: "lowercase-scheme", header: "bearer test-token", ok: false},
		{id: "too-long", header: "Bearer " + strings.Repeat("a", AUTH_TOKEN_MAX_LEN+1), ok: false},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if testcase.header != "" {
				r.Header.Set("authorization", testcase.header)
			}

			token, ok := ParseToken(r)

			require.Equal(t, testcase.ok, ok)
			assert.Equal(t, testcase.token, token)
		})
	}
}
