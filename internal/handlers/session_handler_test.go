package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssueTokenSetsSessionCookie(t *testing.T) {
	handler, _, _, codec := newTestServer()

	rec := doRequest(handler, http.MethodPost, "/jwt", []byte(`{"email":"me@x.com"}`), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "token", cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure) // development wiring

	email, err := codec.Verify(cookie.Value)
	assert.NoError(t, err)
	assert.Equal(t, "me@x.com", email)
}

func TestIssueTokenRejectsBadPayload(t *testing.T) {
	handler, _, _, _ := newTestServer()

	for _, body := range []string{`{}`, `{"email":"not-an-email"}`, `not json`} {
		rec := doRequest(handler, http.MethodPost, "/jwt", []byte(body), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.Empty(t, rec.Result().Cookies())
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	handler, _, _, _ := newTestServer()

	rec := doRequest(handler, http.MethodPost, "/logout", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
