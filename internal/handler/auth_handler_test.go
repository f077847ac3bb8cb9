package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupSigninFlow(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)

	// Signup
	w := postJSON(router, "/api/signup", map[string]any{
		"username": "alice",
		"email":    "alice@x.com",
		"password": "pw123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["userId"])

	// Signin with the right password
	w = postJSON(router, "/api/signin", map[string]any{
		"email":    "alice@x.com",
		"password": "pw123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body = decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	user := body["user"].(map[string]any)
	assert.Equal(t, float64(1), user["id"])
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "alice@x.com", user["email"])

	// The password hash must not appear anywhere in the response
	assert.NotContains(t, strings.ToLower(w.Body.String()), "password")

	// Wrong password
	w = postJSON(router, "/api/signin", map[string]any{
		"email":    "alice@x.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid email or password"}`, w.Body.String())
}

func TestSignupDuplicates(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)

	w := postJSON(router, "/api/signup", map[string]any{
		"username": "alice",
		"email":    "alice@x.com",
		"password": "pw123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Same email, different username
	w = postJSON(router, "/api/signup", map[string]any{
		"username": "bob",
		"email":    "alice@x.com",
		"password": "pw123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Same username, different email
	w = postJSON(router, "/api/signup", map[string]any{
		"username": "alice",
		"email":    "bob@x.com",
		"password": "pw123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSignupMissingFields(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)

	testCases := []struct {
		name string
		body map[string]any
	}{
		{"no username", map[string]any{"email": "a@x.com", "password": "pw"}},
		{"no email", map[string]any{"username": "a", "password": "pw"}},
		{"no password", map[string]any{"username": "a", "email": "a@x.com"}},
		{"empty password", map[string]any{"username": "a", "email": "a@x.com", "password": ""}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(router, "/api/signup", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSigninIndistinguishableFailures(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)

	w := postJSON(router, "/api/signup", map[string]any{
		"username": "alice",
		"email":    "alice@x.com",
		"password": "pw123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Unknown email and wrong password must yield identical responses
	unknown := postJSON(router, "/api/signin", map[string]any{
		"email":    "nobody@x.com",
		"password": "pw123",
	})
	wrong := postJSON(router, "/api/signin", map[string]any{
		"email":    "alice@x.com",
		"password": "nope",
	})

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, unknown.Body.String(), wrong.Body.String())
}

func TestSigninMissingFields(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)

	w := postJSON(router, "/api/signin", map[string]any{"email": "a@x.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(router, "/api/signin", map[string]any{"password": "pw"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
