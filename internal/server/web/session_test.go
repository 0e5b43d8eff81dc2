package web

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/shopfront/internal/common"
	"github.com/dmitrijs2005/shopfront/internal/cryptox"
	"github.com/dmitrijs2005/shopfront/internal/server/models"
)

func newTestCodec(t *testing.T) *SessionCodec {
	t.Helper()
	key := make([]byte, 32)
	for i := range key {
		key[i] = 0x42
	}
	box, err := cryptox.NewBox(base64.StdEncoding.EncodeToString(key))
	require.NoError(t, err)
	return NewSessionCodec(box)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == common.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestSessionCodec_RoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	session := &models.Session{
		Cart:        []models.CartLine{{ProductID: "p1", Name: "CRM System", Price: 49.99, Quantity: 2}},
		GuestID:     "abc123",
		QuizAnswers: map[string]string{"department": "sales"},
	}

	rec := httptest.NewRecorder()
	require.NoError(t, codec.Save(rec, session))

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.NotContains(t, cookie.Value, "CRM System")

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(cookie)

	loaded := codec.Load(req)
	assert.Equal(t, session, loaded)
}

func TestSessionCodec_MissingCookie(t *testing.T) {
	codec := newTestCodec(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	loaded := codec.Load(req)

	assert.Equal(t, &models.Session{}, loaded)
	assert.True(t, loaded.IsEmpty())
}

func TestSessionCodec_TamperedCookie(t *testing.T) {
	codec := newTestCodec(t)

	rec := httptest.NewRecorder()
	require.NoError(t, codec.Save(rec, &models.Session{GuestID: "abc123"}))
	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)

	tests := []struct {
		name  string
		value string
	}{
		{"not base64", "%%%not-base64%%%"},
		{"valid base64, not a ciphertext", base64.RawURLEncoding.EncodeToString([]byte("garbage"))},
		{"flipped bit", flipLastByte(cookie.Value)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/cart", nil)
			req.AddCookie(&http.Cookie{Name: common.SessionCookieName, Value: tt.value})

			loaded := codec.Load(req)
			assert.True(t, loaded.IsEmpty())
		})
	}
}

func TestSessionCodec_ForeignKeyCookie(t *testing.T) {
	codec := newTestCodec(t)

	otherKey := make([]byte, 32)
	for i := range otherKey {
		otherKey[i] = 0x99
	}
	otherBox, err := cryptox.NewBox(base64.StdEncoding.EncodeToString(otherKey))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, NewSessionCodec(otherBox).Save(rec, &models.Session{GuestID: "abc123"}))
	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(cookie)

	assert.True(t, codec.Load(req).IsEmpty())
}

func TestSessionCodec_EmptySessionClearsCookie(t *testing.T) {
	codec := newTestCodec(t)

	rec := httptest.NewRecorder()
	require.NoError(t, codec.Save(rec, &models.Session{}))

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.Empty(t, cookie.Value)
}

func flipLastByte(encoded string) string {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil || len(raw) == 0 {
		return encoded
	}
	raw[len(raw)-1] ^= 0x01
	return base64.RawURLEncoding.EncodeToString(raw)
}
