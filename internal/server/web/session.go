package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/shopfront/internal/common"
	"github.com/dmitrijs2005/shopfront/internal/cryptox"
	"github.com/dmitrijs2005/shopfront/internal/server/models"
)

// SessionCodec round-trips the typed session state through an HttpOnly
// cookie. The payload is the session JSON sealed by the cipher box, so the
// client can neither read nor forge it; AES-GCM authentication doubles as
// the integrity check.
type SessionCodec struct {
	box *cryptox.Box
}

func NewSessionCodec(box *cryptox.Box) *SessionCodec {
	return &SessionCodec{box: box}
}

// Load returns the request's session state. A missing, unreadable, or
// tampered cookie yields a fresh empty session, never an error: session
// faults degrade exactly like an anonymous request.
func (c *SessionCodec) Load(r *http.Request) *models.Session {
	cookie, err := r.Cookie(common.SessionCookieName)
	if err != nil {
		return &models.Session{}
	}

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return &models.Session{}
	}

	plaintext, err := c.box.Decrypt(raw)
	if err != nil {
		return &models.Session{}
	}

	session := &models.Session{}
	if err := json.Unmarshal([]byte(plaintext), session); err != nil {
		return &models.Session{}
	}

	return session
}

// Save writes the session back to the response. An empty session clears the
// cookie instead of storing an empty payload.
func (c *SessionCodec) Save(w http.ResponseWriter, session *models.Session) error {
	if session.IsEmpty() {
		c.Clear(w)
		return nil
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	sealed, err := c.box.Encrypt(string(payload))
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(sealed),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear deletes the session cookie.
func (c *SessionCodec) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
