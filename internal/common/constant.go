package common

// AccessTokenCookieName is the HTTP cookie that carries the signed access
// token. Absence or invalidity of the cookie always means "anonymous".
const AccessTokenCookieName = "access_token"

// SessionCookieName carries the encrypted per-visitor session state
// (cart, guest id, quiz answers).
const SessionCookieName = "session"
