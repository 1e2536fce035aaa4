package common

// SessionCookieName is the HTTP cookie that carries the signed session token.
const SessionCookieName = "gd_session"

// DefaultInstitutionalDomain is the email suffix required for a valid
// institutional account.
const DefaultInstitutionalDomain = "litoral.edu.co"
