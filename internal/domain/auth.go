package domain

// TokenIssuer mints an access token for the instance owner.
type TokenIssuer interface {
	Issue() (string, error)
}

// TokenVerifier checks an access token presented on a request.
type TokenVerifier interface {
	Verify(token string) error
}

// PasswordVerifier compares a stored hash against a supplied password.
type PasswordVerifier interface {
	Compare(hash, password string) error
}
