package interfaces

// ITokenService issues and verifies bearer credentials. Verify is stateless:
// it yields the principal (username) encoded in a valid token and an error for
// anything else, without distinguishing missing, malformed or expired.
type ITokenService interface {
	Issue(username string) (string, error)
	Verify(token string) (string, error)
}
