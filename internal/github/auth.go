package github

import "net/http"

// Authenticator decorates outgoing requests with credentials.
type Authenticator interface {
	Authenticate(req *http.Request)
}

// TokenAuth sends a personal access token using the "token" scheme.
type TokenAuth string

// Authenticate sets the Authorization header. An empty token leaves the
// request anonymous, which is enough for reading public repositories.
func (t TokenAuth) Authenticate(req *http.Request) {
	if t == "" {
		return
	}
	req.Header.Set("Authorization", "token "+string(t))
}
