/*
Package session implements the dashboard's session gate.

The whole authorization model is one shared operator password and one signed
httpOnly cookie. The gate has exactly three transitions:

	cookie, err := gate.Login(password) // errors with ErrInvalidCredentials
	cookie := gate.Logout()             // unconditional
	ok := gate.Check(r)                 // stateless, fails closed

The cookie (auth_token, SameSite=Strict, path /, 24h) carries a signed issue
time encoded with gorilla/securecookie. Check never trusts cached client
state: every protected navigation re-derives session validity from the
cookie signature and expiry.
*/
package session
