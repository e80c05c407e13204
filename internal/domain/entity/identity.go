package entity

// Identity is the authenticated caller behind a socket or HTTP request.
type Identity struct {
	UserID   string // Stable user identifier issued by the identity provider.
	Provider string // "jwt" or "firebase".
}
