package auth

// Identity is the resolved requester of a request. The zero value is not
// meaningful; an unauthenticated request carries no Identity at all.
type Identity struct {
	UserID   uint64
	Username string
}
