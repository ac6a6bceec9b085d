package domain

// Roles carried in the bearer token.
const (
	RoleAdmin    = "admin"
	RoleTerminal = "terminal" // a point-of-sale device; may move balances only
)
