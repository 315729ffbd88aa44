package domain

// Identity is the signed-in user as seen by the core: a required id and a
// display label. Credential handling lives entirely outside this module.
type Identity struct {
	UserID string
	Email  string
}
