package ports

import "context"

// CredentialStore persists the single opaque API credential across runs.
// The credential is the only state the application keeps between cycles.
type CredentialStore interface {
	// Load returns the stored credential, or the empty string when none is saved.
	Load(ctx context.Context) (string, error)

	// Save stores the credential, replacing any previous one.
	Save(ctx context.Context, token string) error

	// Clear removes the stored credential.
	Clear(ctx context.Context) error
}
