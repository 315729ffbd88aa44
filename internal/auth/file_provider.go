package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mfriesen/daybook/internal/domain"
)

// identityFile is the fixed name the signed-in identity is stored under
// inside the data directory.
const identityFile = "identity.json"

// FileProvider persists the signed-in identity as a small JSON file in the
// data directory, so sign-in survives process restarts.
type FileProvider struct {
	mu       sync.Mutex
	path     string
	identity domain.Identity
	signedIn bool
	notifier notifier
}

type identityRecord struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}

// OpenFileProvider loads any previously stored identity from dir.
// A missing file means no user is present; that is not an error.
func OpenFileProvider(dir string) (*FileProvider, error) {
	p := &FileProvider{path: filepath.Join(dir, identityFile)}

	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, fmt.Errorf("reading identity file: %w", err)
	}

	var rec identityRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("invalid identity file: %w", err)
	}
	if rec.UserID != "" {
		p.identity = domain.Identity{UserID: rec.UserID, Email: rec.Email}
		p.signedIn = true
	}
	return p, nil
}

func (p *FileProvider) Current() (domain.Identity, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.identity, p.signedIn
}

func (p *FileProvider) OnChange(fn func(domain.Identity, bool)) {
	p.notifier.subscribe(fn)
}

// SignIn stores the identity and notifies listeners.
func (p *FileProvider) SignIn(identity domain.Identity) error {
	if identity.UserID == "" {
		return fmt.Errorf("identity requires a user id")
	}

	p.mu.Lock()
	p.identity = identity
	p.signedIn = true
	err := p.writeLocked(identityRecord{UserID: identity.UserID, Email: identity.Email})
	p.mu.Unlock()
	if err != nil {
		return err
	}

	p.notifier.publish(identity, true)
	return nil
}

// SignOut clears the stored identity and notifies listeners.
func (p *FileProvider) SignOut() error {
	p.mu.Lock()
	p.identity = domain.Identity{}
	p.signedIn = false
	err := os.Remove(p.path)
	p.mu.Unlock()
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing identity file: %w", err)
	}

	p.notifier.publish(domain.Identity{}, false)
	return nil
}

func (p *FileProvider) writeLocked(rec identityRecord) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding identity: %w", err)
	}
	if err := os.WriteFile(p.path, data, 0600); err != nil {
		return fmt.Errorf("writing identity file: %w", err)
	}
	return nil
}
