// Package auth exposes the signed-in identity to the rest of the module.
// It only answers "who, if anyone, is present" and publishes changes;
// credentials are never handled here.
package auth

import (
	"sync"

	"github.com/mfriesen/daybook/internal/domain"
)

// Provider is the auth collaborator: the current user, or none, plus a
// change-notification stream.
type Provider interface {
	Current() (domain.Identity, bool)
	OnChange(fn func(identity domain.Identity, signedIn bool))
}

// StaticProvider always reports the same identity. Useful for tests and
// for wiring a pre-resolved user.
type StaticProvider struct {
	Identity domain.Identity
	SignedIn bool
}

func (p *StaticProvider) Current() (domain.Identity, bool) {
	return p.Identity, p.SignedIn
}

func (p *StaticProvider) OnChange(func(domain.Identity, bool)) {}

// notifier implements the change stream shared by mutable providers.
type notifier struct {
	mu        sync.Mutex
	listeners []func(domain.Identity, bool)
}

func (n *notifier) subscribe(fn func(domain.Identity, bool)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
}

func (n *notifier) publish(identity domain.Identity, signedIn bool) {
	n.mu.Lock()
	listeners := append(([]func(domain.Identity, bool))(nil), n.listeners...)
	n.mu.Unlock()
	for _, fn := range listeners {
		fn(identity, signedIn)
	}
}
