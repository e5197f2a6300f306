package auth

import "sync"

// IdentityProvider holds the current authenticated identity and notifies
// subscribers when it changes. It replaces ambient global auth state with an
// explicit object: embedding callers construct one at startup and pass it to
// the components that need it.
type IdentityProvider struct {
	mu      sync.RWMutex
	current Identity
	subs    map[int]chan Identity
	nextSub int
}

func NewIdentityProvider() *IdentityProvider {
	return &IdentityProvider{subs: make(map[int]chan Identity)}
}

// Current returns the identity last set, or the zero Identity when nobody is
// logged in.
func (p *IdentityProvider) Current() Identity {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Set records a new identity and notifies all subscribers. A subscriber that
// is not draining its channel is skipped rather than blocked on.
func (p *IdentityProvider) Set(id Identity) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = id
	for _, ch := range p.subs {
		select {
		case ch <- id:
		default:
		}
	}
}

// Subscribe returns a channel receiving identity changes and a cancel
// function that must be called when the subscriber is done.
func (p *IdentityProvider) Subscribe() (<-chan Identity, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := p.nextSub
	p.nextSub++

	ch := make(chan Identity, 1)
	p.subs[key] = ch

	cancel := func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if _, ok := p.subs[key]; ok {
			delete(p.subs, key)
			close(ch)
		}
	}
	return ch, cancel
}
