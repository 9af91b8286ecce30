// Package confirm issues single-use tokens that gate destructive operations.
// A delete is requested first, the UI asks the user, and only a redeemed token
// performs the delete.
package confirm

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/thenoetrevino/huddle/internal/models"
)

// Kind is the entity a token targets
type Kind string

const (
	KindProject Kind = "project"
	KindMember  Kind = "member"
)

// Token identifies a pending confirmation
type Token string

// ErrUnknownToken is returned for tokens that were never issued, were already
// redeemed, or target a different kind of entity
var ErrUnknownToken = fmt.Errorf("%w: unknown or expired confirmation token", models.ErrNotFound)

type pending struct {
	kind Kind
	id   int
}

// Registry tracks pending confirmations
type Registry struct {
	mu      sync.Mutex
	pending map[Token]pending
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{pending: make(map[Token]pending)}
}

// Issue records a pending confirmation for id and returns its token
func (r *Registry) Issue(kind Kind, id int) Token {
	token := Token(uuid.NewString())
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending[token] = pending{kind: kind, id: id}
	return token
}

// Redeem consumes token and returns the id it was issued for
func (r *Registry) Redeem(token Token, kind Kind) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pending[token]
	if !ok || p.kind != kind {
		return 0, ErrUnknownToken
	}
	delete(r.pending, token)
	return p.id, nil
}

// Cancel drops a pending confirmation. Unknown tokens are ignored.
func (r *Registry) Cancel(token Token) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pending, token)
}

// Pending returns the number of outstanding confirmations
func (r *Registry) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
