package services

import (
	"context"
	"pvc/internal/models"
)

// Pending is the result of one asynchronous round trip.
type Pending struct {
	done     chan struct{}
	envelope *models.ResponseEnvelope
	err      error
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

func (p *Pending) resolve(env *models.ResponseEnvelope, err error) {
	p.envelope = env
	p.err = err
	close(p.done)
}

// Done is closed once the round trip has finished.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the round trip finishes or ctx ends. The envelope is
// returned alongside ErrApplication so callers can read its diagnostics.
func (p *Pending) Wait(ctx context.Context) (*models.ResponseEnvelope, error) {
	select {
	case <-p.done:
		return p.envelope, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
