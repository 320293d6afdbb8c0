// Package gallery tracks submissions so that only the newest probe batch reaches the screen.
package gallery

import (
	"context"
	"sync"

	"github.com/spf13/viper"
	"github.com/thumbgrab/thumbgrab/key"
	"github.com/thumbgrab/thumbgrab/network"
	"github.com/thumbgrab/thumbgrab/youtube"
)

// Prober is satisfied by *youtube.Prober.
type Prober interface {
	Probe(ctx context.Context, id youtube.VideoID) (*youtube.Result, error)
}

// Ticket identifies one submission. Higher Seq means newer.
type Ticket struct {
	Seq uint64
	ID  youtube.VideoID
}

// Session hands out tickets and cancels the batch each new ticket supersedes.
type Session struct {
	prober Prober

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

func NewSession(prober Prober) *Session {
	return &Session{prober: prober}
}

// NewDefault probes the configured image host through the shared client.
func NewDefault() *Session {
	return NewSession(youtube.NewProber(network.Client, viper.GetString(key.ProbeHost)))
}

// Begin starts a new submission for id. The returned context is cancelled
// as soon as a later submission begins or the session is closed.
func (s *Session) Begin(ctx context.Context, id youtube.VideoID) (Ticket, context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	s.seq++
	ctx, s.cancel = context.WithCancel(ctx)
	return Ticket{Seq: s.seq, ID: id}, ctx
}

// Current reports whether t is still the newest ticket.
func (s *Session) Current(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return t.Seq == s.seq
}

// Run probes the ticket's identifier. ctx should be the one Begin returned.
func (s *Session) Run(ctx context.Context, t Ticket) Outcome {
	result, err := s.prober.Probe(ctx, t.ID)
	return Outcome{
		Ticket: t,
		Result: result,
		Err:    err,
		Stale:  !s.Current(t),
	}
}

// Submit extracts the identifier from raw and probes it.
// An invalid input still supersedes whatever was in flight.
func (s *Session) Submit(ctx context.Context, raw string) Outcome {
	id, err := youtube.ExtractID(raw)
	ticket, ctx := s.Begin(ctx, id)
	if err != nil {
		return Outcome{Ticket: ticket, Err: err}
	}

	return s.Run(ctx, ticket)
}

// Close cancels the in-flight batch, if any.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
