// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notes

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// State is a point-in-time copy of what a [Store] holds.
type State struct {
	OwnerID int64

	// Notes is ordered as delivered by the feed, most recently updated first.
	Notes []models.Note

	// Categories and Tags are the distinct values across Notes, in order of
	// first appearance.
	Categories []string
	Tags       []string

	// Loading is true from subscribing until the first snapshot arrives.
	Loading bool

	// SyncErr is set while the live feed is unavailable. It is cleared by
	// the next snapshot or owner change.
	SyncErr error
}

// Store holds the current user's notes as last pushed by the live feed.
//
// At most one subscription is active at a time. Changing the owner cancels
// the previous subscription and waits for its delivery goroutine to exit
// before the next one is opened, so a snapshot of a previous owner is never
// applied.
type Store struct {
	feed   Feed
	logger *logger.Logger

	// ownerMu serializes SetOwner and Close.
	ownerMu sync.Mutex

	mu     sync.Mutex
	state  State
	gen    uint64
	sub    Subscription
	cancel context.CancelFunc
	done   chan struct{}

	changed chan struct{}
}

func NewStore(feed Feed, logger *logger.Logger) *Store {
	return &Store{
		feed:    feed,
		logger:  logger,
		changed: make(chan struct{}, 1),
	}
}

// SetOwner switches the store to ownerID's notes. Zero means signed out and
// leaves the store empty. Setting the current owner again is a no-op unless
// the previous subscribe attempt failed.
func (s *Store) SetOwner(ctx context.Context, ownerID int64) {
	s.ownerMu.Lock()
	defer s.ownerMu.Unlock()

	s.mu.Lock()
	if ownerID == s.state.OwnerID && (ownerID == 0 || s.sub != nil) {
		s.mu.Unlock()
		return
	}
	s.gen++
	gen := s.gen
	prevSub, prevCancel, prevDone := s.detachLocked()
	s.state = State{OwnerID: ownerID, Loading: ownerID != 0}
	s.mu.Unlock()

	s.release(prevSub, prevCancel, prevDone)
	s.notify()

	if ownerID == 0 {
		s.logger.Debug().Msg("notes store cleared")
		return
	}

	log := s.logger.WithOwner(ownerID)

	subCtx, cancel := context.WithCancel(ctx)
	sub, err := s.feed.Subscribe(subCtx, ownerID)
	if err != nil {
		cancel()
		log.Err(err).Msg("subscribing to notes failed")
		s.fail(gen, err)
		return
	}

	done := make(chan struct{})
	s.mu.Lock()
	s.sub, s.cancel, s.done = sub, cancel, done
	s.mu.Unlock()

	log.Debug().Msg("subscribed to notes")
	go s.deliver(subCtx, gen, sub, done, log)
}

// Close releases the active subscription. The last state stays readable.
func (s *Store) Close() {
	s.ownerMu.Lock()
	defer s.ownerMu.Unlock()

	s.mu.Lock()
	s.gen++
	sub, cancel, done := s.detachLocked()
	s.mu.Unlock()

	s.release(sub, cancel, done)
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Notes = slices.Clone(s.state.Notes)
	st.Categories = slices.Clone(s.state.Categories)
	st.Tags = slices.Clone(s.state.Tags)
	return st
}

// Changed is signalled after every state change. Signals coalesce, so a
// reader should call State once per receive.
func (s *Store) Changed() <-chan struct{} {
	return s.changed
}

func (s *Store) deliver(ctx context.Context, gen uint64, sub Subscription, done chan struct{}, log *logger.Logger) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return
		case records, ok := <-sub.Snapshots():
			if !ok {
				if ctx.Err() != nil {
					return
				}
				err := sub.Err()
				if err == nil {
					err = ErrFeedClosed
				}
				log.Err(err).Msg("notes feed ended")
				s.fail(gen, err)
				return
			}
			s.apply(gen, records)
		}
	}
}

// apply replaces the collection with records unless gen is stale.
func (s *Store) apply(gen uint64, records []models.NoteRecord) {
	notes := make([]models.Note, 0, len(records))
	for _, r := range records {
		notes = append(notes, r.ToNote())
	}
	categories, tags := Vocabularies(notes)

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.state.Notes = notes
	s.state.Categories = categories
	s.state.Tags = tags
	s.state.Loading = false
	s.state.SyncErr = nil
	s.mu.Unlock()

	s.notify()
}

func (s *Store) fail(gen uint64, err error) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.state.Loading = false
	s.state.SyncErr = fmt.Errorf("%w: %w", ErrSyncUnavailable, err)
	s.mu.Unlock()

	s.notify()
}

func (s *Store) detachLocked() (Subscription, context.CancelFunc, chan struct{}) {
	sub, cancel, done := s.sub, s.cancel, s.done
	s.sub, s.cancel, s.done = nil, nil, nil
	return sub, cancel, done
}

// release cancels a subscription and blocks until its goroutine is gone.
func (s *Store) release(sub Subscription, cancel context.CancelFunc, done chan struct{}) {
	if sub == nil {
		return
	}
	cancel()
	if err := sub.Close(); err != nil {
		s.logger.Warn().Err(err).Msg("closing notes subscription")
	}
	<-done
}

func (s *Store) notify() {
	select {
	case s.changed <- struct{}{}:
	default:
	}
}

// Vocabularies returns the distinct categories and tags of notes, each in
// order of first appearance. Comparison is exact and case-sensitive.
func Vocabularies(notes []models.Note) (categories, tags []string) {
	categories, tags = []string{}, []string{}
	seenCategories := make(map[string]struct{})
	seenTags := make(map[string]struct{})

	for _, n := range notes {
		for _, c := range n.Categories {
			if _, ok := seenCategories[c]; !ok {
				seenCategories[c] = struct{}{}
				categories = append(categories, c)
			}
		}
		for _, t := range n.Tags {
			if _, ok := seenTags[t]; !ok {
				seenTags[t] = struct{}{}
				tags = append(tags, t)
			}
		}
	}

	return categories, tags
}
