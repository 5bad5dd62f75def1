// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package broker fans "notes of user N changed" signals out to every live
// feed connection of that user.
//
// Signals carry no data. A subscriber that is slow to react sees a single
// pending signal no matter how many changes happened meanwhile, and then
// reloads the full snapshot.
package broker

import (
	"sync"
)

// Broker is safe for concurrent use. The zero value is not usable; call New.
type Broker struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[int64]map[uint64]chan struct{}
}

func New() *Broker {
	return &Broker{subs: make(map[int64]map[uint64]chan struct{})}
}

// Subscribe registers interest in userID. The returned channel receives a
// value after every Publish for that user; cancel unregisters and closes it.
// cancel is idempotent.
func (b *Broker) Subscribe(userID int64) (<-chan struct{}, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	ch := make(chan struct{}, 1)

	if b.subs[userID] == nil {
		b.subs[userID] = make(map[uint64]chan struct{})
	}
	b.subs[userID][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			delete(b.subs[userID], id)
			if len(b.subs[userID]) == 0 {
				delete(b.subs, userID)
			}
			close(ch)
		})
	}

	return ch, cancel
}

// Publish signals every subscriber of userID without blocking.
func (b *Broker) Publish(userID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs[userID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
