// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package broker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_PublishReachesOnlyOwner(t *testing.T) {
	b := New()

	annCh, cancelAnn := b.Subscribe(1)
	defer cancelAnn()
	bobCh, cancelBob := b.Subscribe(2)
	defer cancelBob()

	b.Publish(1)

	select {
	case <-annCh:
	default:
		t.Fatal("expected a signal for user 1")
	}

	select {
	case <-bobCh:
		t.Fatal("user 2 must not be signalled")
	default:
	}
}

func TestBroker_Coalesces(t *testing.T) {
	b := New()
	ch, cancel := b.Subscribe(1)
	defer cancel()

	for range 10 {
		b.Publish(1)
	}

	<-ch
	select {
	case <-ch:
		t.Fatal("expected a single pending signal")
	default:
	}
}

func TestBroker_FanOut(t *testing.T) {
	b := New()
	first, c1 := b.Subscribe(7)
	defer c1()
	second, c2 := b.Subscribe(7)
	defer c2()

	require.Len(t, b.subs[7], 2)
	b.Publish(7)

	<-first
	<-second
}

func TestBroker_CancelClosesAndUnregisters(t *testing.T) {
	b := New()
	ch, cancel := b.Subscribe(3)

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	assert.NotContains(t, b.subs, int64(3))

	// publishing after cancel must not panic
	b.Publish(3)
}

func TestBroker_Concurrent(t *testing.T) {
	b := New()
	var wg sync.WaitGroup

	for i := range 20 {
		wg.Add(1)
		go func(user int64) {
			defer wg.Done()
			ch, cancel := b.Subscribe(user)
			b.Publish(user)
			<-ch
			cancel()
		}(int64(i % 3))
	}

	wg.Wait()
	assert.Empty(t, b.subs)
}
