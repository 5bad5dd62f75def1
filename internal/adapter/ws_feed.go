// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/notes"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/gorilla/websocket"
)

const liveFeedPath = "/api/notes/live"

const closeWriteTimeout = time.Second

// Subscribe dials the websocket live feed. The connection lives until ctx
// is cancelled, Close is called, or the server ends it.
func (h *httpServerAdapter) Subscribe(ctx context.Context, ownerID int64) (notes.Subscription, error) {
	if err := h.checkOwner(ownerID); err != nil {
		return nil, err
	}

	dialer := &websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: h.timeout,
	}
	header := http.Header{}
	header.Set("Authorization", "Bearer "+h.Token())

	conn, resp, err := dialer.DialContext(ctx, toWebsocketURL(h.baseURL)+liveFeedPath, header)
	if err != nil {
		if resp != nil {
			defer resp.Body.Close()
			if statusErr := statusError(resp.StatusCode, err.Error()); statusErr != nil {
				return nil, fmt.Errorf("dial live feed: %w", statusErr)
			}
		}
		return nil, fmt.Errorf("dial live feed: %w", err)
	}

	sub := newWSSubscription(conn, h.logger.WithOwner(ownerID))
	go sub.readLoop()
	go func() {
		select {
		case <-ctx.Done():
			_ = sub.Close()
		case <-sub.closed:
		}
	}()

	return sub, nil
}

func toWebsocketURL(baseURL string) string {
	switch {
	case strings.HasPrefix(baseURL, "https://"):
		return "wss://" + strings.TrimPrefix(baseURL, "https://")
	case strings.HasPrefix(baseURL, "http://"):
		return "ws://" + strings.TrimPrefix(baseURL, "http://")
	default:
		return baseURL
	}
}

type wsSubscription struct {
	conn      *websocket.Conn
	snapshots chan []models.NoteRecord

	closed    chan struct{}
	closeOnce sync.Once

	mu  sync.Mutex
	err error

	logger *logger.Logger
}

func newWSSubscription(conn *websocket.Conn, logger *logger.Logger) *wsSubscription {
	return &wsSubscription{
		conn:      conn,
		snapshots: make(chan []models.NoteRecord),
		closed:    make(chan struct{}),
		logger:    logger,
	}
}

func (s *wsSubscription) Snapshots() <-chan []models.NoteRecord {
	return s.snapshots
}

func (s *wsSubscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close ends the subscription. Err stays nil after a local close.
func (s *wsSubscription) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.closed)
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeWriteTimeout))
		err = s.conn.Close()
	})
	return err
}

func (s *wsSubscription) readLoop() {
	defer close(s.snapshots)

	for {
		var msg models.FeedMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			if s.isClosed() {
				return
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.finish(ErrFeedClosedByServer)
				return
			}
			s.finish(fmt.Errorf("read live feed: %w", err))
			return
		}

		switch msg.Type {
		case models.FeedSnapshot:
			records := msg.Notes
			if records == nil {
				records = []models.NoteRecord{}
			}
			select {
			case s.snapshots <- records:
			case <-s.closed:
				return
			}
		case models.FeedError:
			s.finish(fmt.Errorf("%w: %s", ErrFeedError, msg.Error))
			return
		default:
			s.logger.Warn().Str("type", string(msg.Type)).Msg("unknown live feed message")
		}
	}
}

// finish records err and drops the connection.
func (s *wsSubscription) finish(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()

	s.logger.Err(err).Msg("live feed ended")
	_ = s.Close()
}

func (s *wsSubscription) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}
