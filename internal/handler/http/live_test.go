// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// liveServer serves the full router and returns the feed URL.
func liveServer(t *testing.T, h *Handler) string {
	t.Helper()
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/notes/live"
}

// expectSubscribe wires a change channel for user 7. The returned channel
// is closed once the handler unsubscribes.
func expectSubscribe(m serviceMocks, changes chan struct{}) <-chan struct{} {
	released := make(chan struct{})
	m.notes.EXPECT().Subscribe(int64(7)).Return((<-chan struct{})(changes), func() { close(released) })
	return released
}

func readFrame(t *testing.T, conn *websocket.Conn) models.FeedMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	var msg models.FeedMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func waitClosed(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(3 * time.Second):
		t.Fatal("feed was not released")
	}
}

// ── liveNotes ───────────────────────────────────────────────────────────────

func TestLiveNotes_SnapshotOnConnectAndOnChange(t *testing.T) {
	h, m := newTestHandler(t)
	signedIn(m)

	changes := make(chan struct{}, 1)
	released := expectSubscribe(m, changes)
	gomock.InOrder(
		m.notes.EXPECT().ListNotes(gomock.Any(), int64(7)).
			Return([]models.NoteRecord{{ID: "n1", UserID: 7, Title: "a", Content: "b"}}, nil),
		m.notes.EXPECT().ListNotes(gomock.Any(), int64(7)).
			Return([]models.NoteRecord{{ID: "n2", UserID: 7}, {ID: "n1", UserID: 7}}, nil),
	)

	conn, _, err := websocket.DefaultDialer.Dial(liveServer(t, h), bearer(testToken))
	require.NoError(t, err)

	first := readFrame(t, conn)
	assert.Equal(t, models.FeedSnapshot, first.Type)
	require.Len(t, first.Notes, 1)
	assert.Equal(t, "n1", first.Notes[0].ID)

	changes <- struct{}{}

	second := readFrame(t, conn)
	assert.Equal(t, models.FeedSnapshot, second.Type)
	require.Len(t, second.Notes, 2)
	assert.Equal(t, "n2", second.Notes[0].ID)

	require.NoError(t, conn.Close())
	waitClosed(t, released)
}

func TestLiveNotes_RejectsQueryToken(t *testing.T) {
	h, _ := newTestHandler(t)

	// ParseToken is never expected: the query string is not a token source
	_, resp, err := websocket.DefaultDialer.Dial(liveServer(t, h)+"?token="+testToken, nil)

	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLiveNotes_SnapshotFailureSendsErrorFrame(t *testing.T) {
	h, m := newTestHandler(t)
	signedIn(m)

	released := expectSubscribe(m, make(chan struct{}))
	m.notes.EXPECT().ListNotes(gomock.Any(), int64(7)).Return(nil, errors.New("db down"))

	conn, _, err := websocket.DefaultDialer.Dial(liveServer(t, h), bearer(testToken))
	require.NoError(t, err)
	defer conn.Close()

	msg := readFrame(t, conn)
	assert.Equal(t, models.FeedError, msg.Type)
	assert.Equal(t, app.MsgInternalServerError, msg.Error)

	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseInternalServerErr))
	waitClosed(t, released)
}

func TestLiveNotes_ClosedChangeStreamEndsFeed(t *testing.T) {
	h, m := newTestHandler(t)
	signedIn(m)

	changes := make(chan struct{})
	released := expectSubscribe(m, changes)
	m.notes.EXPECT().ListNotes(gomock.Any(), int64(7)).Return(nil, nil)

	conn, _, err := websocket.DefaultDialer.Dial(liveServer(t, h), bearer(testToken))
	require.NoError(t, err)
	defer conn.Close()

	readFrame(t, conn)
	close(changes)

	waitClosed(t, released)
}

func TestLiveNotes_Pings(t *testing.T) {
	h, m := newTestHandler(t)
	h.pingInterval = 20 * time.Millisecond
	signedIn(m)

	released := expectSubscribe(m, make(chan struct{}))
	m.notes.EXPECT().ListNotes(gomock.Any(), int64(7)).Return(nil, nil)

	conn, _, err := websocket.DefaultDialer.Dial(liveServer(t, h), bearer(testToken))
	require.NoError(t, err)

	pinged := make(chan struct{}, 1)
	conn.SetPingHandler(func(data string) error {
		select {
		case pinged <- struct{}{}:
		default:
		}
		return conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(time.Second))
	})
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	select {
	case <-pinged:
	case <-time.After(3 * time.Second):
		t.Fatal("no ping received")
	}

	require.NoError(t, conn.Close())
	waitClosed(t, released)
}

func TestLiveNotes_RejectsMissingToken(t *testing.T) {
	h, _ := newTestHandler(t)

	_, resp, err := websocket.DefaultDialer.Dial(liveServer(t, h), nil)

	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLiveNotes_RejectsInvalidToken(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().ParseToken(gomock.Any(), "stale").Return(models.Token{}, errors.New("expired"))

	_, resp, err := websocket.DefaultDialer.Dial(liveServer(t, h), bearer("stale"))

	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
