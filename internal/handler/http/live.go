// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/gorilla/websocket"
)

const (
	liveWriteTimeout = 10 * time.Second
	// a client must answer pings within this many intervals
	livePongIntervals = 2
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// the feed is authenticated by token, not by cookie
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveNotes streams the caller's notes over a websocket. A full snapshot is
// pushed on connect and after every change; an error frame is sent and the
// connection closed when a snapshot can't be produced.
func (h *Handler) liveNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	// subscribe before the first snapshot so no change falls in between
	changes, unsubscribe := h.services.NoteService.Subscribe(userID)
	defer unsubscribe()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	pingInterval := h.pingInterval
	if pingInterval <= 0 {
		pingInterval = 30 * time.Second
	}
	go readPump(conn, cancel, pingInterval*livePongIntervals)

	log.Info().Int64("user_id", userID).Msg("live feed opened")
	defer log.Info().Int64("user_id", userID).Msg("live feed closed")

	if !h.pushSnapshot(ctx, conn, userID) {
		return
	}

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			if !h.pushSnapshot(ctx, conn, userID) {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(liveWriteTimeout)); err != nil {
				log.Debug().Err(err).Msg("live feed ping failed")
				return
			}
		}
	}
}

// pushSnapshot reports whether the feed can go on.
func (h *Handler) pushSnapshot(ctx context.Context, conn *websocket.Conn, userID int64) bool {
	log := logger.FromContext(ctx)

	records, err := h.services.NoteService.ListNotes(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("building live snapshot failed")
		_ = writeFrame(conn, models.FeedMessage{Type: models.FeedError, Error: app.MsgInternalServerError})
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, ""),
			time.Now().Add(liveWriteTimeout))
		return false
	}
	if records == nil {
		records = []models.NoteRecord{}
	}

	if err = writeFrame(conn, models.FeedMessage{Type: models.FeedSnapshot, Notes: records}); err != nil {
		log.Debug().Err(err).Msg("writing live snapshot failed")
		return false
	}
	return true
}

func writeFrame(conn *websocket.Conn, msg models.FeedMessage) error {
	if err := conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(msg)
}

// readPump discards client messages and keeps the read deadline moving on
// pongs. It cancels the feed when the client goes away.
func readPump(conn *websocket.Conn, cancel context.CancelFunc, pongWait time.Duration) {
	defer cancel()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
