// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FeedMessageType discriminates frames pushed over the live notes feed.
type FeedMessageType string

const (
	// FeedSnapshot carries the complete, ordered set of the owner's notes.
	FeedSnapshot FeedMessageType = "snapshot"
	// FeedError reports a server-side failure to produce a snapshot.
	FeedError FeedMessageType = "error"
)

// FeedMessage is a single frame of the live notes feed.
//
// A snapshot always replaces whatever the receiver held before; the feed
// never sends partial changes.
type FeedMessage struct {
	Type  FeedMessageType `json:"type"`
	Notes []NoteRecord    `json:"notes,omitempty"`
	Error string          `json:"error,omitempty"`
}
