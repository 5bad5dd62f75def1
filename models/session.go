// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the locally persisted sign-in state of the client.
type Session struct {
	UserID    int64     `json:"user_id"`
	Login     string    `json:"login"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}
