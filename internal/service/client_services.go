// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

// ClientServices is the client's business layer.
type ClientServices struct {
	AuthService ClientAuthService
}

func NewClientServices(storages *store.ClientStorages, adapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(storages, adapter, logger),
	}
}
