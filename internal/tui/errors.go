// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-zone-keeper/internal/adapter"
	"github.com/MKhiriev/go-zone-keeper/internal/service"
)

var (
	errNoGroupSelected   = errors.New("no group selected")
	errSharedGroupShared = errors.New("only your own groups can be shared")
)

// humanizeError turns transport and domain errors into one line for the
// status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Session expired, restart to log in again"
	case errors.Is(err, adapter.ErrBadContainer), errors.Is(err, service.ErrForeignContainer):
		return "The share belongs to another container"
	case errors.Is(err, service.ErrInvalidContact):
		return "Name and group are required"
	case errors.Is(err, service.ErrDefaultZoneNotShareable):
		return "The default group cannot be shared"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the record store is unavailable"
	}

	return err.Error()
}
