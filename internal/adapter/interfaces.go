// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's view of the remote record store.
//
// [Container] is the handle to one record-store container: it authenticates
// the principal and hands out a [Database] per scope. [Database] is the narrow
// contract the sync core depends on: list and fetch zones, enumerate zone
// changes, save zones, records and shares. The package ships an HTTP/REST
// implementation ([NewHTTPContainer]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-zone-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Container is a record-store container bound to one principal.
type Container interface {
	// ID returns the container identifier every request is scoped to.
	ID() string

	// Database returns the database of the given scope. The returned value
	// shares the container's credentials.
	Database(scope models.Scope) Database

	// SetToken stores the bearer token attached to subsequent requests.
	SetToken(token string)

	// Token returns the current bearer token, or an empty string.
	Token() string

	// Register creates the principal and stores the returned bearer token.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the principal and stores the returned bearer token.
	Login(ctx context.Context, user models.User) (models.User, error)

	// AcceptShare adds the current principal as a participant of the share
	// described by metadata and returns the zone that became visible in the
	// shared scope.
	AcceptShare(ctx context.Context, metadata models.ShareMetadata) (models.Zone, error)
}

// Database is one scope of a container.
type Database interface {
	// Scope reports which partition this database exposes.
	Scope() models.Scope

	// AllZones lists every zone visible in the scope, default zone included.
	AllZones(ctx context.Context) ([]models.Zone, error)

	// FetchZone returns one zone with its current share reference.
	FetchZone(ctx context.Context, zoneID models.ZoneID) (models.Zone, error)

	// ZoneChanges returns the changeset of zoneID recorded after since.
	// A nil since requests changes from the beginning.
	ZoneChanges(ctx context.Context, zoneID models.ZoneID, since models.ChangeToken) (models.ZoneChanges, error)

	// SaveZone creates the zone if it does not exist and returns the stored
	// zone with its owner filled in.
	SaveZone(ctx context.Context, zone models.Zone) (models.Zone, error)

	// SaveRecord stores record and returns it with a fresh change tag.
	SaveRecord(ctx context.Context, record models.Record) (models.Record, error)

	// SaveShare creates the zone-wide share of zoneID and returns the share
	// record. Returns [ErrConflict] if the zone already has a share.
	SaveShare(ctx context.Context, zoneID models.ZoneID, title string) (models.Record, error)

	// FetchRecord returns the record identified by recordID.
	FetchRecord(ctx context.Context, recordID models.RecordID) (models.Record, error)
}
