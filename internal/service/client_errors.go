package service

import "errors"

var (
	// ErrInvalidRemoteShare is returned when the record referenced as a
	// zone's share is not a share record.
	ErrInvalidRemoteShare = errors.New("remote record is not a valid share")

	// ErrInvalidContact is returned by AddContact for an empty name or group.
	ErrInvalidContact = errors.New("contact name and group are required")

	// ErrForeignContainer is returned when share metadata names another
	// container than the one the client is bound to.
	ErrForeignContainer = errors.New("share belongs to a different container")

	// ErrDefaultZoneNotShareable is returned when asked to share the default zone.
	ErrDefaultZoneNotShareable = errors.New("default zone cannot be shared")
)
