package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-zone-keeper/internal/adapter"
	"github.com/MKhiriev/go-zone-keeper/models"
)

// ZoneChangesEnumerator drains the changeset of one zone into contacts.
type ZoneChangesEnumerator interface {
	// ContactsInZone pulls every changeset page of zoneID from db, starting at
	// since, and returns the decoded contacts in arrival order. Failed entries
	// and records that are not contacts are dropped. The default zone is
	// never queried and always yields an empty result.
	ContactsInZone(ctx context.Context, db adapter.Database, zoneID models.ZoneID, since models.ChangeToken) ([]models.Contact, error)
}

// ScopeFetcher builds the record groups of one database scope.
type ScopeFetcher interface {
	// FetchGroups lists the zones of scope, skips the default zone and
	// enumerates the remaining zones concurrently. Groups are returned in
	// completion order. The first enumeration error cancels the rest and is
	// returned without any partial result.
	FetchGroups(ctx context.Context, scope models.Scope) ([]models.RecordGroup, error)
}

// ContactsSyncService owns the client's view of the record store.
type ContactsSyncService interface {
	// Refresh moves the state to Loading, fetches both scopes and finishes
	// with exactly one of Loaded or Failed. A refresh superseded by a newer
	// one never overwrites the newer state. The fetch error is returned as
	// well as recorded in the state.
	Refresh(ctx context.Context) error

	// FetchPrivateAndShared fetches both scopes concurrently.
	FetchPrivateAndShared(ctx context.Context) (private []models.RecordGroup, shared []models.RecordGroup, err error)

	// State returns the current state snapshot.
	State() models.SyncState

	// Subscribe returns a channel that always holds the latest state and a
	// function that cancels the subscription.
	Subscribe() (<-chan models.SyncState, func())
}

// ContactService mutates contacts.
type ContactService interface {
	// AddContact ensures the zone named group exists in the private scope and
	// saves a new contact record into it.
	AddContact(ctx context.Context, name, phoneNumber, group string) (models.Contact, error)
}

// ShareService coordinates zone-wide shares.
type ShareService interface {
	// FetchOrCreateShare returns the share of group's zone, creating it on
	// first use, together with the metadata a remote principal needs to
	// accept it. Repeated calls for the same zone never create a second share.
	FetchOrCreateShare(ctx context.Context, group models.RecordGroup) (models.Share, models.ShareMetadata, error)

	// AcceptShare joins the current principal to the share described by
	// metadata. The shared zone shows up in the shared scope afterwards.
	AcceptShare(ctx context.Context, metadata models.ShareMetadata) (models.Zone, error)
}

// ClientAuthService authenticates the client principal against the container.
type ClientAuthService interface {
	// Register creates the principal and leaves the container authenticated.
	Register(ctx context.Context, user models.User) error

	// Login authenticates the principal and leaves the container authenticated.
	Login(ctx context.Context, user models.User) error
}

// ClientSyncJob defines the contract for a background worker that
// periodically refreshes the contacts view.
type ClientSyncJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
