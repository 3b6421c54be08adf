// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-zone-keeper/internal/config"
	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/models"
)

// openTestSQLite opens a migrated database in a temp dir. The test is skipped
// when the sqlite driver is unusable, e.g. in CGO_ENABLED=0 builds.
func openTestSQLite(t *testing.T) *DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "zones.db")
	db, err := NewDB(context.Background(), config.DB{DSN: dsn}, logger.Nop())
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	require.Equal(t, DialectSQLite, db.Dialect())
	require.NoError(t, db.Migrate())

	return db
}

func TestSQLite_RecordStoreRoundTrip(t *testing.T) {
	db := openTestSQLite(t)
	repos := NewRepositories(db, logger.Nop())
	ctx := context.Background()

	for _, login := range []string{"alice", "bob"} {
		_, err := repos.UserRepository.CreateUser(ctx, models.User{Login: login, PasswordHash: "hash"})
		require.NoError(t, err)
	}
	_, err := repos.UserRepository.CreateUser(ctx, models.User{Login: "alice", PasswordHash: "hash"})
	require.ErrorIs(t, err, ErrLoginAlreadyExists)

	found, err := repos.UserRepository.FindUserByLogin(ctx, models.User{Login: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "hash", found.PasswordHash)

	// default zone comes with the account
	owned, err := repos.ZoneRepository.ListOwnedZones(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.True(t, owned[0].ID.IsDefault())

	family := models.ZoneID{ZoneName: "Family", OwnerName: "alice"}
	_, err = repos.ZoneRepository.CreateZone(ctx, family)
	require.NoError(t, err)
	_, err = repos.ZoneRepository.CreateZone(ctx, family)
	require.NoError(t, err)

	owned, err = repos.ZoneRepository.ListOwnedZones(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, owned, 2)

	// records and change tags
	for _, name := range []string{"Bob", "Carol", "Dave"} {
		_, err := repos.RecordRepository.SaveRecord(ctx, models.NewContactRecord(family, name, "555"))
		require.NoError(t, err)
	}

	first, err := repos.RecordRepository.ZoneChanges(ctx, family, 0, 2)
	require.NoError(t, err)
	require.Len(t, first.Results, 2)
	assert.True(t, first.MoreComing)

	second, err := repos.RecordRepository.ZoneChanges(ctx, family, first.LastSeq, 2)
	require.NoError(t, err)
	require.Len(t, second.Results, 1)
	assert.False(t, second.MoreComing)

	stored := first.Results[0].Record
	require.NotNil(t, stored)

	stale := *stored
	stale.ChangeTag = "stale"
	_, err = repos.RecordRepository.SaveRecord(ctx, stale)
	require.ErrorIs(t, err, ErrVersionConflict)

	updated := *stored
	updated.Fields = map[string]string{models.ContactFieldName: "Bobby"}
	saved, err := repos.RecordRepository.SaveRecord(ctx, updated)
	require.NoError(t, err)
	assert.NotEqual(t, stored.ChangeTag, saved.ChangeTag)

	fetched, err := repos.RecordRepository.FindRecord(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bobby", fetched.Fields[models.ContactFieldName])
	assert.Equal(t, saved.ChangeTag, fetched.ChangeTag)

	// the update moved the record past the old page
	tail, err := repos.RecordRepository.ZoneChanges(ctx, family, second.LastSeq, 10)
	require.NoError(t, err)
	require.Len(t, tail.Results, 1)
	assert.Equal(t, stored.ID, tail.Results[0].RecordID)

	// sharing
	share, err := repos.ShareRepository.CreateShare(ctx, family, "Contact Group: Family")
	require.NoError(t, err)
	_, err = repos.ShareRepository.CreateShare(ctx, family, "Contact Group: Family")
	require.ErrorIs(t, err, ErrShareAlreadyExists)

	zone, err := repos.ZoneRepository.FindZone(ctx, family)
	require.NoError(t, err)
	require.NotNil(t, zone.Share)
	assert.Equal(t, share.ID, *zone.Share)

	isParticipant, err := repos.ZoneRepository.IsParticipant(ctx, family, "bob")
	require.NoError(t, err)
	assert.False(t, isParticipant)

	accepted, err := repos.ShareRepository.AddParticipant(ctx, share.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, family, accepted.ID)

	isParticipant, err = repos.ZoneRepository.IsParticipant(ctx, family, "bob")
	require.NoError(t, err)
	assert.True(t, isParticipant)

	shared, err := repos.ZoneRepository.ListParticipatingZones(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, shared, 1)
	assert.Equal(t, family, shared[0].ID)

	shareRecord, err := repos.RecordRepository.FindRecord(ctx, share.ID)
	require.NoError(t, err)
	decoded, ok := models.ShareFromRecord(shareRecord)
	require.True(t, ok)
	assert.Equal(t, []string{"bob"}, decoded.Participants)
}
