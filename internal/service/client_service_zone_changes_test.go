// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/internal/mock"
	"github.com/MKhiriev/go-zone-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var familyZone = models.ZoneID{ZoneName: "Family", OwnerName: "alice"}

func contactRecord(zoneID models.ZoneID, recordName, name string) *models.Record {
	return &models.Record{
		ID:         models.RecordID{RecordName: recordName, ZoneID: zoneID},
		RecordType: models.ContactRecordType,
		Fields:     map[string]string{models.ContactFieldName: name, models.ContactFieldPhoneNumber: "555-" + recordName},
	}
}

func okResult(r *models.Record) models.RecordResult {
	return models.RecordResult{RecordID: r.ID, Record: r}
}

func newPrivateDB(ctrl *gomock.Controller) *mock.MockDatabase {
	db := mock.NewMockDatabase(ctrl)
	db.EXPECT().Scope().Return(models.ScopePrivate).AnyTimes()
	return db
}

func contactNames(contacts []models.Contact) []string {
	names := make([]string, 0, len(contacts))
	for _, c := range contacts {
		names = append(names, c.Name)
	}
	return names
}

func TestContactsInZone_DefaultZoneMakesNoCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockDatabase(ctrl) // any call fails the test

	e := NewZoneChangesEnumerator(logger.Nop())
	contacts, err := e.ContactsInZone(context.Background(), db, models.ZoneID{ZoneName: models.DefaultZoneName, OwnerName: "alice"}, nil)

	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestContactsInZone_DrainsAllPagesThreadingTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := newPrivateDB(ctrl)

	const pages = 4
	var calls []any
	var want []string
	var prev models.ChangeToken
	for i := range pages {
		next := models.ChangeToken(fmt.Sprintf("token-%d", i+1))
		name := fmt.Sprintf("contact-%d", i)
		want = append(want, name)

		calls = append(calls, db.EXPECT().
			ZoneChanges(gomock.Any(), familyZone, prev).
			Return(models.ZoneChanges{
				Modifications: []models.RecordResult{okResult(contactRecord(familyZone, fmt.Sprint(i), name))},
				MoreComing:    i < pages-1,
				ChangeToken:   next,
			}, nil).
			Times(1))
		prev = next
	}
	gomock.InOrder(calls...)

	e := NewZoneChangesEnumerator(logger.Nop())
	contacts, err := e.ContactsInZone(context.Background(), db, familyZone, nil)

	require.NoError(t, err)
	assert.Equal(t, want, contactNames(contacts), "arrival order across batches is kept")
}

func TestContactsInZone_FirstCallUsesGivenToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := newPrivateDB(ctrl)

	since := models.ChangeToken("resume-here")
	db.EXPECT().ZoneChanges(gomock.Any(), familyZone, since).Return(models.ZoneChanges{}, nil).Times(1)

	e := NewZoneChangesEnumerator(logger.Nop())
	contacts, err := e.ContactsInZone(context.Background(), db, familyZone, since)

	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestContactsInZone_DropsFailedAndUndecodableRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := newPrivateDB(ctrl)

	noName := contactRecord(familyZone, "2", "")
	otherType := &models.Record{ID: models.RecordID{RecordName: "3", ZoneID: familyZone}, RecordType: "Note"}

	db.EXPECT().ZoneChanges(gomock.Any(), familyZone, gomock.Nil()).Return(models.ZoneChanges{
		Modifications: []models.RecordResult{
			okResult(contactRecord(familyZone, "1", "Ann")),
			{RecordID: models.RecordID{RecordName: "x", ZoneID: familyZone}, Error: "record decode failed"},
			okResult(noName),
			okResult(otherType),
			{RecordID: models.RecordID{RecordName: "y", ZoneID: familyZone}},
			okResult(contactRecord(familyZone, "4", "Bob")),
		},
	}, nil)

	e := NewZoneChangesEnumerator(logger.Nop())
	contacts, err := e.ContactsInZone(context.Background(), db, familyZone, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"Ann", "Bob"}, contactNames(contacts))
	assert.Equal(t, "1", contacts[0].ID)
	assert.Equal(t, familyZone, contacts[0].AssociatedRecord.ID.ZoneID)
}

func TestContactsInZone_ErrorAbortsAfterPartialProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := newPrivateDB(ctrl)
	boom := errors.New("connection reset")

	gomock.InOrder(
		db.EXPECT().ZoneChanges(gomock.Any(), familyZone, gomock.Nil()).Return(models.ZoneChanges{
			Modifications: []models.RecordResult{okResult(contactRecord(familyZone, "1", "Ann"))},
			MoreComing:    true,
			ChangeToken:   models.ChangeToken("t1"),
		}, nil),
		db.EXPECT().ZoneChanges(gomock.Any(), familyZone, models.ChangeToken("t1")).Return(models.ZoneChanges{}, boom),
	)

	e := NewZoneChangesEnumerator(logger.Nop())
	contacts, err := e.ContactsInZone(context.Background(), db, familyZone, nil)

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, contacts)
}

func TestContactsInZone_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockDatabase(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := NewZoneChangesEnumerator(logger.Nop())
	_, err := e.ContactsInZone(ctx, db, familyZone, nil)

	assert.ErrorIs(t, err, context.Canceled)
}
