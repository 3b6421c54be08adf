// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/models"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})

	return newDB(conn, DialectPostgres, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// q escapes a query fragment for sqlmock's regexp matcher.
func q(fragment string) string {
	return regexp.QuoteMeta(fragment)
}

var familyZoneID = models.ZoneID{ZoneName: "Family", OwnerName: "alice"}

func expectZoneRow(mock sqlmock.Sqlmock, pk int64, shareName any) {
	mock.ExpectQuery(q("SELECT zone_id, share_record_name FROM zones WHERE owner_login = $1 AND zone_name = $2")).
		WithArgs(familyZoneID.OwnerName, familyZoneID.ZoneName).
		WillReturnRows(sqlmock.NewRows([]string{"zone_id", "share_record_name"}).AddRow(pk, shareName))
}

func expectAdvanceZone(mock sqlmock.Sqlmock, pk, seq int64) {
	mock.ExpectQuery(q("UPDATE zones SET change_seq = change_seq + 1 WHERE zone_id = $1 RETURNING change_seq")).
		WithArgs(pk).
		WillReturnRows(sqlmock.NewRows([]string{"change_seq"}).AddRow(seq))
}
