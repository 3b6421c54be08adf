package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-zone-keeper/models"
)

const (
	usersTable        = "users"
	zonesTable        = "zones"
	recordsTable      = "records"
	participantsTable = "zone_participants"
)

var (
	zoneColumns = []string{"z.owner_login", "z.zone_name", "z.share_record_name"}

	recordColumns = []string{
		"z.owner_login", "z.zone_name",
		"r.record_name", "r.record_type", "r.fields", "r.change_tag",
		"r.change_seq", "r.created_at", "r.modified_at",
	}
)

// zoneRow is the identity and share state of a zone row.
type zoneRow struct {
	pk        int64
	shareName sql.NullString
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanZone(row scanner) (models.Zone, error) {
	var (
		zone      models.Zone
		shareName sql.NullString
	)
	if err := row.Scan(&zone.ID.OwnerName, &zone.ID.ZoneName, &shareName); err != nil {
		return models.Zone{}, err
	}
	if shareName.Valid {
		zone.Share = &models.RecordID{RecordName: shareName.String, ZoneID: zone.ID}
	}

	return zone, nil
}

// scanRecord scans one record row. A row whose fields column is not a JSON
// object is returned with decodeErr set instead of failing the scan.
func scanRecord(row scanner) (record models.Record, seq int64, decodeErr error, err error) {
	var (
		rawFields  []byte
		createdAt  time.Time
		modifiedAt time.Time
	)
	err = row.Scan(
		&record.ID.ZoneID.OwnerName, &record.ID.ZoneID.ZoneName,
		&record.ID.RecordName, &record.RecordType, &rawFields, &record.ChangeTag,
		&seq, &createdAt, &modifiedAt,
	)
	if err != nil {
		return models.Record{}, 0, nil, err
	}
	record.CreatedAt = &createdAt
	record.ModifiedAt = &modifiedAt

	fields, decodeErr := decodeFields(rawFields)
	record.Fields = fields

	return record, seq, decodeErr, nil
}

func encodeFields(fields map[string]string) (string, error) {
	if fields == nil {
		fields = map[string]string{}
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("error encoding record fields: %w", err)
	}
	return string(data), nil
}

func decodeFields(raw []byte) (map[string]string, error) {
	fields := map[string]string{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("error decoding record fields: %w", err)
	}
	return fields, nil
}

// selectZoneRow locks nothing; callers run it inside a transaction when the
// result feeds a write.
func (db *DB) selectZoneRow(ctx context.Context, q querier, zoneID models.ZoneID) (zoneRow, error) {
	query, args, err := db.builder.
		Select("zone_id", "share_record_name").
		From(zonesTable).
		Where("owner_login = ?", zoneID.OwnerName).
		Where("zone_name = ?", zoneID.ZoneName).
		ToSql()
	if err != nil {
		return zoneRow{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row zoneRow
	if err := q.QueryRowContext(ctx, query, args...).Scan(&row.pk, &row.shareName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zoneRow{}, ErrZoneNotFound
		}
		return zoneRow{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return row, nil
}

// advanceZone bumps the change sequence of the zone with primary key pk and
// returns the new value.
func (db *DB) advanceZone(ctx context.Context, q querier, pk int64) (int64, error) {
	query, args, err := db.builder.
		Update(zonesTable).
		Set("change_seq", sq.Expr("change_seq + 1")).
		Where("zone_id = ?", pk).
		Suffix("RETURNING change_seq").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var seq int64
	if err := q.QueryRowContext(ctx, query, args...).Scan(&seq); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrZoneNotFound
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return seq, nil
}

func (db *DB) insertRecord(ctx context.Context, q querier, zonePK, seq int64, record models.Record) error {
	fields, err := encodeFields(record.Fields)
	if err != nil {
		return err
	}

	query, args, err := db.builder.
		Insert(recordsTable).
		Columns("zone_id", "record_name", "record_type", "fields", "change_tag", "change_seq", "created_at", "modified_at").
		Values(zonePK, record.ID.RecordName, record.RecordType, fields, record.ChangeTag, seq, *record.CreatedAt, *record.ModifiedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		if db.isUniqueViolation(err) {
			return ErrVersionConflict
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (db *DB) updateRecord(ctx context.Context, q querier, zonePK, seq int64, record models.Record) error {
	fields, err := encodeFields(record.Fields)
	if err != nil {
		return err
	}

	query, args, err := db.builder.
		Update(recordsTable).
		Set("fields", fields).
		Set("change_tag", record.ChangeTag).
		Set("change_seq", seq).
		Set("modified_at", *record.ModifiedAt).
		Where("zone_id = ?", zonePK).
		Where("record_name = ?", record.ID.RecordName).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
