package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/models"
)

type recordRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		db:     db,
		logger: logger,
	}
}

// SaveRecord creates the record when it does not exist yet and updates it
// otherwise. Every successful save assigns a fresh change tag and moves the
// record to the head of the zone changeset.
//
// Concurrency rules:
//   - creating: the supplied change tag must be empty.
//   - updating: the supplied change tag must equal the stored one.
//
// A violation of either rule yields [ErrVersionConflict].
func (r *recordRepository) SaveRecord(ctx context.Context, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	saved := record
	err := r.db.WithinTransaction(ctx, func(tx *sql.Tx) error {
		zone, err := r.db.selectZoneRow(ctx, tx, record.ID.ZoneID)
		if err != nil {
			return err
		}

		// serializes writers of the zone
		seq, err := r.db.advanceZone(ctx, tx, zone.pk)
		if err != nil {
			return err
		}

		existing, found, err := r.findStoredVersion(ctx, tx, zone.pk, record.ID.RecordName)
		if err != nil {
			return err
		}

		if record.ChangeTag != existing.changeTag {
			return ErrVersionConflict
		}

		ts := now()
		saved.ChangeTag = uuid.NewString()
		saved.ModifiedAt = &ts

		if !found {
			saved.CreatedAt = &ts
			return r.db.insertRecord(ctx, tx, zone.pk, seq, saved)
		}

		if existing.recordType != record.RecordType {
			return fmt.Errorf("%w: stored %q, got %q", ErrRecordTypeMismatch, existing.recordType, record.RecordType)
		}
		saved.CreatedAt = &existing.createdAt

		return r.db.updateRecord(ctx, tx, zone.pk, seq, saved)
	})
	if err != nil {
		log.Err(err).
			Str("func", "*recordRepository.SaveRecord").
			Str("zone", record.ID.ZoneID.String()).
			Str("record", record.ID.RecordName).
			Msg("error saving record")
		return models.Record{}, err
	}

	return saved, nil
}

func (r *recordRepository) FindRecord(ctx context.Context, recordID models.RecordID) (models.Record, error) {
	query, args, err := r.db.builder.
		Select(recordColumns...).
		From(recordsTable+" r").
		Join(zonesTable+" z ON z.zone_id = r.zone_id").
		Where("z.owner_login = ?", recordID.ZoneID.OwnerName).
		Where("z.zone_name = ?", recordID.ZoneID.ZoneName).
		Where("r.record_name = ?", recordID.RecordName).
		ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, _, decodeErr, err := scanRecord(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, ErrRecordNotFound
		}
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if decodeErr != nil {
		return models.Record{}, decodeErr
	}

	return record, nil
}

// ZoneChanges reads limit+1 rows to learn whether another page follows.
// Rows whose payload cannot be decoded are reported as failed results so the
// rest of the page is still delivered.
func (r *recordRepository) ZoneChanges(ctx context.Context, zoneID models.ZoneID, afterSeq int64, limit int) (ChangesPage, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(recordColumns...).
		From(recordsTable+" r").
		Join(zonesTable+" z ON z.zone_id = r.zone_id").
		Where("z.owner_login = ?", zoneID.OwnerName).
		Where("z.zone_name = ?", zoneID.ZoneName).
		Where("r.change_seq > ?", afterSeq).
		OrderBy("r.change_seq").
		Limit(uint64(limit) + 1).
		ToSql()
	if err != nil {
		return ChangesPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.ZoneChanges").Str("zone", zoneID.String()).Msg("error reading zone changes")
		return ChangesPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	page := ChangesPage{Results: make([]models.RecordResult, 0, limit), LastSeq: afterSeq}
	for rows.Next() {
		if len(page.Results) == limit {
			page.MoreComing = true
			break
		}

		record, seq, decodeErr, err := scanRecord(rows)
		if err != nil {
			return ChangesPage{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		page.LastSeq = seq

		result := models.RecordResult{RecordID: record.ID}
		if decodeErr != nil {
			log.Warn().Err(decodeErr).Str("record", record.ID.RecordName).Msg("undecodable record in changeset")
			result.Error = decodeErr.Error()
		} else {
			result.Record = &record
		}
		page.Results = append(page.Results, result)
	}
	if err := rows.Err(); err != nil {
		return ChangesPage{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return page, nil
}

type storedVersion struct {
	changeTag  string
	recordType string
	createdAt  time.Time
}

func (r *recordRepository) findStoredVersion(ctx context.Context, q querier, zonePK int64, recordName string) (storedVersion, bool, error) {
	query, args, err := r.db.builder.
		Select("change_tag", "record_type", "created_at").
		From(recordsTable).
		Where("zone_id = ?", zonePK).
		Where("record_name = ?", recordName).
		ToSql()
	if err != nil {
		return storedVersion{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var v storedVersion
	if err := q.QueryRowContext(ctx, query, args...).Scan(&v.changeTag, &v.recordType, &v.createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storedVersion{}, false, nil
		}
		return storedVersion{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return v, true, nil
}
