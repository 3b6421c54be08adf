package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/models"
)

// shareRepository keeps the share of a zone as an ordinary record of type
// [models.ShareRecordType] inside that zone, referenced from the zone row.
type shareRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewShareRepository(db *DB, logger *logger.Logger) ShareRepository {
	logger.Debug().Msg("creating share repository")
	return &shareRepository{
		db:     db,
		logger: logger,
	}
}

// CreateShare creates the share record of the zone. A zone has at most one
// share: a second call fails with [ErrShareAlreadyExists].
func (r *shareRepository) CreateShare(ctx context.Context, zoneID models.ZoneID, title string) (models.Record, error) {
	log := logger.FromContext(ctx)

	ts := now()
	share := models.Record{
		ID:         models.RecordID{RecordName: uuid.NewString(), ZoneID: zoneID},
		RecordType: models.ShareRecordType,
		Fields:     map[string]string{models.ShareFieldTitle: title},
		ChangeTag:  uuid.NewString(),
		CreatedAt:  &ts,
		ModifiedAt: &ts,
	}

	err := r.db.WithinTransaction(ctx, func(tx *sql.Tx) error {
		zone, err := r.db.selectZoneRow(ctx, tx, zoneID)
		if err != nil {
			return err
		}
		if zone.shareName.Valid {
			return ErrShareAlreadyExists
		}

		query, args, err := r.db.builder.
			Update(zonesTable).
			Set("share_record_name", share.ID.RecordName).
			Set("change_seq", sq.Expr("change_seq + 1")).
			Where("zone_id = ?", zone.pk).
			Where("share_record_name IS NULL").
			Suffix("RETURNING change_seq").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var seq int64
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&seq); err != nil {
			// a concurrent CreateShare won the race
			if errors.Is(err, sql.ErrNoRows) {
				return ErrShareAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return r.db.insertRecord(ctx, tx, zone.pk, seq, share)
	})
	if err != nil {
		log.Err(err).Str("func", "*shareRepository.CreateShare").Str("zone", zoneID.String()).Msg("error creating share")
		return models.Record{}, err
	}

	return share, nil
}

// AddParticipant records login as a participant of the zone that owns the
// share record and rewrites the share's participant list. Adding an existing
// participant again is a no-op apart from the share record refresh.
func (r *shareRepository) AddParticipant(ctx context.Context, shareRecordID models.RecordID, login string) (models.Zone, error) {
	log := logger.FromContext(ctx)

	err := r.db.WithinTransaction(ctx, func(tx *sql.Tx) error {
		zone, err := r.db.selectZoneRow(ctx, tx, shareRecordID.ZoneID)
		if err != nil {
			if errors.Is(err, ErrZoneNotFound) {
				return ErrShareNotFound
			}
			return err
		}
		if !zone.shareName.Valid || zone.shareName.String != shareRecordID.RecordName {
			return ErrShareNotFound
		}

		query, args, err := r.db.builder.
			Insert(participantsTable).
			Columns("zone_id", "login").
			Values(zone.pk, login).
			Suffix("ON CONFLICT (zone_id, login) DO NOTHING").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		participants, err := r.participants(ctx, tx, zone.pk)
		if err != nil {
			return err
		}

		share, err := r.shareFields(ctx, tx, zone.pk, shareRecordID.RecordName)
		if err != nil {
			return err
		}
		share.Fields[models.ShareFieldParticipants] = strings.Join(participants, ",")

		seq, err := r.db.advanceZone(ctx, tx, zone.pk)
		if err != nil {
			return err
		}

		ts := now()
		share.ChangeTag = uuid.NewString()
		share.ModifiedAt = &ts

		return r.db.updateRecord(ctx, tx, zone.pk, seq, share)
	})
	if err != nil {
		log.Err(err).
			Str("func", "*shareRepository.AddParticipant").
			Str("zone", shareRecordID.ZoneID.String()).
			Str("login", login).
			Msg("error adding share participant")
		return models.Zone{}, err
	}

	share := shareRecordID
	return models.Zone{ID: shareRecordID.ZoneID, Share: &share}, nil
}

func (r *shareRepository) participants(ctx context.Context, q querier, zonePK int64) ([]string, error) {
	query, args, err := r.db.builder.
		Select("login").
		From(participantsTable).
		Where("zone_id = ?", zonePK).
		OrderBy("login").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var logins []string
	for rows.Next() {
		var login string
		if err := rows.Scan(&login); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		logins = append(logins, login)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return logins, nil
}

func (r *shareRepository) shareFields(ctx context.Context, q querier, zonePK int64, recordName string) (models.Record, error) {
	query, args, err := r.db.builder.
		Select("fields").
		From(recordsTable).
		Where("zone_id = ?", zonePK).
		Where("record_name = ?", recordName).
		ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var raw []byte
	if err := q.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, ErrShareNotFound
		}
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	fields, err := decodeFields(raw)
	if err != nil {
		return models.Record{}, err
	}

	return models.Record{
		ID:         models.RecordID{RecordName: recordName},
		RecordType: models.ShareRecordType,
		Fields:     fields,
	}, nil
}
