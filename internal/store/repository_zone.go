package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/models"
)

type zoneRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewZoneRepository(db *DB, logger *logger.Logger) ZoneRepository {
	logger.Debug().Msg("creating zone repository")
	return &zoneRepository{
		db:     db,
		logger: logger,
	}
}

// CreateZone inserts the zone unless it already exists and returns the
// stored row either way.
func (r *zoneRepository) CreateZone(ctx context.Context, zoneID models.ZoneID) (models.Zone, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(zonesTable).
		Columns("owner_login", "zone_name", "change_seq", "created_at").
		Values(zoneID.OwnerName, zoneID.ZoneName, 0, now()).
		Suffix("ON CONFLICT (owner_login, zone_name) DO NOTHING").
		ToSql()
	if err != nil {
		return models.Zone{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*zoneRepository.CreateZone").Str("zone", zoneID.String()).Msg("error creating zone")
		return models.Zone{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.FindZone(ctx, zoneID)
}

func (r *zoneRepository) FindZone(ctx context.Context, zoneID models.ZoneID) (models.Zone, error) {
	query, args, err := r.zonesQuery().
		Where("z.owner_login = ?", zoneID.OwnerName).
		Where("z.zone_name = ?", zoneID.ZoneName).
		ToSql()
	if err != nil {
		return models.Zone{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	zone, err := scanZone(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Zone{}, ErrZoneNotFound
		}
		return models.Zone{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return zone, nil
}

func (r *zoneRepository) ListOwnedZones(ctx context.Context, owner string) ([]models.Zone, error) {
	return r.listZones(ctx, r.zonesQuery().Where("z.owner_login = ?", owner))
}

// ListParticipatingZones returns the zones other principals shared with login.
func (r *zoneRepository) ListParticipatingZones(ctx context.Context, login string) ([]models.Zone, error) {
	return r.listZones(ctx, r.zonesQuery().
		Join(participantsTable+" p ON p.zone_id = z.zone_id").
		Where("p.login = ?", login))
}

func (r *zoneRepository) IsParticipant(ctx context.Context, zoneID models.ZoneID, login string) (bool, error) {
	query, args, err := r.db.builder.
		Select("COUNT(*)").
		From(participantsTable+" p").
		Join(zonesTable+" z ON z.zone_id = p.zone_id").
		Where("z.owner_login = ?", zoneID.OwnerName).
		Where("z.zone_name = ?", zoneID.ZoneName).
		Where("p.login = ?", login).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (r *zoneRepository) zonesQuery() sq.SelectBuilder {
	return r.db.builder.Select(zoneColumns...).From(zonesTable + " z")
}

func (r *zoneRepository) listZones(ctx context.Context, builder sq.SelectBuilder) ([]models.Zone, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.OrderBy("z.zone_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*zoneRepository.listZones").Msg("error listing zones")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	zones := make([]models.Zone, 0)
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return zones, nil
}
