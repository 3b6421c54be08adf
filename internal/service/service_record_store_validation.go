package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-zone-keeper/internal/validators"
	"github.com/MKhiriev/go-zone-keeper/models"
)

// RecordStoreServiceWrapper defines middleware composition for
// RecordStoreService. Implementations wrap an existing RecordStoreService to
// add behavior such as logging or validating.
type RecordStoreServiceWrapper interface {
	Wrap(RecordStoreService) RecordStoreService
}

// RecordStoreValidationService rejects malformed identifiers and payloads
// before they reach the wrapped RecordStoreService.
type RecordStoreValidationService struct {
	inner     RecordStoreService
	validator validators.Validator
}

func NewRecordStoreValidationService() RecordStoreServiceWrapper {
	return &RecordStoreValidationService{
		validator: validators.NewRecordStoreValidator(),
	}
}

// Wrap implements [RecordStoreServiceWrapper].
func (v *RecordStoreValidationService) Wrap(inner RecordStoreService) RecordStoreService {
	return &RecordStoreValidationService{
		inner:     inner,
		validator: v.validator,
	}
}

func (v *RecordStoreValidationService) AllZones(ctx context.Context, scope models.Scope) ([]models.Zone, error) {
	return v.inner.AllZones(ctx, scope)
}

func (v *RecordStoreValidationService) FetchZone(ctx context.Context, scope models.Scope, zoneID models.ZoneID) (models.Zone, error) {
	if err := v.validate(ctx, zoneID); err != nil {
		return models.Zone{}, err
	}
	return v.inner.FetchZone(ctx, scope, zoneID)
}

func (v *RecordStoreValidationService) SaveZone(ctx context.Context, scope models.Scope, zone models.Zone) (models.Zone, error) {
	if err := v.validate(ctx, zone); err != nil {
		return models.Zone{}, err
	}
	return v.inner.SaveZone(ctx, scope, zone)
}

func (v *RecordStoreValidationService) ZoneChanges(ctx context.Context, scope models.Scope, req models.ZoneChangesRequest) (models.ZoneChanges, error) {
	if err := v.validate(ctx, req.ZoneID); err != nil {
		return models.ZoneChanges{}, err
	}
	return v.inner.ZoneChanges(ctx, scope, req)
}

func (v *RecordStoreValidationService) SaveRecord(ctx context.Context, scope models.Scope, record models.Record) (models.Record, error) {
	if err := v.validate(ctx, record); err != nil {
		return models.Record{}, err
	}
	return v.inner.SaveRecord(ctx, scope, record)
}

func (v *RecordStoreValidationService) FetchRecord(ctx context.Context, scope models.Scope, recordID models.RecordID) (models.Record, error) {
	if err := v.validate(ctx, recordID); err != nil {
		return models.Record{}, err
	}
	return v.inner.FetchRecord(ctx, scope, recordID)
}

func (v *RecordStoreValidationService) SaveShare(ctx context.Context, scope models.Scope, req models.SaveShareRequest) (models.Record, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.Record{}, err
	}
	return v.inner.SaveShare(ctx, scope, req)
}

func (v *RecordStoreValidationService) AcceptShare(ctx context.Context, metadata models.ShareMetadata) (models.Zone, error) {
	if err := v.validate(ctx, metadata); err != nil {
		return models.Zone{}, err
	}
	return v.inner.AcceptShare(ctx, metadata)
}

func (v *RecordStoreValidationService) validate(ctx context.Context, obj any) error {
	if err := v.validator.Validate(ctx, obj); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
