package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-zone-keeper/models"
)

type httpDatabase struct {
	container *httpContainer
	scope     models.Scope
}

// Scope implements [Database].
func (d *httpDatabase) Scope() models.Scope {
	return d.scope
}

func (d *httpDatabase) path(suffix string) string {
	return "/api/databases/" + d.scope.String() + suffix
}

// AllZones implements [Database]. GET /api/databases/{scope}/zones.
func (d *httpDatabase) AllZones(ctx context.Context) ([]models.Zone, error) {
	var zr models.ZonesResponse

	resp, err := d.container.authedRequest(ctx).
		SetResult(&zr).
		Get(d.path("/zones"))
	if err != nil {
		return nil, fmt.Errorf("all zones request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return zr.Zones, nil
}

// FetchZone implements [Database]. POST /api/databases/{scope}/zones/lookup.
func (d *httpDatabase) FetchZone(ctx context.Context, zoneID models.ZoneID) (models.Zone, error) {
	var zone models.Zone

	resp, err := d.container.authedRequest(ctx).
		SetBody(models.FetchZoneRequest{ZoneID: zoneID}).
		SetResult(&zone).
		Post(d.path("/zones/lookup"))
	if err != nil {
		return models.Zone{}, fmt.Errorf("fetch zone request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Zone{}, err
	}

	return zone, nil
}

// ZoneChanges implements [Database]. POST /api/databases/{scope}/changes.
func (d *httpDatabase) ZoneChanges(ctx context.Context, zoneID models.ZoneID, since models.ChangeToken) (models.ZoneChanges, error) {
	var changes models.ZoneChanges

	resp, err := d.container.authedRequest(ctx).
		SetBody(models.ZoneChangesRequest{ZoneID: zoneID, Since: since}).
		SetResult(&changes).
		Post(d.path("/changes"))
	if err != nil {
		return models.ZoneChanges{}, fmt.Errorf("zone changes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ZoneChanges{}, err
	}

	return changes, nil
}

// SaveZone implements [Database]. POST /api/databases/{scope}/zones.
func (d *httpDatabase) SaveZone(ctx context.Context, zone models.Zone) (models.Zone, error) {
	var saved models.Zone

	resp, err := d.container.authedRequest(ctx).
		SetBody(zone).
		SetResult(&saved).
		Post(d.path("/zones"))
	if err != nil {
		return models.Zone{}, fmt.Errorf("save zone request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Zone{}, err
	}

	return saved, nil
}

// SaveRecord implements [Database]. POST /api/databases/{scope}/records.
func (d *httpDatabase) SaveRecord(ctx context.Context, record models.Record) (models.Record, error) {
	var saved models.Record

	resp, err := d.container.authedRequest(ctx).
		SetBody(record).
		SetResult(&saved).
		Post(d.path("/records"))
	if err != nil {
		return models.Record{}, fmt.Errorf("save record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Record{}, err
	}

	return saved, nil
}

// SaveShare implements [Database]. POST /api/databases/{scope}/shares.
// Returns [ErrConflict] (wrapped) if the zone already has a share.
func (d *httpDatabase) SaveShare(ctx context.Context, zoneID models.ZoneID, title string) (models.Record, error) {
	var saved models.Record

	resp, err := d.container.authedRequest(ctx).
		SetBody(models.SaveShareRequest{ZoneID: zoneID, Title: title}).
		SetResult(&saved).
		Post(d.path("/shares"))
	if err != nil {
		return models.Record{}, fmt.Errorf("save share request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Record{}, err
	}

	return saved, nil
}

// FetchRecord implements [Database]. POST /api/databases/{scope}/records/lookup.
func (d *httpDatabase) FetchRecord(ctx context.Context, recordID models.RecordID) (models.Record, error) {
	var record models.Record

	resp, err := d.container.authedRequest(ctx).
		SetBody(models.FetchRecordRequest{RecordID: recordID}).
		SetResult(&record).
		Post(d.path("/records/lookup"))
	if err != nil {
		return models.Record{}, fmt.Errorf("fetch record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Record{}, err
	}

	return record, nil
}
