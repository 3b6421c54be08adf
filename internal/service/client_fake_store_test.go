// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/MKhiriev/go-zone-keeper/internal/adapter"
	"github.com/MKhiriev/go-zone-keeper/models"
)

// fakeContainer is an in-memory record store serving one principal. Zone
// changes are paged so enumeration spans several batches.
type fakeContainer struct {
	id       string
	login    string
	pageSize int

	mu      sync.Mutex
	zones   map[models.Scope][]models.Zone
	records map[models.ZoneID][]models.RecordResult
	calls   map[string]int
	failOn  map[models.ZoneID]error
}

func newFakeContainer(login string, pageSize int) *fakeContainer {
	return &fakeContainer{
		id:       "iCloud.test",
		login:    login,
		pageSize: pageSize,
		zones: map[models.Scope][]models.Zone{
			models.ScopePrivate: {{ID: models.ZoneID{ZoneName: models.DefaultZoneName, OwnerName: login}}},
		},
		records: make(map[models.ZoneID][]models.RecordResult),
		calls:   make(map[string]int),
		failOn:  make(map[models.ZoneID]error),
	}
}

func (c *fakeContainer) addZone(scope models.Scope, zoneID models.ZoneID, results ...models.RecordResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zones[scope] = append(c.zones[scope], models.Zone{ID: zoneID})
	c.records[zoneID] = append(c.records[zoneID], results...)
}

func (c *fakeContainer) callCount(method string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[method]
}

func (c *fakeContainer) ID() string      { return c.id }
func (c *fakeContainer) SetToken(string) {}
func (c *fakeContainer) Token() string   { return "" }
func (c *fakeContainer) Database(scope models.Scope) adapter.Database {
	return &fakeDatabase{c: c, scope: scope}
}

func (c *fakeContainer) Register(_ context.Context, user models.User) (models.User, error) {
	return user, nil
}

func (c *fakeContainer) Login(_ context.Context, user models.User) (models.User, error) {
	return user, nil
}

func (c *fakeContainer) AcceptShare(_ context.Context, metadata models.ShareMetadata) (models.Zone, error) {
	zoneID := metadata.ShareRecordID.ZoneID
	c.addZone(models.ScopeShared, zoneID)
	return models.Zone{ID: zoneID, Share: &metadata.ShareRecordID}, nil
}

type fakeDatabase struct {
	c     *fakeContainer
	scope models.Scope
}

func (d *fakeDatabase) Scope() models.Scope { return d.scope }

func (d *fakeDatabase) AllZones(context.Context) ([]models.Zone, error) {
	d.c.mu.Lock()
	defer d.c.mu.Unlock()
	d.c.calls["AllZones"]++
	return append([]models.Zone(nil), d.c.zones[d.scope]...), nil
}

func (d *fakeDatabase) FetchZone(_ context.Context, zoneID models.ZoneID) (models.Zone, error) {
	d.c.mu.Lock()
	defer d.c.mu.Unlock()
	for _, z := range d.c.zones[d.scope] {
		if z.ID == zoneID {
			return z, nil
		}
	}
	return models.Zone{}, adapter.ErrNotFound
}

func (d *fakeDatabase) ZoneChanges(_ context.Context, zoneID models.ZoneID, since models.ChangeToken) (models.ZoneChanges, error) {
	d.c.mu.Lock()
	defer d.c.mu.Unlock()
	d.c.calls["ZoneChanges"]++

	if err := d.c.failOn[zoneID]; err != nil {
		return models.ZoneChanges{}, err
	}

	offset := 0
	if since != nil {
		n, err := strconv.Atoi(string(since))
		if err != nil {
			return models.ZoneChanges{}, adapter.ErrBadRequest
		}
		offset = n
	}

	all := d.c.records[zoneID]
	end := min(offset+d.c.pageSize, len(all))
	return models.ZoneChanges{
		Modifications: append([]models.RecordResult(nil), all[offset:end]...),
		MoreComing:    end < len(all),
		ChangeToken:   models.ChangeToken(strconv.Itoa(end)),
	}, nil
}

func (d *fakeDatabase) SaveZone(_ context.Context, zone models.Zone) (models.Zone, error) {
	d.c.mu.Lock()
	defer d.c.mu.Unlock()
	zone.ID.OwnerName = d.c.login
	for _, z := range d.c.zones[d.scope] {
		if z.ID == zone.ID {
			return z, nil
		}
	}
	d.c.zones[d.scope] = append(d.c.zones[d.scope], zone)
	return zone, nil
}

func (d *fakeDatabase) SaveRecord(_ context.Context, record models.Record) (models.Record, error) {
	d.c.mu.Lock()
	defer d.c.mu.Unlock()
	record.ChangeTag = fmt.Sprintf("tag-%d", len(d.c.records[record.ID.ZoneID])+1)
	d.c.records[record.ID.ZoneID] = append(d.c.records[record.ID.ZoneID], models.RecordResult{RecordID: record.ID, Record: &record})
	return record, nil
}

func (d *fakeDatabase) SaveShare(_ context.Context, zoneID models.ZoneID, title string) (models.Record, error) {
	d.c.mu.Lock()
	defer d.c.mu.Unlock()
	zones := d.c.zones[d.scope]
	for i := range zones {
		if zones[i].ID != zoneID {
			continue
		}
		if zones[i].Share != nil {
			return models.Record{}, adapter.ErrConflict
		}
		record := models.Record{
			ID:         models.RecordID{RecordName: "share-" + zoneID.ZoneName, ZoneID: zoneID},
			RecordType: models.ShareRecordType,
			Fields:     map[string]string{models.ShareFieldTitle: title},
		}
		zones[i].Share = &record.ID
		d.c.records[zoneID] = append(d.c.records[zoneID], models.RecordResult{RecordID: record.ID, Record: &record})
		return record, nil
	}
	return models.Record{}, adapter.ErrNotFound
}

func (d *fakeDatabase) FetchRecord(_ context.Context, recordID models.RecordID) (models.Record, error) {
	d.c.mu.Lock()
	defer d.c.mu.Unlock()
	for _, r := range d.c.records[recordID.ZoneID] {
		if r.Record != nil && r.Record.ID == recordID {
			return *r.Record, nil
		}
	}
	return models.Record{}, adapter.ErrNotFound
}
