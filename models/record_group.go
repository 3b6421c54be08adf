package models

// RecordGroup pairs one zone with the contacts currently known to belong to
// it. A group is built fresh on every sync pass and replaced, never patched.
type RecordGroup struct {
	Zone     Zone      `json:"zone"`
	Contacts []Contact `json:"contacts"`
}

// NewRecordGroup assembles a group for zone. Contacts whose record lives in a
// different zone are left out.
func NewRecordGroup(zone Zone, contacts []Contact) RecordGroup {
	kept := make([]Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.AssociatedRecord.ID.ZoneID.ZoneName != zone.ID.ZoneName {
			continue
		}
		if owner := c.AssociatedRecord.ID.ZoneID.OwnerName; owner != "" && zone.ID.OwnerName != "" && owner != zone.ID.OwnerName {
			continue
		}
		kept = append(kept, c)
	}

	return RecordGroup{Zone: zone, Contacts: kept}
}

// Name returns the group name, which is the zone name.
func (g RecordGroup) Name() string {
	return g.Zone.ID.ZoneName
}

// ID returns the group identity. Group names are unique per scope.
func (g RecordGroup) ID() string {
	return g.Name()
}
