package models

// DefaultZoneName is the name of the zone every principal owns from the moment
// it registers. It never holds contacts and is skipped by the sync core.
const DefaultZoneName = "_defaultZone"

// ZoneID identifies a zone within the record store. ZoneName is unique per
// owner; OwnerName is the login of the principal that owns the zone.
//
// OwnerName may be left empty when saving a zone in the private scope: the
// store fills it with the caller's login.
type ZoneID struct {
	ZoneName  string `json:"zone_name"`
	OwnerName string `json:"owner_name,omitempty"`
}

// IsDefault reports whether id names a default zone.
func (id ZoneID) IsDefault() bool {
	return id.ZoneName == DefaultZoneName
}

func (id ZoneID) String() string {
	if id.OwnerName == "" {
		return id.ZoneName
	}
	return id.OwnerName + "/" + id.ZoneName
}

// Zone is a named, independently versioned partition of records and the unit
// of sharing. Share references the zone-wide share record once one exists.
type Zone struct {
	ID    ZoneID    `json:"id"`
	Share *RecordID `json:"share,omitempty"`
}

// NewZone returns a zone for name owned by the current principal.
func NewZone(name string) Zone {
	return Zone{ID: ZoneID{ZoneName: name}}
}

// ZonesResponse is the body returned by the zone listing endpoint.
type ZonesResponse struct {
	Zones  []Zone `json:"zones"`
	Length int    `json:"length"`
}
