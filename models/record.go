package models

import "time"

// RecordID identifies a record inside its zone.
type RecordID struct {
	RecordName string `json:"record_name"`
	ZoneID     ZoneID `json:"zone_id"`
}

// Record is the generic key-value unit stored in a zone.
//
// ChangeTag is the version stamp assigned by the store on every save. A save
// that carries a stale ChangeTag is rejected by the store; a save with an
// empty ChangeTag creates the record.
type Record struct {
	ID         RecordID          `json:"id"`
	RecordType string            `json:"record_type"`
	Fields     map[string]string `json:"fields"`
	ChangeTag  string            `json:"change_tag,omitempty"`
	CreatedAt  *time.Time        `json:"created_at,omitempty"`
	ModifiedAt *time.Time        `json:"modified_at,omitempty"`
}

// Field returns the value stored under key and whether it was present.
func (r Record) Field(key string) (string, bool) {
	if r.Fields == nil {
		return "", false
	}
	v, ok := r.Fields[key]
	return v, ok
}

// FetchRecordRequest is the body of the record lookup endpoint.
type FetchRecordRequest struct {
	RecordID RecordID `json:"record_id"`
}

// FetchZoneRequest is the body of the zone lookup endpoint.
type FetchZoneRequest struct {
	ZoneID ZoneID `json:"zone_id"`
}
