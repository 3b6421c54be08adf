package models

// ChangeToken is an opaque watermark for one zone of one scope. The client
// only ever hands back a token it received for the same zone; it never
// inspects, compares or orders tokens. A nil token means "from the beginning".
type ChangeToken []byte

// ZoneChangesRequest asks for the next changeset of a zone.
type ZoneChangesRequest struct {
	ZoneID ZoneID      `json:"zone_id"`
	Since  ChangeToken `json:"since,omitempty"`
}

// RecordResult is one entry of a changeset: either a record payload or a
// per-record failure described by Error.
type RecordResult struct {
	RecordID RecordID `json:"record_id"`
	Record   *Record  `json:"record,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// Failed reports whether the result carries no usable record.
func (r RecordResult) Failed() bool {
	return r.Error != "" || r.Record == nil
}

// ZoneChanges is one page of record changes for a zone. When MoreComing is
// true the caller must request the next page with ChangeToken.
type ZoneChanges struct {
	Modifications []RecordResult `json:"modifications"`
	MoreComing    bool           `json:"more_coming"`
	ChangeToken   ChangeToken    `json:"change_token"`
}
