package wire

// Change statuses reported by the control-plane service.
const (
	ChangeStatusPending = "pending"
	ChangeStatusDone    = "done"
)

// Change is an atomic batch of record-set additions and deletions applied
// to one zone.
type Change struct {
	ID        string      `json:"id,omitempty"`
	Status    string      `json:"status,omitempty"`
	StartTime string      `json:"startTime,omitempty"`
	Additions []RecordSet `json:"additions,omitempty"`
	Deletions []RecordSet `json:"deletions,omitempty"`
}

// IsDone reports whether the service has finished applying the change.
func (c Change) IsDone() bool {
	return c.Status == ChangeStatusDone
}

// ChangeList is the list envelope for change queries.
type ChangeList struct {
	Changes       []Change `json:"changes"`
	NextPageToken string   `json:"nextPageToken,omitempty"`
}
