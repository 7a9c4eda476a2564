package wire

// Zone is the managed-zone resource shape.
type Zone struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	DNSName      string   `json:"dnsName"`
	Description  string   `json:"description,omitempty"`
	NameServers  []string `json:"nameServers,omitempty"`
	CreationTime string   `json:"creationTime,omitempty"`
}

// ZoneList is the list envelope for zone queries.
type ZoneList struct {
	ManagedZones  []Zone `json:"managedZones"`
	NextPageToken string `json:"nextPageToken,omitempty"`
}
