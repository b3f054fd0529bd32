package api

// Metadata is the fixed header written at the top of every output document,
// ahead of the per-row records.
type Metadata struct {
	// Name labels the data set.
	Name string `json:"Name" mapstructure:"name"`
	// Version of the data set.
	Version string `json:"Version" mapstructure:"version"`
}

// DefaultMetadata returns the header used when nothing is configured.
func DefaultMetadata() Metadata {
	return Metadata{
		Name:    "Address",
		Version: "1.0",
	}
}

// Entries returns the metadata as ordered key/value pairs.
func (m Metadata) Entries() [][2]string {
	return [][2]string{
		{"Name", m.Name},
		{"Version", m.Version},
	}
}
