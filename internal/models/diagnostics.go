package models

const (
	ConnectionConnected    = "Connected"
	ConnectionNotConnected = "Not Connected"
)

// DiagnosticReport is a best-effort status snapshot. Fields that could not be
// determined are left empty rather than failing the report.
type DiagnosticReport struct {
	Backend          string          `json:"backend"`
	Database         DatabaseStatus  `json:"database"`
	ConnectionStatus string          `json:"connection_status"`
	Env              map[string]bool `json:"env"`
	Collections      []string        `json:"collections"`
}

type DatabaseStatus struct {
	Available bool    `json:"available"`
	Connected bool    `json:"connected"`
	Name      *string `json:"name,omitempty"`
	Error     *string `json:"error,omitempty"`
}
