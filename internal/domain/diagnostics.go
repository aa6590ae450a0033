package domain

// StoreInfo describes how the document store was configured.
type StoreInfo struct {
	Driver       string
	Configured   bool
	URLSet       bool
	DatabaseName string
}

// Diagnostics is the connectivity report returned by the test endpoint.
type Diagnostics struct {
	Backend          string
	Database         string
	DatabaseURL      string
	DatabaseName     string
	ConnectionStatus string
	Collections      []string
}
