package config

import "time"

const (
	// Per-update handling budget
	UpdateTimeout = 30 * time.Second

	// Export file naming
	ExportFilePrefix = "rsvps-"
	ExportTimeLayout = "20060102-150405"

	// Rate limiter burst for a single chat
	RateLimitBurst = 5
)
