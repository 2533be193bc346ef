package uptime

// Stat is the aggregate of all weekly records of one check.
// MaxUptime and Percentage are derived once the fold is complete.
type Stat struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Uptime       uint64  `json:"uptime"`
	Downtime     uint64  `json:"downtime"`
	Unmonitored  uint64  `json:"unmonitored"`
	MaxUptime    uint64  `json:"max_uptime"`
	DowntimeMins uint64  `json:"downtime_mins"`
	Percentage   float64 `json:"percentage"`
}
