package utils

import "time"

// HealthStatus reports process uptime and collection sizes. There are no
// external services to probe; everything lives in this process.
type HealthStatus struct {
	Status      string         `json:"status"`
	Uptime      string         `json:"uptime"`
	Collections map[string]int `json:"collections"`
	CheckedAt   time.Time      `json:"checkedAt"`
}

var startTime = time.Now()

// BuildHealthStatus returns the current health snapshot.
func BuildHealthStatus(collections map[string]int) HealthStatus {
	return HealthStatus{
		Status:      "ok",
		Uptime:      time.Since(startTime).Round(time.Second).String(),
		Collections: collections,
		CheckedAt:   time.Now(),
	}
}
