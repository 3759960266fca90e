package models

// WorkloadTier classifies a crew's assignment density on one calendar day.
type WorkloadTier string

const (
	TierFree       WorkloadTier = "free"
	TierLoaded     WorkloadTier = "loaded"
	TierOverloaded WorkloadTier = "overloaded"
)

// CrewWorkload is the derived per-crew view for a date. Workload is never
// stored on a crew; it is always recomputed from the events of that day.
type CrewWorkload struct {
	Crew       string       `json:"crew"`
	EventCount int          `json:"eventCount"`
	Tier       WorkloadTier `json:"tier"`
}
