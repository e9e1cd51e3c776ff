package domain

import "time"

// SegmentMetadata is a snapshot of the service taken when it was added to the chain.
// It does not follow later changes of the ServiceOffering.
type SegmentMetadata struct {
	ServiceID       string
	Name            string
	Price           float64
	DurationMinutes int
	Category        string
	Gender          string
}

// PendingSegment represents one service queued into the current booking chain
type PendingSegment struct {
	ID       string
	Start    time.Time
	End      time.Time
	Metadata SegmentMetadata
}

// Duration returns the segment length
func (s *PendingSegment) Duration() time.Duration {
	return time.Duration(s.Metadata.DurationMinutes) * time.Minute
}
