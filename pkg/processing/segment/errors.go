package segment

import "errors"

var (
	// ErrNoMatchedSegments is returned when the activity has no segment
	// attempts in common with the season pool.
	ErrNoMatchedSegments = errors.New("no matched segments")
	// ErrCurrentAttemptMissing is returned when a segment of the matching
	// pool has no row for the current activity.
	ErrCurrentAttemptMissing = errors.New("current attempt missing")
)
