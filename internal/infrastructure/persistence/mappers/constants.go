package mappers

import "time"

// convertMillisToTime converts a Unix millisecond timestamp to a UTC time.
func convertMillisToTime(millis int64) time.Time {
	return time.UnixMilli(millis).UTC()
}
