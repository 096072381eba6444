package utils

import "time"

func UnixMillisToTime(millis int64) time.Time {
	return time.UnixMilli(millis).UTC()
}

func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
