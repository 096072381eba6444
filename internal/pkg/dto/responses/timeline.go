package responses

import "time"

type TimelineEntry struct {
	Title     string        `json:"title"`
	Timestamp time.Time     `json:"timestamp"`
	Link      *TimelineLink `json:"link,omitempty"`
}

type TimelineLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}
