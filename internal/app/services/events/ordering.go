package events

import (
	"sort"

	"caseview-service/internal/pkg/casedoc"
)

// sortEvents orders the raw event sequence by timestamp. On identical
// timestamps condition and documentation-requirement events sort after
// everything else, so a payment they reference exists before they try to
// link to it. All other ties keep their arrival order.
func sortEvents(events []casedoc.Event) []casedoc.Event {
	sorted := make([]casedoc.Event, len(events))
	copy(sorted, events)

	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Timestamp.Equal(sorted[j].Timestamp) {
			return sorted[i].Timestamp.Before(sorted[j].Timestamp)
		}
		return tieBreakRank(sorted[i].Type) < tieBreakRank(sorted[j].Type)
	})

	return sorted
}

func tieBreakRank(eventType casedoc.EventType) int {
	switch eventType {
	case casedoc.EventTypeCondition, casedoc.EventTypeDocumentationRequirement:
		return 1
	default:
		return 0
	}
}
