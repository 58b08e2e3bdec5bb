package transit

import "sort"

// combinedPerProviderCap bounds how many records each provider may contribute
// to the combined view before merging.
const combinedPerProviderCap = 4

// Aggregate merges the per-provider record lists for the active view mode,
// orders them soonest-first, and truncates to overallLimit.
//
// Sort key: records with known minutes come first, ordered by minutes, with
// the ISO arrival time as a lexicographic tiebreak. Records with unknown
// minutes always sort after every known one. The sort is stable, so equal
// keys keep their input order.
func Aggregate(busList, subwayList []ArrivalRecord, mode ViewMode, overallLimit int) []ArrivalRecord {
	var merged []ArrivalRecord
	switch mode {
	case ViewSubway:
		merged = append(merged, subwayList...)
	case ViewBus:
		merged = append(merged, busList...)
	default:
		merged = append(merged, capList(busList, combinedPerProviderCap)...)
		merged = append(merged, capList(subwayList, combinedPerProviderCap)...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if (a.Minutes != nil) != (b.Minutes != nil) {
			return a.Minutes != nil
		}
		if a.Minutes != nil && *a.Minutes != *b.Minutes {
			return *a.Minutes < *b.Minutes
		}
		return a.ArrivalTime < b.ArrivalTime
	})

	return truncateRecords(merged, overallLimit)
}

func capList(records []ArrivalRecord, limit int) []ArrivalRecord {
	if len(records) > limit {
		return records[:limit]
	}
	return records
}
