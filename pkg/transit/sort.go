package transit

import "sort"

// sortByArrival orders records ascending by ISO arrival time. Records with no
// parseable time sort after every timed record; ties keep their input order.
func sortByArrival(records []ArrivalRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].ArrivalTime, records[j].ArrivalTime
		if (a == "") != (b == "") {
			return a != ""
		}
		return a < b
	})
}

// truncateRecords caps a record list to limit, tolerating limit <= 0 as "no cap".
func truncateRecords(records []ArrivalRecord, limit int) []ArrivalRecord {
	if limit > 0 && len(records) > limit {
		return records[:limit]
	}
	return records
}
