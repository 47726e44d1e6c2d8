package rotation

import (
	"padoo/models"
)

// Priority seeding constants. Morning staff lead the day; staff absent
// yesterday owe fewer turns; among yesterday's workers a higher served count
// pushes the entry later today to rebalance load.
const (
	morningPriorityBase  = 1000
	absentYesterdayDebit = 500
	orderCountWeight     = 10
)

// seedPriority computes the one-shot creation priority for an on-duty staff
// member. yesterdayShift is nil when the staff member had no assignment
// yesterday; yesterdayOrderCount is nil when yesterday's queue has no entry
// for them. The score is only used for the initial sort and is not consulted
// again after the queue exists.
func seedPriority(todayShift models.Shift, yesterdayShift *models.Shift, yesterdayOrderCount *int) int {
	priority := 0
	if todayShift == models.ShiftMorning {
		priority = morningPriorityBase
	}

	if yesterdayShift == nil || !yesterdayShift.Working() {
		return priority - absentYesterdayDebit
	}
	if yesterdayOrderCount != nil {
		priority += *yesterdayOrderCount * orderCountWeight
	}
	return priority
}
