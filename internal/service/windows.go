// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"math"
	"time"
)

// dateLayout is the calendar date format used as the daily document key.
const dateLayout = "2006-01-02"

const (
	secondsPerDay = 24 * 60 * 60
	// epochDays is the number of days from 0001-01-01 to 1970-01-01.
	epochDays = 719162
)

// daysAgo returns the unix time days*24h before now. Windows beyond the
// int64 range saturate instead of wrapping around.
func daysAgo(now time.Time, days int) int64 {
	unix, d := now.Unix(), int64(days)
	switch {
	case d > math.MaxInt64/secondsPerDay:
		return math.MinInt64
	case d < -((math.MaxInt64 - unix) / secondsPerDay):
		return math.MaxInt64
	}
	return unix - d*secondsPerDay
}

// dateRange returns the inclusive window of days calendar dates ending today
// (UTC). The start is clamped to 0001-01-01; a window of zero or fewer days
// starts after it ends.
func dateRange(now time.Time, days int) (start, end string) {
	today := now.UTC()

	maxDays := today.Unix()/secondsPerDay + epochDays + 1
	switch {
	case int64(days) > maxDays:
		days = int(maxDays)
	case days < 0:
		days = 0
	}
	return today.AddDate(0, 0, -(days - 1)).Format(dateLayout), today.Format(dateLayout)
}
