package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBillIsOverdue(t *testing.T) {
	now := date(2026, time.March, 15)

	cases := []struct {
		name    string
		status  string
		dueDate time.Time
		want    bool
	}{
		{"unpaid past due", BillStatusUnpaid, date(2026, time.March, 14), true},
		{"unpaid due today", BillStatusUnpaid, date(2026, time.March, 15), false},
		{"unpaid due tomorrow", BillStatusUnpaid, date(2026, time.March, 16), false},
		{"paid past due never overdue", BillStatusPaid, date(2026, time.January, 1), false},
		{"already marked overdue is not unpaid", BillStatusOverdue, date(2026, time.January, 1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := Bill{Status: tc.status, DueDate: tc.dueDate}
			assert.Equal(t, tc.want, b.IsOverdue(now))
		})
	}
}

func TestBillIsOverdue_IgnoresTimeOfDay(t *testing.T) {
	// Due "yesterday" late in the evening is still a full day past
	b := Bill{Status: BillStatusUnpaid, DueDate: time.Date(2026, time.March, 14, 23, 59, 0, 0, time.UTC)}
	now := time.Date(2026, time.March, 15, 0, 1, 0, 0, time.UTC)
	assert.True(t, b.IsOverdue(now))
}
