package leave

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	cases := map[string]Status{
		"approved":         StatusApproved,
		"Approved by HR":   StatusApproved,
		"REJECTED":         StatusRejected,
		"reject":           StatusRejected,
		"pending":          StatusPending,
		"waiting_approval": StatusPending,
		"":                 StatusPending,
		"cancelled":        StatusPending,
	}
	for in, want := range cases {
		assert.Equal(t, want, ClassifyStatus(in), in)
	}
}

func TestClassifyCategory(t *testing.T) {
	cases := map[string]Category{
		"Sick Leave": CategorySick,
		"casual":     CategoryCasual,
		"Paid Leave": CategoryAnnual,
		"ANNUAL":     CategoryAnnual,
		"Maternity":  CategoryOther,
		"":           CategoryOther,
	}
	for in, want := range cases {
		assert.Equal(t, want, ClassifyCategory(in), in)
	}
}

func TestNewRecord_DayFallback(t *testing.T) {
	two := decimal.NewFromInt(2)
	three := decimal.NewFromInt(3)

	r := NewRecord(RawLeave{LeaveType: "sick", Status: "approved", NoOfDays: &two, TotalDays: &three})
	assert.True(t, r.Days.Equal(two))
	assert.Equal(t, CategorySick, r.Category)
	assert.Equal(t, StatusApproved, r.DecisionStatus)

	r = NewRecord(RawLeave{TotalDays: &three})
	assert.True(t, r.Days.Equal(three))

	r = NewRecord(RawLeave{})
	assert.True(t, r.Days.IsZero())
}

func TestLeaveFilter_Validate(t *testing.T) {
	ok := "approved"
	bad := "done"
	assert.NoError(t, (&LeaveFilter{}).Validate())
	assert.NoError(t, (&LeaveFilter{Status: &ok}).Validate())
	assert.Error(t, (&LeaveFilter{Status: &bad}).Validate())
}
