package leave

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusPending  Status = "pending"
)

type Category string

const (
	CategorySick   Category = "sick"
	CategoryCasual Category = "casual"
	CategoryAnnual Category = "annual"
	CategoryOther  Category = "other"
)

// RawLeave is a leave request as stored, before classification.
type RawLeave struct {
	ID         string
	EmployeeID string
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
	NoOfDays   *decimal.Decimal
	TotalDays  *decimal.Decimal
	Status     string
	Reason     *string
	CreatedAt  time.Time
}

// Record is a leave request tagged once at the storage boundary.
type Record struct {
	RawLeave
	Category       Category
	DecisionStatus Status
	Days           decimal.Decimal
}

// NewRecord classifies raw. The day count is no_of_days, then total_days, then zero.
func NewRecord(raw RawLeave) Record {
	days := decimal.Zero
	switch {
	case raw.NoOfDays != nil:
		days = *raw.NoOfDays
	case raw.TotalDays != nil:
		days = *raw.TotalDays
	}
	return Record{
		RawLeave:       raw,
		Category:       ClassifyCategory(raw.LeaveType),
		DecisionStatus: ClassifyStatus(raw.Status),
		Days:           days,
	}
}

// ClassifyStatus matches "approve" then "reject" as substrings, ignoring case.
// Anything else is pending.
func ClassifyStatus(s string) Status {
	s = strings.ToLower(s)
	switch {
	case strings.Contains(s, "approve"):
		return StatusApproved
	case strings.Contains(s, "reject"):
		return StatusRejected
	}
	return StatusPending
}

// ClassifyCategory matches the leave type name by substring, ignoring case.
func ClassifyCategory(leaveType string) Category {
	t := strings.ToLower(leaveType)
	switch {
	case strings.Contains(t, "sick"):
		return CategorySick
	case strings.Contains(t, "casual"):
		return CategoryCasual
	case strings.Contains(t, "paid"), strings.Contains(t, "annual"):
		return CategoryAnnual
	}
	return CategoryOther
}

// BalanceSnapshot is the remaining balance per leave type as the backend reports it.
type BalanceSnapshot struct {
	EmployeeID   string
	SickLeaves   decimal.Decimal
	CasualLeaves decimal.Decimal
	PaidLeaves   decimal.Decimal
	UpdatedAt    time.Time
}

// Figures are the display numbers of one leave type.
// Applied = approved + rejected. Allocated = available + approved.
type Figures struct {
	Available decimal.Decimal
	Applied   decimal.Decimal
	Allocated decimal.Decimal
}

type Summary struct {
	Sick   Figures
	Casual Figures
	Annual Figures
}
