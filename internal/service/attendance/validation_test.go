package attendance

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/weekoff"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := calendar.ParseDate(s)
	require.NoError(t, err)
	return d
}

// emptyWeek returns the seven empty rows of the week containing ref.
func emptyWeek(t *testing.T, ref string) []attendance.Row {
	t.Helper()
	w := calendar.GetWeekDates(mustDate(t, ref))
	rows := make([]attendance.Row, 0, calendar.DaysPerWeek)
	for _, d := range w.Days {
		rows = append(rows, attendance.Row{Date: d, Day: d.Weekday()})
	}
	return rows
}

func validationErrors(t *testing.T, err error) validator.ValidationErrors {
	t.Helper()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	return verrs
}

func TestValidateSubmission_WeekOffViolation(t *testing.T) {
	rows := emptyWeek(t, "2024-06-10")
	rows[0].Status = attendance.StatusPresent
	rows[0].Hours = 8
	rows[5].Status = attendance.StatusPresent // Saturday
	rows[5].Hours = 4

	_, err := ValidateSubmission(rows, weekoff.NewDaySet(time.Saturday, time.Sunday))

	verrs := validationErrors(t, err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "week_off", verrs[0].Field)
	assert.Contains(t, verrs[0].Message, "Saturday")
}

func TestValidateSubmission_ReportsEveryOffDay(t *testing.T) {
	rows := emptyWeek(t, "2024-06-10")
	rows[5].Hours = 1
	rows[6].Projects = []attendance.ProjectAllocation{{ProjectID: "3"}}

	_, err := ValidateSubmission(rows, weekoff.NewDaySet(time.Saturday, time.Sunday))

	verrs := validationErrors(t, err)
	require.Len(t, verrs, 2)
	assert.Contains(t, verrs[0].Message, "Saturday")
	assert.Contains(t, verrs[1].Message, "Sunday")
}

func TestValidateSubmission_OnlyOffDayDataIsRejected(t *testing.T) {
	rows := emptyWeek(t, "2024-06-10")
	rows[6].Status = attendance.StatusWFH

	_, err := ValidateSubmission(rows, weekoff.NewDaySet(time.Sunday))

	verrs := validationErrors(t, err)
	assert.Equal(t, "week_off", verrs[0].Field)
}

func TestValidateSubmission_NoData(t *testing.T) {
	_, err := ValidateSubmission(emptyWeek(t, "2024-06-10"), weekoff.NewDaySet())

	verrs := validationErrors(t, err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "attendance", verrs[0].Field)
	assert.Equal(t, attendance.ErrNoAttendanceData.Error(), verrs[0].Message)
}

func TestValidateSubmission_HoursOutOfRange(t *testing.T) {
	rows := emptyWeek(t, "2024-06-10")
	rows[1].Status = attendance.StatusPresent
	rows[1].Hours = 25
	rows[2].Status = attendance.StatusPresent
	rows[2].Hours = 24

	_, err := ValidateSubmission(rows, weekoff.NewDaySet())

	verrs := validationErrors(t, err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "hours", verrs[0].Field)
	assert.Contains(t, verrs[0].Message, "Tuesday (2024-06-11)")
}

func TestValidateSubmission_BuildsPayload(t *testing.T) {
	rows := emptyWeek(t, "2024-06-10")
	rows[0].Status = attendance.StatusPresent
	rows[0].Hours = 8
	rows[0].Projects = []attendance.ProjectAllocation{
		{ProjectID: "abc", SubTasks: []attendance.SubTask{{Name: "ignored", Hours: 1}}},
		{ProjectID: "7", SubTasks: []attendance.SubTask{{Name: "  ", Hours: 1}, {Name: " Design ", Hours: 2}}},
		{ProjectID: "7", SubTasks: []attendance.SubTask{{Name: "Review", Hours: 3}}},
		{ProjectID: "9"},
		{ProjectID: "4294967303", SubTasks: []attendance.SubTask{{Name: "Overflow", Hours: 1}}},
	}
	rows[1] = attendance.ApplyPatch(rows[1], attendance.RowPatch{
		Status: statusPtr(attendance.StatusLeave),
		Hours:  floatPtr(6),
	})

	payload, err := ValidateSubmission(rows, weekoff.NewDaySet(time.Saturday))
	require.NoError(t, err)
	require.Len(t, payload, 2)

	mon := payload["2024-06-10"]
	assert.Equal(t, "2024-06-10", mon.Date)
	assert.Equal(t, attendance.StatusPresent, mon.Action)
	assert.Equal(t, []int{7, 9}, mon.ProjectIDs)
	assert.Equal(t, []attendance.SubmissionSubTask{
		{ProjectID: 7, SubTask: "Design", Hours: 2},
		{ProjectID: 7, SubTask: "Review", Hours: 3},
	}, mon.SubTasks)

	tue := payload["2024-06-11"]
	assert.Equal(t, attendance.StatusLeave, tue.Action)
	assert.Zero(t, tue.Hours)
	assert.NotNil(t, tue.ProjectIDs)
	assert.NotNil(t, tue.SubTasks)

	_, ok := payload["2024-06-12"]
	assert.False(t, ok, "empty rows are not submitted")
}

func statusPtr(s attendance.Status) *attendance.Status { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestParseProjectID(t *testing.T) {
	cases := map[string]bool{
		"7":           true,
		" 12 ":        true,
		"2147483647":  true,
		"2147483648":  false,
		"4294967303":  false,
		"-2147483649": false,
		"abc":         false,
		"":            false,
	}
	for in, want := range cases {
		_, ok := parseProjectID(in)
		assert.Equal(t, want, ok, in)
	}

	id, _ := parseProjectID(" 12 ")
	assert.Equal(t, 12, id)
}
