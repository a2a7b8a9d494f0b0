package attendance

import (
	"fmt"
	"strings"
	"time"
)

// MaxHoursPerDay bounds the hours a single day may carry.
const MaxHoursPerDay = 24

type Status string

const (
	StatusNone    Status = ""
	StatusPresent Status = "Present"
	StatusLeave   Status = "Leave"
	StatusWFH     Status = "WFH"
)

// ParseStatus maps a wire status to its tag, ignoring case and surrounding space.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return StatusNone, nil
	case "present":
		return StatusPresent, nil
	case "leave":
		return StatusLeave, nil
	case "wfh", "work from home":
		return StatusWFH, nil
	}
	return StatusNone, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

type SubTask struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

// ProjectAllocation is the work a day spent on one project.
type ProjectAllocation struct {
	ProjectID   string    `json:"project_id"`
	ProjectName string    `json:"project_name"`
	SubTasks    []SubTask `json:"sub_tasks"`
}

// Row is one day of the active week.
type Row struct {
	Date      time.Time
	Day       time.Weekday
	Status    Status
	Hours     float64
	Projects  []ProjectAllocation
	Submitted bool
	WeekOff   bool
	Edited    bool
}

// HasData reports whether the row carries a status, positive hours or any project.
func (r Row) HasData() bool {
	return r.Status != StatusNone || r.Hours > 0 || len(r.Projects) > 0
}

// Clone returns a deep copy of the row.
func (r Row) Clone() Row {
	c := r
	c.Projects = cloneProjects(r.Projects)
	return c
}

func cloneProjects(projects []ProjectAllocation) []ProjectAllocation {
	if projects == nil {
		return nil
	}
	out := make([]ProjectAllocation, len(projects))
	for i, p := range projects {
		out[i] = p
		if p.SubTasks != nil {
			out[i].SubTasks = append([]SubTask(nil), p.SubTasks...)
		}
	}
	return out
}

// RowPatch is a partial update to a Row. Nil fields are left unchanged.
type RowPatch struct {
	Status   *Status
	Hours    *float64
	Projects *[]ProjectAllocation
}

// ApplyPatch merges p into r. A Leave status always forces hours to zero.
func ApplyPatch(r Row, p RowPatch) Row {
	out := r.Clone()
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.Hours != nil {
		out.Hours = *p.Hours
	}
	if p.Projects != nil {
		out.Projects = cloneProjects(*p.Projects)
	}
	if out.Status == StatusLeave {
		out.Hours = 0
	}
	out.Edited = true
	return out
}

type RowState string

const (
	RowStateEmpty     RowState = "empty"
	RowStateEditing   RowState = "editing"
	RowStateValid     RowState = "valid"
	RowStateInvalid   RowState = "invalid"
	RowStateSubmitted RowState = "submitted"
)

// ProjectOption is a project reference as the portal exchanges it.
type ProjectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ProjectSubTasks struct {
	Project  string    `json:"project"`
	SubTasks []SubTask `json:"subTasks"`
}

// DayRecord is what the server already knows about one day.
type DayRecord struct {
	Action   string            `json:"action,omitempty"`
	Status   string            `json:"status,omitempty"`
	Hours    float64           `json:"hours"`
	Projects []ProjectOption   `json:"projects"`
	SubTasks []ProjectSubTasks `json:"subTasks"`
}

// Snapshot is the server's attendance keyed by ISO date.
type Snapshot map[string]DayRecord

// Entry is a stored attendance day.
type Entry struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Action     Status
	Hours      float64
	ProjectIDs []int
	SubTasks   []SubmissionSubTask
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type SubmissionSubTask struct {
	ProjectID int     `json:"project_id"`
	SubTask   string  `json:"sub_task"`
	Hours     float64 `json:"hours"`
}

type SubmissionEntry struct {
	Date       string              `json:"date"`
	Action     Status              `json:"action"`
	Hours      float64             `json:"hours"`
	ProjectIDs []int               `json:"project_ids"`
	SubTasks   []SubmissionSubTask `json:"sub_tasks"`
}

// SubmissionPayload is keyed by ISO date.
type SubmissionPayload map[string]SubmissionEntry
