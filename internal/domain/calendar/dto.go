package calendar

type DayResponse struct {
	Date string `json:"date"`
	Day  string `json:"day"`
}

type WeekResponse struct {
	WeekStart     string        `json:"week_start"`
	WeekEnd       string        `json:"week_end"`
	Days          []DayResponse `json:"days"`
	PrevWeekStart string        `json:"prev_week_start"`
	NextWeekStart string        `json:"next_week_start"`
}

func NewWeekResponse(w Week) WeekResponse {
	resp := WeekResponse{
		WeekStart:     FormatDate(w.Start),
		WeekEnd:       FormatDate(w.End),
		Days:          make([]DayResponse, 0, DaysPerWeek),
		PrevWeekStart: FormatDate(w.Prev().Start),
		NextWeekStart: FormatDate(w.Next().Start),
	}
	for _, d := range w.Days {
		resp.Days = append(resp.Days, DayResponse{Date: FormatDate(d), Day: d.Weekday().String()})
	}
	return resp
}
