package dto

type SessionOutput struct {
	ID         string
	Date       string
	Start      string
	DurationMS int64
	Type       string
}

type DayTotalOutput struct {
	Date    string
	Minutes int
}

type SummaryOutput struct {
	Streak        int
	Daily         []DayTotalOutput
	TotalMinutes  int
	WeeklyAverage int
	TotalSessions int
	Recent        []SessionOutput
}
