package prayer

import "time"

type PrayerRequest struct {
	ID          string    `json:"id"`
	RequestText string    `json:"request_text"`
	IsAnonymous bool      `json:"is_anonymous"`
	CreatedAt   time.Time `json:"created_at"`
}

// TeamAssignment schedules a prayer team for one session of a day.
type TeamAssignment struct {
	ID             string `json:"id"`
	AssignmentDate string `json:"assignment_date"`
	TeamName       string `json:"team_name"`
	LeaderName     string `json:"leader_name"`
	SessionType    string `json:"session_type"` // "morning" or "evening"
}

type SubmitRequestBody struct {
	RequestText string `json:"request_text"`
	IsAnonymous bool   `json:"is_anonymous"`
}
