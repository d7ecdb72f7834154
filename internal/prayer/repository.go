package prayer

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jpbalagtas/church-companion-api/internal/database"
)

var ErrInternalServer = errors.New("internal server error")

type PrayerRepo interface {
	SaveRequest(ctx context.Context, text string, anonymous bool) (*PrayerRequest, error)
	GetPublicRequests(ctx context.Context, limit int) ([]PrayerRequest, error)
	GetAssignmentsBetween(ctx context.Context, from, to string) ([]TeamAssignment, error)
}

type repository struct {
	db *sql.DB
}

func NewPrayerRepo(dbService database.Service) PrayerRepo {
	return &repository{db: dbService.DB()}
}

func (r *repository) SaveRequest(ctx context.Context, text string, anonymous bool) (*PrayerRequest, error) {
	query := `
		INSERT INTO prayer_requests (request_text, is_anonymous)
		VALUES ($1, $2)
		RETURNING id, request_text, is_anonymous, created_at
	`

	var req PrayerRequest
	err := r.db.QueryRowContext(ctx, query, text, anonymous).Scan(
		&req.ID,
		&req.RequestText,
		&req.IsAnonymous,
		&req.CreatedAt,
	)
	if err != nil {
		return nil, ErrInternalServer
	}
	return &req, nil
}

func (r *repository) GetPublicRequests(ctx context.Context, limit int) ([]PrayerRequest, error) {
	query := `
		SELECT id, request_text, is_anonymous, created_at
		FROM prayer_requests
		WHERE is_anonymous = false
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var requests []PrayerRequest
	for rows.Next() {
		var req PrayerRequest
		if err := rows.Scan(&req.ID, &req.RequestText, &req.IsAnonymous, &req.CreatedAt); err != nil {
			return nil, ErrInternalServer
		}
		requests = append(requests, req)
	}
	if err = rows.Err(); err != nil {
		return nil, ErrInternalServer
	}

	return requests, nil
}

func (r *repository) GetAssignmentsBetween(ctx context.Context, from, to string) ([]TeamAssignment, error) {
	query := `
		SELECT id, assignment_date, team_name, leader_name, session_type
		FROM prayer_team_assignments
		WHERE assignment_date >= $1 AND assignment_date <= $2
		ORDER BY assignment_date ASC, session_type ASC
	`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var assignments []TeamAssignment
	for rows.Next() {
		var a TeamAssignment
		var date time.Time
		if err := rows.Scan(&a.ID, &date, &a.TeamName, &a.LeaderName, &a.SessionType); err != nil {
			return nil, ErrInternalServer
		}
		a.AssignmentDate = date.Format("2006-01-02")
		assignments = append(assignments, a)
	}
	if err = rows.Err(); err != nil {
		return nil, ErrInternalServer
	}

	return assignments, nil
}
