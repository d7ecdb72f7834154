package prayer

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
)

var (
	ErrEmptyRequest = errors.New("prayer request text is required")
	ErrBadMonth     = errors.New("month must be in YYYY-MM format")
)

const publicRequestLimit = 10

type PrayerService struct {
	repo PrayerRepo
}

func NewPrayerService(repo PrayerRepo) PrayerService {
	return PrayerService{repo: repo}
}

func (s *PrayerService) SubmitRequest(ctx context.Context, text string, anonymous bool) (*PrayerRequest, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyRequest
	}

	req, err := s.repo.SaveRequest(ctx, text, anonymous)
	if err != nil {
		log.Printf("error saving prayer request: %v", err)
		return nil, err
	}
	return req, nil
}

func (s *PrayerService) PublicRequests(ctx context.Context) ([]PrayerRequest, error) {
	requests, err := s.repo.GetPublicRequests(ctx, publicRequestLimit)
	if err != nil {
		log.Printf("error fetching public prayer requests: %v", err)
		return nil, err
	}
	return requests, nil
}

// MonthAssignments returns the team schedule for a calendar month
// given as YYYY-MM. An empty month defaults to the current one.
func (s *PrayerService) MonthAssignments(ctx context.Context, month string) ([]TeamAssignment, error) {
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, ErrBadMonth
	}
	end := start.AddDate(0, 1, -1)

	assignments, err := s.repo.GetAssignmentsBetween(ctx,
		start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		log.Printf("error fetching prayer team assignments: %v", err)
		return nil, err
	}
	return assignments, nil
}
