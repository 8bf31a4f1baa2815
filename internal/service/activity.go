package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"recipeshare/internal/models"
	"recipeshare/internal/repository"
)

// ActivityFilter narrows the event log by time range and/or event type.
type ActivityFilter struct {
	From time.Time
	To   time.Time
	Type string
}

type ActivityService struct {
	events repository.Events
}

var _ Activity = (*ActivityService)(nil)

func NewActivityService(events repository.Events) *ActivityService {
	return &ActivityService{events: events}
}

var errInvalidTimeRange = errors.New("invalid time range: from must be <= to")

func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func (s *ActivityService) List(ctx context.Context, f ActivityFilter) ([]models.ActivityEvent, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return nil, validationErr(errInvalidTimeRange.Error())
	}

	typ := strings.TrimSpace(strings.ToUpper(f.Type))
	return s.events.List(ctx, from, to, typ)
}
