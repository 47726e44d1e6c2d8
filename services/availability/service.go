package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"padoo/config"
	bookingRepo "padoo/database/repository/booking"
	scheduleRepo "padoo/database/repository/schedule"
	"padoo/models"
	"padoo/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ErrNotOnDuty is returned when a timeline is requested for a technician who
// has no working shift on the date.
var ErrNotOnDuty = errors.New("technician is not on duty")

const timelineCacheTTL = 60 * time.Second

// DefaultAvailabilityService implements Service over the consultation and
// reservation stores, with a short-lived redis cache for timeline responses.
type DefaultAvailabilityService struct {
	Consultations bookingRepo.ConsultationRepository
	Reservations  bookingRepo.ReservationRepository
	Schedule      scheduleRepo.ScheduleRepository
	Cache         *redis.Client
}

// MergedBookings returns non-voided consultations and booked reservations for
// the technician/date as one normalized view, each source through its own
// adapter.
func (s *DefaultAvailabilityService) MergedBookings(date, technicianID string) ([]models.Booking, error) {
	consultations, err := s.Consultations.ListByDate(date, technicianID)
	if err != nil {
		return nil, fmt.Errorf("failed to load consultations: %w", err)
	}
	reservations, err := s.Reservations.ListByDate(date, technicianID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}

	merged := make([]models.Booking, 0, len(consultations)+len(reservations))
	for _, c := range consultations {
		merged = append(merged, models.BookingFromConsultation(c))
	}
	for _, r := range reservations {
		merged = append(merged, models.BookingFromReservation(r))
	}
	return merged, nil
}

// CheckConflict reports whether the proposed interval collides with any
// existing booking for the technician on the date.
func (s *DefaultAvailabilityService) CheckConflict(date, technicianID, technicianName string, start, end int) (bool, error) {
	existing, err := s.MergedBookings(date, technicianID)
	if err != nil {
		return false, err
	}
	return HasConflict(existing, technicianID, technicianName, start, end), nil
}

// Timeline returns the technician's bookings plus open gaps for the date.
func (s *DefaultAvailabilityService) Timeline(date, technicianID string, now time.Time) (*models.Timeline, error) {
	if cached := s.cachedTimeline(date, technicianID); cached != nil {
		return cached, nil
	}

	shift, err := s.shiftFor(date, technicianID)
	if err != nil {
		return nil, err
	}
	window, ok := s.WindowForShift(shift)
	if !ok {
		return nil, fmt.Errorf("%w: shift %q on %s", ErrNotOnDuty, shift, date)
	}

	bookings, err := s.MergedBookings(date, technicianID)
	if err != nil {
		return nil, err
	}

	live := date == now.Format("2006-01-02")
	nowMinutes := now.Hour()*60 + now.Minute()

	timeline := &models.Timeline{
		TechnicianID: technicianID,
		Date:         date,
		Shift:        shift,
		Window:       window,
		Bookings:     bookings,
		Gaps:         ComputeGaps(bookings, window, nowMinutes, live),
	}
	s.storeTimeline(timeline)
	return timeline, nil
}

// InvalidateTimeline drops any cached timeline for the technician/date.
func (s *DefaultAvailabilityService) InvalidateTimeline(date, technicianID string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Del(ctx, timelineCacheKey(date, technicianID)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate timeline cache",
			zap.String("date", date), zap.String("technicianId", technicianID), zap.Error(err))
	}
}

// WindowForShift maps a working shift onto its canonical bookable window.
func (s *DefaultAvailabilityService) WindowForShift(shift models.Shift) (models.ShiftWindow, bool) {
	table := config.ShiftWindowTable()
	bounds, ok := table[string(shift)]
	if !ok {
		return models.ShiftWindow{}, false
	}
	return models.ShiftWindow{Start: bounds[0], End: bounds[1]}, true
}

func (s *DefaultAvailabilityService) shiftFor(date, technicianID string) (models.Shift, error) {
	assignments, err := s.Schedule.GetByDate(date)
	if err != nil {
		return "", fmt.Errorf("failed to load schedule for %s: %w", date, err)
	}
	for _, a := range assignments {
		if a.StaffID == technicianID {
			if !a.Shift.Working() {
				return "", fmt.Errorf("%w: shift %q on %s", ErrNotOnDuty, a.Shift, date)
			}
			return a.Shift, nil
		}
	}
	return "", fmt.Errorf("%w: no assignment on %s", ErrNotOnDuty, date)
}

func (s *DefaultAvailabilityService) cachedTimeline(date, technicianID string) *models.Timeline {
	if s.Cache == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := s.Cache.Get(ctx, timelineCacheKey(date, technicianID)).Result()
	if err != nil {
		return nil
	}
	var timeline models.Timeline
	if err := json.Unmarshal([]byte(data), &timeline); err != nil {
		return nil
	}
	return &timeline
}

func (s *DefaultAvailabilityService) storeTimeline(timeline *models.Timeline) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(timeline)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Set(ctx, timelineCacheKey(timeline.Date, timeline.TechnicianID), data, timelineCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache timeline", zap.Error(err))
	}
}

func timelineCacheKey(date, technicianID string) string {
	return "timeline:" + date + ":" + technicianID
}
