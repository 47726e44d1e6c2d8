package availability

import (
	"testing"
	"time"

	"padoo/config"
	"padoo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConsultationRepo struct {
	items []models.Consultation
}

func (r *fakeConsultationRepo) Create(c *models.Consultation) error {
	r.items = append(r.items, *c)
	return nil
}

func (r *fakeConsultationRepo) GetByID(id string) (*models.Consultation, error) {
	for _, c := range r.items {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, assert.AnError
}

func (r *fakeConsultationRepo) SetVoided(id string) error { return nil }

func (r *fakeConsultationRepo) ListByDate(date, technicianID string) ([]models.Consultation, error) {
	var result []models.Consultation
	for _, c := range r.items {
		if c.Date != date || c.Voided {
			continue
		}
		if technicianID != "" && c.TechnicianID != technicianID {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

type fakeReservationRepo struct {
	items []models.Reservation
}

func (r *fakeReservationRepo) Create(res *models.Reservation) error {
	r.items = append(r.items, *res)
	return nil
}

func (r *fakeReservationRepo) GetByID(id string) (*models.Reservation, error) {
	for _, res := range r.items {
		if res.ID == id {
			return &res, nil
		}
	}
	return nil, assert.AnError
}

func (r *fakeReservationRepo) SetStatus(id, status string) error { return nil }

func (r *fakeReservationRepo) ListByDate(date, technicianID string) ([]models.Reservation, error) {
	var result []models.Reservation
	for _, res := range r.items {
		if res.Date != date || res.Status != models.ReservationBooked {
			continue
		}
		if technicianID != "" && res.TechnicianID != technicianID {
			continue
		}
		result = append(result, res)
	}
	return result, nil
}

type fakeScheduleRepo struct {
	byDate map[string][]models.ShiftAssignment
}

func (r *fakeScheduleRepo) ReplaceForDate(date string, assignments []models.ShiftAssignment) error {
	r.byDate[date] = assignments
	return nil
}

func (r *fakeScheduleRepo) GetByDate(date string) ([]models.ShiftAssignment, error) {
	return r.byDate[date], nil
}

func (r *fakeScheduleRepo) GetOnDuty(date string) ([]models.ShiftAssignment, error) {
	var onDuty []models.ShiftAssignment
	for _, a := range r.byDate[date] {
		if a.Shift.Working() {
			onDuty = append(onDuty, a)
		}
	}
	return onDuty, nil
}

func setWindowConfig() {
	config.AppConfig.MorningShiftStart = 600
	config.AppConfig.MorningShiftEnd = 1320
	config.AppConfig.EveningShiftStart = 720
	config.AppConfig.EveningShiftEnd = 1380
}

func newTestService() *DefaultAvailabilityService {
	setWindowConfig()
	return &DefaultAvailabilityService{
		Consultations: &fakeConsultationRepo{items: []models.Consultation{
			{ID: "c1", TechnicianID: "t1", TechnicianName: "Mei", Date: "2026-08-28", Start: 720, End: 780},
			{ID: "c2", TechnicianID: "t1", TechnicianName: "Mei", Date: "2026-08-28", Start: 900, End: 960, Voided: true},
		}},
		Reservations: &fakeReservationRepo{items: []models.Reservation{
			{ID: "r1", TechnicianID: "t1", TechnicianName: "Mei", Date: "2026-08-28", Start: 1020, End: 1080, Status: models.ReservationBooked},
			{ID: "r2", TechnicianID: "t1", TechnicianName: "Mei", Date: "2026-08-28", Start: 1140, End: 1200, Status: models.ReservationCancelled},
		}},
		Schedule: &fakeScheduleRepo{byDate: map[string][]models.ShiftAssignment{
			"2026-08-28": {
				{Date: "2026-08-28", StaffID: "t1", Shift: models.ShiftMorning},
				{Date: "2026-08-28", StaffID: "t2", Shift: models.ShiftOff},
			},
		}},
	}
}

func TestMergedBookings(t *testing.T) {
	svc := newTestService()

	merged, err := svc.MergedBookings("2026-08-28", "t1")
	require.NoError(t, err)
	require.Len(t, merged, 2, "voided consultations and cancelled reservations stay out")

	assert.False(t, merged[0].IsReservation)
	assert.Equal(t, 720, merged[0].Start)
	assert.True(t, merged[1].IsReservation)
	assert.Equal(t, 1020, merged[1].Start)
}

func TestCheckConflict(t *testing.T) {
	svc := newTestService()

	conflict, err := svc.CheckConflict("2026-08-28", "t1", "Mei", 750, 810)
	require.NoError(t, err)
	assert.True(t, conflict)

	conflict, err = svc.CheckConflict("2026-08-28", "t1", "Mei", 780, 840)
	require.NoError(t, err)
	assert.False(t, conflict)

	// A voided consultation's slot is free again.
	conflict, err = svc.CheckConflict("2026-08-28", "t1", "Mei", 900, 960)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestTimelineHistorical(t *testing.T) {
	svc := newTestService()

	// Asking on a later day renders the full historical window.
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)
	timeline, err := svc.Timeline("2026-08-28", "t1", now)
	require.NoError(t, err)

	assert.Equal(t, models.ShiftMorning, timeline.Shift)
	assert.Equal(t, models.ShiftWindow{Start: 600, End: 1320}, timeline.Window)
	require.Len(t, timeline.Bookings, 2)
	assert.Equal(t, []models.Gap{
		{Start: 600, Duration: 120},
		{Start: 780, Duration: 240},
		{Start: 1080, Duration: 240},
	}, timeline.Gaps)
}

func TestTimelineLiveClipsToNow(t *testing.T) {
	svc := newTestService()

	now := time.Date(2026, 8, 28, 11, 0, 0, 0, time.UTC)
	timeline, err := svc.Timeline("2026-08-28", "t1", now)
	require.NoError(t, err)

	assert.Equal(t, models.Gap{Start: 660, Duration: 60}, timeline.Gaps[0])
}

func TestTimelineNotOnDuty(t *testing.T) {
	svc := newTestService()
	now := time.Date(2026, 8, 28, 11, 0, 0, 0, time.UTC)

	_, err := svc.Timeline("2026-08-28", "t2", now)
	assert.ErrorIs(t, err, ErrNotOnDuty)

	_, err = svc.Timeline("2026-08-28", "t9", now)
	assert.ErrorIs(t, err, ErrNotOnDuty)
}

func TestWindowForShift(t *testing.T) {
	svc := newTestService()

	window, ok := svc.WindowForShift(models.ShiftEvening)
	require.True(t, ok)
	assert.Equal(t, models.ShiftWindow{Start: 720, End: 1380}, window)

	_, ok = svc.WindowForShift(models.ShiftOff)
	assert.False(t, ok)
}
