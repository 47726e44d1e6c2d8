package rotation

import (
	"errors"
	"testing"
	"time"

	"padoo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQueueRepo struct {
	queues    map[string]*models.RotationQueue
	inserts   int
	replaces  int
	insertErr error
	// raceWinner, when set, lands in the store as Insert fails, mimicking a
	// concurrent creator beating us on the unique date index.
	raceWinner *models.RotationQueue
}

func newFakeQueueRepo() *fakeQueueRepo {
	return &fakeQueueRepo{queues: make(map[string]*models.RotationQueue)}
}

func (r *fakeQueueRepo) GetByDate(date string) (*models.RotationQueue, error) {
	return r.queues[date], nil
}

func (r *fakeQueueRepo) Insert(queue *models.RotationQueue) error {
	r.inserts++
	if r.insertErr != nil {
		if r.raceWinner != nil {
			r.queues[r.raceWinner.Date] = r.raceWinner
		}
		return r.insertErr
	}
	r.queues[queue.Date] = queue
	return nil
}

func (r *fakeQueueRepo) Replace(queue *models.RotationQueue) error {
	r.replaces++
	r.queues[queue.Date] = queue
	return nil
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

type fakeStaffRepo struct {
	staff map[string]models.Staff
}

func (r *fakeStaffRepo) Create(s *models.Staff) error {
	r.staff[s.ID] = *s
	return nil
}

func (r *fakeStaffRepo) GetByID(id string) (*models.Staff, error) {
	s, ok := r.staff[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &s, nil
}

func (r *fakeStaffRepo) GetActiveByIDs(ids []string) ([]models.Staff, error) {
	var result []models.Staff
	for _, id := range ids {
		if s, ok := r.staff[id]; ok && s.Status == models.StaffStatusActive {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *fakeStaffRepo) GetAll(status string) ([]models.Staff, error) {
	var result []models.Staff
	for _, s := range r.staff {
		if status == "" || s.Status == status {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *fakeStaffRepo) Update(id string, update map[string]interface{}) (*models.Staff, error) {
	s := r.staff[id]
	return &s, nil
}

const (
	today     = "2026-08-28"
	yesterday = "2026-08-27"
)

var testClock = time.Date(2026, 8, 28, 9, 5, 0, 0, time.UTC)

// newTestService wires a service over fakes with three active technicians:
// Mei and Hua on this morning's shift, Lan on the evening one. Yesterday Mei
// served five customers on the morning shift, Lan served one on the evening
// shift, and Hua was off.
func newTestService() (*DefaultRotationService, *fakeQueueRepo) {
	queues := newFakeQueueRepo()
	schedule := &fakeScheduleRepo{byDate: map[string][]models.ShiftAssignment{
		today: {
			{Date: today, StaffID: "s-mei", Shift: models.ShiftMorning},
			{Date: today, StaffID: "s-hua", Shift: models.ShiftMorning},
			{Date: today, StaffID: "s-lan", Shift: models.ShiftEvening},
		},
		yesterday: {
			{Date: yesterday, StaffID: "s-mei", Shift: models.ShiftMorning},
			{Date: yesterday, StaffID: "s-hua", Shift: models.ShiftOff},
			{Date: yesterday, StaffID: "s-lan", Shift: models.ShiftEvening},
		},
	}}
	staff := &fakeStaffRepo{staff: map[string]models.Staff{
		"s-mei": {ID: "s-mei", Name: "Mei", Status: models.StaffStatusActive},
		"s-hua": {ID: "s-hua", Name: "Hua", Status: models.StaffStatusActive},
		"s-lan": {ID: "s-lan", Name: "Lan", Status: models.StaffStatusActive},
	}}
	queues.queues[yesterday] = &models.RotationQueue{
		ID:   "q-yesterday",
		Date: yesterday,
		StaffList: []models.RotationEntry{
			{StaffID: "s-mei", Name: "Mei", Position: 0, OrderCount: 5},
			{StaffID: "s-lan", Name: "Lan", Position: 1, OrderCount: 1},
		},
	}
	svc := &DefaultRotationService{
		Queues:   queues,
		Schedule: schedule,
		Staff:    staff,
		Now:      func() time.Time { return testClock },
	}
	return svc, queues
}

func TestInitQueueSeedsAndSorts(t *testing.T) {
	svc, queues := newTestService()

	queue, err := svc.InitQueue(today)
	require.NoError(t, err)
	require.Len(t, queue.StaffList, 3)

	// Mei: morning base plus yesterday's five orders. Hua: morning base minus
	// the absence debit. Lan: evening, one order yesterday.
	assert.Equal(t, "s-mei", queue.StaffList[0].StaffID)
	assert.Equal(t, 1050, queue.StaffList[0].Priority)
	assert.Equal(t, "s-hua", queue.StaffList[1].StaffID)
	assert.Equal(t, 500, queue.StaffList[1].Priority)
	assert.Equal(t, "s-lan", queue.StaffList[2].StaffID)
	assert.Equal(t, 10, queue.StaffList[2].Priority)

	for i, e := range queue.StaffList {
		assert.Equal(t, i, e.Position)
		assert.Zero(t, e.OrderCount)
		assert.Nil(t, e.LastServedTime)
	}
	assert.Equal(t, 0, queue.CurrentIndex)
	assert.NotEmpty(t, queue.ID)
	assert.Equal(t, testClock, queue.CreatedAt)
	assert.Equal(t, 1, queues.inserts)
}

func TestInitQueueIsIdempotent(t *testing.T) {
	svc, queues := newTestService()

	first, err := svc.InitQueue(today)
	require.NoError(t, err)
	second, err := svc.InitQueue(today)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, queues.inserts)
}

func TestInitQueueEmptyRoster(t *testing.T) {
	svc, queues := newTestService()

	queue, err := svc.InitQueue("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", queue.Date)
	assert.Empty(t, queue.StaffList)
	assert.Zero(t, queues.inserts, "empty queue must not be persisted")

	// A later call after the roster lands still creates the real queue.
	_, ok := queues.queues["2026-09-01"]
	assert.False(t, ok)
}

func TestInitQueueSkipsInactiveProfiles(t *testing.T) {
	svc, _ := newTestService()
	svc.Staff.(*fakeStaffRepo).staff["s-hua"] = models.Staff{
		ID: "s-hua", Name: "Hua", Status: models.StaffStatusInactive,
	}

	queue, err := svc.InitQueue(today)
	require.NoError(t, err)
	require.Len(t, queue.StaffList, 2)
	assert.Equal(t, "s-mei", queue.StaffList[0].StaffID)
	assert.Equal(t, "s-lan", queue.StaffList[1].StaffID)
}

func TestInitQueueRecoversFromInsertRace(t *testing.T) {
	svc, queues := newTestService()
	winner := &models.RotationQueue{ID: "q-winner", Date: today}
	queues.insertErr = errors.New("E11000 duplicate key")
	queues.raceWinner = winner

	queue, err := svc.InitQueue(today)
	require.NoError(t, err)
	assert.Equal(t, "q-winner", queue.ID)
}

func TestGetQueueNotFound(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.GetQueue(today)
	assert.ErrorIs(t, err, ErrQueueNotFound)
}

func TestServeCustomerClockIn(t *testing.T) {
	svc, queues := newTestService()
	_, err := svc.InitQueue(today)
	require.NoError(t, err)

	// Named request for the technician in the middle of the queue.
	queue, err := svc.ServeCustomer(today, "s-hua", true)
	require.NoError(t, err)

	assert.Equal(t, "s-mei", queue.StaffList[0].StaffID)
	assert.Equal(t, "s-hua", queue.StaffList[1].StaffID)
	assert.Equal(t, "s-lan", queue.StaffList[2].StaffID)
	assert.Equal(t, 1, queue.StaffList[1].OrderCount)
	require.NotNil(t, queue.StaffList[1].LastServedTime)
	assert.Equal(t, testClock, *queue.StaffList[1].LastServedTime)
	assert.Equal(t, 0, queue.CurrentIndex, "named requests do not consume the rotation turn")
	assert.Equal(t, 1, queues.replaces)
}

func TestServeCustomerRotationAdvances(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.InitQueue(today)
	require.NoError(t, err)

	queue, err := svc.ServeCustomer(today, "s-mei", false)
	require.NoError(t, err)

	assert.Equal(t, "s-hua", queue.StaffList[0].StaffID)
	assert.Equal(t, "s-lan", queue.StaffList[1].StaffID)
	assert.Equal(t, "s-mei", queue.StaffList[2].StaffID)
	assert.Equal(t, 1, queue.StaffList[2].OrderCount)
	for i, e := range queue.StaffList {
		assert.Equal(t, i, e.Position)
	}
	assert.Equal(t, 1, queue.CurrentIndex)
}

func TestServeCustomerRotationOutOfTurn(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.InitQueue(today)
	require.NoError(t, err)

	// Operator sends Hua even though Mei is up next.
	queue, err := svc.ServeCustomer(today, "s-hua", false)
	require.NoError(t, err)

	assert.Equal(t, "s-mei", queue.StaffList[0].StaffID)
	assert.Equal(t, "s-lan", queue.StaffList[1].StaffID)
	assert.Equal(t, "s-hua", queue.StaffList[2].StaffID)
	assert.Equal(t, 0, queue.CurrentIndex, "pointer keeps waiting on the up-next slot")
}

func TestServeCustomerPointerWraps(t *testing.T) {
	svc, queues := newTestService()
	_, err := svc.InitQueue(today)
	require.NoError(t, err)
	queues.queues[today].CurrentIndex = 2

	queue, err := svc.ServeCustomer(today, "s-lan", false)
	require.NoError(t, err)

	// The tail entry served in turn stays at the tail and the pointer wraps.
	assert.Equal(t, "s-lan", queue.StaffList[2].StaffID)
	assert.Equal(t, 0, queue.CurrentIndex)
}

func TestServeCustomerUnknownStaff(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.InitQueue(today)
	require.NoError(t, err)

	_, err = svc.ServeCustomer(today, "s-nobody", false)
	assert.ErrorIs(t, err, ErrStaffNotInQueue)
}

func TestMoveEntry(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.InitQueue(today)
	require.NoError(t, err)

	queue, err := svc.MoveEntry(today, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, "s-lan", queue.StaffList[0].StaffID)
	assert.Equal(t, "s-mei", queue.StaffList[1].StaffID)
	assert.Equal(t, "s-hua", queue.StaffList[2].StaffID)
	for i, e := range queue.StaffList {
		assert.Equal(t, i, e.Position)
	}
	// The pointer is a raw index and now names a different technician; that
	// is the operator override taking effect.
	assert.Equal(t, 0, queue.CurrentIndex)
}

func TestMoveEntryOutOfRange(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.InitQueue(today)
	require.NoError(t, err)

	_, err = svc.MoveEntry(today, -1, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = svc.MoveEntry(today, 0, 99)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
