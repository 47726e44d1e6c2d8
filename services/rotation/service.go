package rotation

import (
	"fmt"
	"sort"
	"time"

	rotationRepo "padoo/database/repository/rotation"
	scheduleRepo "padoo/database/repository/schedule"
	staffRepo "padoo/database/repository/staff"
	"padoo/models"
	"padoo/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultRotationService implements Service.
type DefaultRotationService struct {
	Queues   rotationRepo.RotationRepository
	Schedule scheduleRepo.ScheduleRepository
	Staff    staffRepo.StaffRepository

	// Now is the clock used for serve timestamps; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultRotationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// GetQueue returns the date's queue or ErrQueueNotFound.
func (s *DefaultRotationService) GetQueue(date string) (*models.RotationQueue, error) {
	queue, err := s.Queues.GetByDate(date)
	if err != nil {
		return nil, err
	}
	if queue == nil {
		return nil, fmt.Errorf("%w: %s", ErrQueueNotFound, date)
	}
	return queue, nil
}

// InitQueue builds the date's queue from the on-duty roster, seeded against
// yesterday's schedule and queue. Idempotent: an existing queue is returned
// untouched.
func (s *DefaultRotationService) InitQueue(date string) (*models.RotationQueue, error) {
	existing, err := s.Queues.GetByDate(date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	onDuty, err := s.Schedule.GetOnDuty(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load on-duty roster for %s: %w", date, err)
	}
	if len(onDuty) == 0 {
		// Nobody working: hand back an empty, unpersisted queue so the next
		// lookup after the roster is filled in can still create the real one.
		return &models.RotationQueue{Date: date}, nil
	}

	ids := make([]string, 0, len(onDuty))
	for _, a := range onDuty {
		ids = append(ids, a.StaffID)
	}
	profiles, err := s.Staff.GetActiveByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff profiles: %w", err)
	}
	profileByID := make(map[string]models.Staff, len(profiles))
	for _, p := range profiles {
		profileByID[p.ID] = p
	}

	yesterdayShifts, yesterdayCounts, err := s.loadYesterday(date)
	if err != nil {
		return nil, err
	}

	entries := make([]models.RotationEntry, 0, len(onDuty))
	for _, a := range onDuty {
		profile, ok := profileByID[a.StaffID]
		if !ok {
			// Scheduled but no active profile; leave them out of the queue.
			continue
		}
		var yShift *models.Shift
		if shift, ok := yesterdayShifts[a.StaffID]; ok {
			yShift = &shift
		}
		var yCount *int
		if count, ok := yesterdayCounts[a.StaffID]; ok {
			yCount = &count
		}
		entries = append(entries, models.RotationEntry{
			StaffID:  profile.ID,
			Name:     profile.Name,
			Avatar:   profile.Avatar,
			Phone:    profile.Phone,
			Gender:   profile.Gender,
			Shift:    a.Shift,
			Priority: seedPriority(a.Shift, yShift, yCount),
		})
	}
	if len(entries) == 0 {
		return &models.RotationQueue{Date: date}, nil
	}

	// Stable descending sort keeps equal-priority staff in roster order, so
	// identical inputs always produce the same queue.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Priority > entries[j].Priority
	})

	now := s.now()
	queue := &models.RotationQueue{
		ID:           uuid.New().String(),
		Date:         date,
		StaffList:    entries,
		CurrentIndex: 0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	queue.Reindex()

	if err := s.Queues.Insert(queue); err != nil {
		// A concurrent caller may have won the insert on the unique date
		// index; their queue is the queue.
		if raced, getErr := s.Queues.GetByDate(date); getErr == nil && raced != nil {
			return raced, nil
		}
		return nil, err
	}
	utils.GetLogger().Info("rotation queue initialized",
		zap.String("date", date), zap.Int("staff", len(entries)))
	return queue, nil
}

// loadYesterday fetches yesterday's shift per staff id and served counts from
// yesterday's queue. Both are optional: a fresh deployment simply has neither.
func (s *DefaultRotationService) loadYesterday(date string) (map[string]models.Shift, map[string]int, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	yesterday := day.AddDate(0, 0, -1).Format("2006-01-02")

	assignments, err := s.Schedule.GetByDate(yesterday)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load schedule for %s: %w", yesterday, err)
	}
	shifts := make(map[string]models.Shift, len(assignments))
	for _, a := range assignments {
		shifts[a.StaffID] = a.Shift
	}

	counts := make(map[string]int)
	queue, err := s.Queues.GetByDate(yesterday)
	if err != nil {
		return nil, nil, err
	}
	if queue != nil {
		for _, e := range queue.StaffList {
			counts[e.StaffID] = e.OrderCount
		}
	}
	return shifts, counts, nil
}

// ServeCustomer records a served customer for the staff member and persists
// the queue in a single document replace.
func (s *DefaultRotationService) ServeCustomer(date, staffID string, clockIn bool) (*models.RotationQueue, error) {
	queue, err := s.GetQueue(date)
	if err != nil {
		return nil, err
	}
	idx := queue.EntryIndex(staffID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s on %s", ErrStaffNotInQueue, staffID, date)
	}

	now := s.now()
	wasUpNext := idx == queue.CurrentIndex

	if clockIn {
		// Named request: the customer picked this technician, so the entry
		// keeps its place and its rotation turn.
		queue.StaffList[idx].OrderCount++
		queue.StaffList[idx].LastServedTime = &now
	} else {
		entry := queue.StaffList[idx]
		queue.StaffList = append(queue.StaffList[:idx], queue.StaffList[idx+1:]...)
		entry.OrderCount++
		entry.LastServedTime = &now
		queue.StaffList = append(queue.StaffList, entry)
		queue.Reindex()

		// Advance only when the served entry was the one up next; serving
		// someone out of turn leaves the pointer waiting on the same slot.
		if wasUpNext {
			queue.CurrentIndex = (queue.CurrentIndex + 1) % len(queue.StaffList)
		}
	}

	queue.UpdatedAt = now
	if err := s.Queues.Replace(queue); err != nil {
		return nil, err
	}
	return queue, nil
}

// MoveEntry splices the entry at fromIndex to toIndex and re-indexes every
// position. CurrentIndex stays a raw index by design.
func (s *DefaultRotationService) MoveEntry(date string, fromIndex, toIndex int) (*models.RotationQueue, error) {
	queue, err := s.GetQueue(date)
	if err != nil {
		return nil, err
	}
	n := len(queue.StaffList)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
		return nil, fmt.Errorf("%w: move %d -> %d in list of %d", ErrIndexOutOfRange, fromIndex, toIndex, n)
	}

	entry := queue.StaffList[fromIndex]
	queue.StaffList = append(queue.StaffList[:fromIndex], queue.StaffList[fromIndex+1:]...)
	queue.StaffList = append(queue.StaffList[:toIndex], append([]models.RotationEntry{entry}, queue.StaffList[toIndex:]...)...)
	queue.Reindex()

	queue.UpdatedAt = s.now()
	if err := s.Queues.Replace(queue); err != nil {
		return nil, err
	}
	return queue, nil
}
