package booking

import (
	"context"
	"sync"
	"time"

	"github.com/barbershop-booking/backend/internal/domain/schedule"
	"github.com/barbershop-booking/backend/internal/httperr"
	"github.com/barbershop-booking/backend/internal/models"
)

// fakeRepo is an in-memory schedule.Repository mirroring the storage
// semantics the engine depends on: cancelled bookings invisible to overlap
// reads, exclusive create re-checking conflicts under its own lock.
type fakeRepo struct {
	mu       sync.Mutex
	barbers  map[uint]*models.Barber
	services map[uint]*models.Service
	bookings []models.Booking
	blocks   []models.BlockedTime
	nextID   uint
}

var _ schedule.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		barbers:  make(map[uint]*models.Barber),
		services: make(map[uint]*models.Service),
		nextID:   1,
	}
}

func (f *fakeRepo) addBarber(b models.Barber) *models.Barber {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b.ID == 0 {
		b.ID = f.nextID
		f.nextID++
	}
	f.barbers[b.ID] = &b
	return &b
}

func (f *fakeRepo) addService(s models.Service) *models.Service {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s.ID == 0 {
		s.ID = f.nextID
		f.nextID++
	}
	f.services[s.ID] = &s
	return &s
}

func (f *fakeRepo) addBooking(bk models.Booking) models.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	if bk.ID == 0 {
		bk.ID = f.nextID
		f.nextID++
	}
	if bk.Status == "" {
		bk.Status = string(schedule.StatusConfirmed)
	}
	f.bookings = append(f.bookings, bk)
	return bk
}

func (f *fakeRepo) addBlock(bt models.BlockedTime) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if bt.ID == 0 {
		bt.ID = f.nextID
		f.nextID++
	}
	f.blocks = append(f.blocks, bt)
}

func (f *fakeRepo) GetBarberByID(_ context.Context, id uint) (*models.Barber, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.barbers[id]
	if !ok || !b.IsActive {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) GetBarbers(_ context.Context) ([]models.Barber, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Barber
	for _, b := range f.barbers {
		if b.IsActive {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetServiceByID(_ context.Context, id uint) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.services[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeRepo) GetBookingsByBarberAndDate(_ context.Context, barberID uint, date string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, bk := range f.bookings {
		if bk.BarberID == barberID && bk.Date == date && bk.Status != string(schedule.StatusCancelled) {
			out = append(out, bk)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetBookingByID(_ context.Context, id uint) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			cp := f.bookings[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) ListBookings(_ context.Context, page, limit int, status string) ([]models.Booking, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []models.Booking
	for _, bk := range f.bookings {
		if status == "" || bk.Status == status {
			matched = append(matched, bk)
		}
	}
	total := int64(len(matched))
	start := (page - 1) * limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeRepo) CreateBookingExclusive(_ context.Context, bk *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.bookings {
		if existing.BarberID != bk.BarberID || existing.Date != bk.Date {
			continue
		}
		if existing.Status == string(schedule.StatusCancelled) {
			continue
		}
		// zero-padded HH:MM compares correctly as strings
		if existing.StartTime < bk.EndTime && existing.EndTime > bk.StartTime {
			return httperr.ErrBusiness("slot_taken")
		}
	}
	bk.ID = f.nextID
	f.nextID++
	bk.CreatedAt = time.Now()
	f.bookings = append(f.bookings, *bk)
	return nil
}

func (f *fakeRepo) UpdateBooking(_ context.Context, bk *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == bk.ID {
			f.bookings[i] = *bk
			return nil
		}
	}
	return nil
}

func (f *fakeRepo) GetBlockedTimes(_ context.Context, barberID uint, date string) ([]models.BlockedTime, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.BlockedTime
	for _, bt := range f.blocks {
		if bt.BarberID == barberID && bt.Date == date {
			out = append(out, bt)
		}
	}
	return out, nil
}

// --------- shared fixtures ---------

// monday is a date far enough ahead that the "past date" and lead-time rules
// never trip unless a test pins now.
const (
	monday = "2026-03-02"
	sunday = "2026-03-01"
)

func weekdayBarber(repo *fakeRepo) *models.Barber {
	var hours schedule.WeekSchedule
	for d := time.Monday; d <= time.Friday; d++ {
		hours.Set(d, schedule.DayHours{Start: "09:00", End: "18:00", IsWorking: true})
	}
	return repo.addBarber(models.Barber{Name: "Marcus", WorkingHours: hours, IsActive: true})
}

func haircut(repo *fakeRepo) *models.Service {
	return repo.addService(models.Service{Name: "Haircut", DurationMin: 30, Price: 25, Active: true})
}

// fixedNow pins the clock well before the fixture dates.
func fixedNow() time.Time {
	return time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
}
