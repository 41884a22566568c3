package booking

import (
	"context"
	"sync"

	"github.com/barbershop-booking/backend/internal/domain/schedule"
)

type AllBarbersAvailability struct {
	repo schedule.Repository
	calc *GetAvailability
}

func NewAllBarbersAvailability(
	repo schedule.Repository,
	calc *GetAvailability,
) *AllBarbersAvailability {
	return &AllBarbersAvailability{repo: repo, calc: calc}
}

// Execute fans the calculator out across every active barber. The per-barber
// computations are independent reads, so they run concurrently and the merge
// tolerates any completion order. Barbers with a terminal message (day off,
// all-day block) are dropped from the mapping, and a barber failing
// individually does not abort the aggregation.
func (uc *AllBarbersAvailability) Execute(
	ctx context.Context,
	date string,
	serviceID uint,
) (map[uint][]schedule.TimeSlot, error) {

	barbers, err := uc.repo.GetBarbers(ctx)
	if err != nil {
		return nil, err
	}

	results := make(map[uint][]schedule.TimeSlot, len(barbers))

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for _, b := range barbers {
		wg.Add(1)
		go func(barberID uint) {
			defer wg.Done()

			res, err := uc.calc.Execute(ctx, schedule.AvailabilityInput{
				BarberID:  barberID,
				Date:      date,
				ServiceID: serviceID,
			})
			if err != nil || res.Message != "" {
				return
			}

			mu.Lock()
			results[barberID] = res.Slots
			mu.Unlock()
		}(b.ID)
	}

	wg.Wait()
	return results, nil
}
