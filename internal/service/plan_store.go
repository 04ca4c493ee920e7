package service

import (
	"sync"
	"time"

	"github.com/bruinplan/planner-api/internal/dto"
)

// storedPlan keeps a generated plan around long enough for the UI to fetch
// it again or ask for the best schedule.
type storedPlan struct {
	Response    dto.GeneratePlanResponse
	RequestedAt time.Time
}

type planStore struct {
	ttl   time.Duration
	mu    sync.RWMutex
	items map[string]storedPlan
}

func newPlanStore(ttl time.Duration) *planStore {
	return &planStore{
		ttl:   ttl,
		items: make(map[string]storedPlan),
	}
}

func (s *planStore) Save(id string, resp dto.GeneratePlanResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = storedPlan{Response: resp, RequestedAt: time.Now()}
}

func (s *planStore) Get(id string) (dto.GeneratePlanResponse, bool) {
	s.mu.RLock()
	plan, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return dto.GeneratePlanResponse{}, false
	}
	if time.Since(plan.RequestedAt) > s.ttl {
		s.Delete(id)
		return dto.GeneratePlanResponse{}, false
	}
	return plan.Response, true
}

func (s *planStore) Delete(id string) {
	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()
}
