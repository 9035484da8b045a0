package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/validation"
)

// CheckerCall records one ExistsByID invocation.
type CheckerCall struct {
	Resource domain.Resource
	ID       int64
}

// MockChecker implements validation.Checker and records every call.
// Without ExistsByIDFn, an ID exists when it is listed in Existing for its resource.
type MockChecker struct {
	ExistsByIDFn func(ctx context.Context, resource domain.Resource, id int64) (bool, error)
	Existing     map[domain.Resource][]int64

	mu    sync.Mutex
	calls []CheckerCall
}

var _ validation.Checker = (*MockChecker)(nil)

// ExistsByID implements validation.Checker.
func (m *MockChecker) ExistsByID(ctx context.Context, resource domain.Resource, id int64) (bool, error) {
	m.mu.Lock()
	m.calls = append(m.calls, CheckerCall{Resource: resource, ID: id})
	m.mu.Unlock()

	if m.ExistsByIDFn != nil {
		return m.ExistsByIDFn(ctx, resource, id)
	}
	for _, existing := range m.Existing[resource] {
		if existing == id {
			return true, nil
		}
	}
	return false, nil
}

// Calls returns a copy of the recorded calls in order.
func (m *MockChecker) Calls() []CheckerCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]CheckerCall(nil), m.calls...)
}

// CallCount returns the number of ExistsByID calls made so far.
func (m *MockChecker) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
