package services

import (
	"context"
	"sync"
	"time"

	"github.com/Renal37/laundry-service/internal/database"
	"github.com/Renal37/laundry-service/internal/models"
)

type fakeOrderStorage struct {
	mu        sync.Mutex
	orders    map[string]models.Order
	lastQuery models.OrderFilter
	err       error
}

func newFakeOrderStorage(orders ...models.Order) *fakeOrderStorage {
	s := &fakeOrderStorage{orders: map[string]models.Order{}}
	for _, o := range orders {
		s.orders[o.ID] = o
	}
	return s
}

func (s *fakeOrderStorage) CreateOrder(_ context.Context, order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.orders[order.ID] = order
	return nil
}

func (s *fakeOrderStorage) FindOrder(_ context.Context, orderID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	o, ok := s.orders[orderID]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (s *fakeOrderStorage) FindOrders(_ context.Context, filter models.OrderFilter) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastQuery = filter
	if s.err != nil {
		return nil, s.err
	}
	result := []models.Order{}
	for _, o := range s.orders {
		if filter.UserID != "" && !o.OwnedBy(filter.UserID) {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		result = append(result, o)
	}
	return result, nil
}

func (s *fakeOrderStorage) UpdateOrderStatus(_ context.Context, orderID string, status models.OrderStatus) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	o, ok := s.orders[orderID]
	if !ok {
		return nil, nil
	}
	o.Status = status
	s.orders[orderID] = o
	return &o, nil
}

func (s *fakeOrderStorage) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

type fakeProfiles map[string]database.UserDB

func (p fakeProfiles) FindUserByID(_ context.Context, userID string) (*database.UserDB, error) {
	u, ok := p[userID]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

type fakeNotifier struct {
	orders []models.Order
}

func (n *fakeNotifier) OrderPlaced(order models.Order) {
	n.orders = append(n.orders, order)
}

// fakeQueue records queue calls and lets the test run jobs by hand.
type fakeQueue struct {
	enqueued  []Job
	scheduled []time.Duration
	next      []Job
	paused    []time.Duration
	err       error
}

func (q *fakeQueue) Enqueue(job Job) error {
	if q.err != nil {
		return q.err
	}
	q.enqueued = append(q.enqueued, job)
	return nil
}

func (q *fakeQueue) ScheduleJob(job Job, delay time.Duration) {
	q.scheduled = append(q.scheduled, delay)
	q.next = append(q.next, job)
}

func (q *fakeQueue) PauseAndResume(delay time.Duration) {
	q.paused = append(q.paused, delay)
}

type fakeSender struct {
	mu       sync.Mutex
	messages []string
	errs     []error
}

func (s *fakeSender) Send(_ context.Context, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		return err
	}
	return nil
}

func (s *fakeSender) sent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.messages...)
}

type fakeCache struct {
	values map[string]string
	ttl    time.Duration
	getErr error
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	switch v := value.(type) {
	case []byte:
		c.values[key] = string(v)
	case string:
		c.values[key] = v
	}
	c.ttl = ttl
	return nil
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	if c.getErr != nil {
		return "", c.getErr
	}
	return c.values[key], nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.values, k)
	}
	return nil
}

func (c *fakeCache) GenerateKey(operation, key string) string {
	return "test:" + operation + ":" + key
}

type fakeStatsStorage struct {
	totals []models.StatusTotals
	users  int64
	calls  int
}

func (s *fakeStatsStorage) FindStatusTotals(context.Context) ([]models.StatusTotals, error) {
	s.calls++
	return s.totals, nil
}

func (s *fakeStatsStorage) CountUsers(context.Context) (int64, error) {
	return s.users, nil
}

type fakeAuthStorage struct {
	users map[string]database.UserDB
	seq   int
}

func newFakeAuthStorage() *fakeAuthStorage {
	return &fakeAuthStorage{users: map[string]database.UserDB{}}
}

func (s *fakeAuthStorage) CreateUser(_ context.Context, user database.UserDB) error {
	if _, ok := s.users[user.Login]; ok {
		return database.ErrDuplicateUser
	}
	s.seq++
	user.ID = string(rune('a' + s.seq))
	s.users[user.Login] = user
	return nil
}

func (s *fakeAuthStorage) FindUser(_ context.Context, login string) (*database.UserDB, error) {
	u, ok := s.users[login]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *fakeAuthStorage) FindUsers(context.Context) ([]database.UserDB, error) {
	result := []database.UserDB{}
	for _, u := range s.users {
		result = append(result, u)
	}
	return result, nil
}

func (s *fakeAuthStorage) UpdateProfile(_ context.Context, userID string, profile models.Profile) (*database.UserDB, error) {
	for login, u := range s.users {
		if u.ID == userID {
			u.Profile = profile
			s.users[login] = u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *fakeAuthStorage) UpsertAdmin(_ context.Context, user database.UserDB) (bool, error) {
	existing, ok := s.users[user.Login]
	if ok {
		existing.Hash = user.Hash
		existing.Role = models.RoleAdmin
		s.users[user.Login] = existing
		return false, nil
	}
	user.Role = models.RoleAdmin
	s.users[user.Login] = user
	return true, nil
}
