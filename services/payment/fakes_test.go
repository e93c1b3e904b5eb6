package payment

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"smarthome/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memBookings struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]*models.Booking
}

func newMemBookings() *memBookings {
	return &memBookings{docs: map[primitive.ObjectID]*models.Booking{}}
}

func (m *memBookings) Create(_ context.Context, b *models.Booking) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.ID = primitive.NewObjectID()
	cp := *b
	m.docs[b.ID] = &cp
	return b.ID, nil
}

func (m *memBookings) FindDuplicate(_ context.Context, serviceID, userEmail, bookingDate string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.docs {
		if b.ServiceID == serviceID && b.UserEmail == userEmail && b.BookingDate == bookingDate {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memBookings) GetByID(_ context.Context, id primitive.ObjectID) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.docs[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (m *memBookings) ListByEmail(_ context.Context, email string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Booking
	for _, b := range m.docs {
		if b.UserEmail == email {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memBookings) ListPaid(_ context.Context) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Booking
	for _, b := range m.docs {
		if b.PaymentStatus == models.PaymentStatusPaid {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memBookings) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) (int64, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.docs[id]
	if !ok {
		return 0, 0, nil
	}
	if b.Status == status {
		return 1, 0, nil
	}
	b.Status = status
	return 1, 1, nil
}

func (m *memBookings) MarkPaid(_ context.Context, ref, trackingID string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(ref)
	if err != nil {
		return 0, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.docs[id]
	if !ok {
		return 0, nil
	}
	b.PaymentStatus = models.PaymentStatusPaid
	b.TrackingID = trackingID
	return 1, nil
}

func (m *memBookings) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		return 0, nil
	}
	delete(m.docs, id)
	return 1, nil
}

type memPayments struct {
	mu        sync.Mutex
	docs      []models.Payment
	createErr error
	// lookupBarrier, when set, holds every FindByTransactionID caller until all have arrived.
	lookupBarrier *sync.WaitGroup
}

func (m *memPayments) FindByTransactionID(_ context.Context, transactionID string) (*models.Payment, error) {
	if m.lookupBarrier != nil {
		m.lookupBarrier.Done()
		m.lookupBarrier.Wait()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.docs {
		if p.TransactionID == transactionID {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memPayments) FindByTrackingID(_ context.Context, trackingID string) (*models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.docs {
		if p.TrackingID == trackingID {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memPayments) Create(_ context.Context, p *models.Payment) (primitive.ObjectID, error) {
	if m.createErr != nil {
		return primitive.NilObjectID, m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = primitive.NewObjectID()
	m.docs = append(m.docs, *p)
	return p.ID, nil
}

func (m *memPayments) List(_ context.Context, customerEmail string) ([]models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Payment{}
	for _, p := range m.docs {
		if customerEmail == "" || p.CustomerEmail == customerEmail {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPayments) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}

type fakeGateway struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	created   []SessionRequest
	createErr error
	getErr    error
	seq       int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{sessions: map[string]*Session{}}
}

func (g *fakeGateway) CreateSession(_ context.Context, req SessionRequest) (*Session, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	id := fmt.Sprintf("cs_test_%d", g.seq)
	s := &Session{
		ID:            id,
		URL:           "https://checkout.example.com/pay/" + id,
		AmountTotal:   req.AmountMinor,
		Currency:      req.Currency,
		CustomerEmail: req.CustomerEmail,
		Metadata:      map[string]string{MetaServiceID: req.ServiceID, MetaServiceName: req.ProductName},
	}
	g.sessions[id] = s
	g.created = append(g.created, req)
	return s, nil
}

func (g *fakeGateway) RetrieveSession(_ context.Context, id string) (*Session, error) {
	if g.getErr != nil {
		return nil, g.getErr
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	cp := *s
	return &cp, nil
}

// settle marks a session paid under transactionID, as the gateway would after the customer pays.
func (g *fakeGateway) settle(id, transactionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := g.sessions[id]
	s.Paid = true
	s.TransactionID = transactionID
}

func (g *fakeGateway) put(s *Session) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions[s.ID] = s
}

var errStoreDown = errors.New("store unavailable")
