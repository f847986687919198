package booking

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	bookingRepo "seminarly/database/repository/booking"
	memoryRepo "seminarly/database/repository/memory"
	"seminarly/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGateway struct {
	mu      sync.Mutex
	err     error
	delay   time.Duration
	amounts []int64
}

func (g *fakeGateway) CreatePaymentIntent(_ context.Context, amount int64, _, _ string) (*models.PaymentIntent, error) {
	if g.delay > 0 {
		time.Sleep(g.delay)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return nil, g.err
	}
	g.amounts = append(g.amounts, amount)
	return &models.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret"}, nil
}

type fakeImages struct {
	err      error
	uploaded int
}

func (f *fakeImages) Upload(_ context.Context, body io.Reader, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if _, err := io.ReadAll(body); err != nil {
		return "", err
	}
	f.uploaded++
	return "https://images.example.com/proof.png", nil
}

type recordingNotifier struct {
	mu   sync.Mutex
	err  error
	sent []models.Notification
}

func (n *recordingNotifier) Send(_ context.Context, msg models.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	return n.err
}

func (n *recordingNotifier) templates() []models.NotificationTemplate {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]models.NotificationTemplate, 0, len(n.sent))
	for _, m := range n.sent {
		out = append(out, m.Template)
	}
	return out
}

type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
}

func (p *recordingPublisher) Publish(_ context.Context, key string, _ models.BookingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

// failingCreateRepo fails every Create and delegates everything else.
type failingCreateRepo struct {
	bookingRepo.BookingRepository
}

func (failingCreateRepo) Create(context.Context, *models.Booking) error {
	return errors.New("write failed")
}

type fixture struct {
	svc       *DefaultBookingService
	store     *memoryRepo.Store
	gateway   *fakeGateway
	images    *fakeImages
	notifier  *recordingNotifier
	publisher *recordingPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memoryRepo.NewStore()
	f := &fixture{
		store:     store,
		gateway:   &fakeGateway{},
		images:    &fakeImages{},
		notifier:  &recordingNotifier{},
		publisher: &recordingPublisher{},
	}
	f.svc = NewDefaultBookingService(
		store.Seminars(), store.Bookings(), store.Users(),
		f.gateway, f.images, f.notifier, f.publisher,
		zap.NewNop(), time.Second,
	)
	return f
}

func (f *fixture) seedSeminar(t *testing.T, id string, fee float64, slots int) {
	t.Helper()
	require.NoError(t, f.store.Seminars().Create(context.Background(), &models.Seminar{
		ID: id, Title: "Practical Go", Date: "2026-11-02", StartTime: "10:00", EndTime: "12:00",
		Venue: "Hall A", Fee: fee, SlotsAvailable: slots,
	}))
}

func (f *fixture) seedUser(t *testing.T, id string) models.Principal {
	t.Helper()
	require.NoError(t, f.store.Users().Create(context.Background(), &models.User{
		ID: id, Name: "User " + id, Email: id + "@example.com", Role: models.RoleUser,
	}))
	return models.Principal{UserID: id, Role: models.RoleUser}
}

func (f *fixture) slots(t *testing.T, seminarID string) int {
	t.Helper()
	seminar, err := f.store.Seminars().GetByID(context.Background(), seminarID)
	require.NoError(t, err)
	return seminar.SlotsAvailable
}
