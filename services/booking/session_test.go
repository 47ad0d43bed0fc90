package booking

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splashshine/models"
	"splashshine/services/pricing"
)

type fakeBookingStore struct {
	bookings map[string]*models.Booking
	getCalls int
}

func (r *fakeBookingStore) Create(b *models.Booking) error {
	if r.bookings == nil {
		r.bookings = map[string]*models.Booking{}
	}
	r.bookings[b.ID] = b
	return nil
}

func (r *fakeBookingStore) GetByID(id string) (*models.Booking, error) {
	r.getCalls++
	return r.bookings[id], nil
}

func (r *fakeBookingStore) GetAll() ([]models.Booking, error) { return nil, nil }

func (r *fakeBookingStore) UpdateStatus(id string, status models.BookingStatus) error {
	if b, ok := r.bookings[id]; ok {
		b.Status = status
	}
	return nil
}

func (r *fakeBookingStore) Count() (int64, error) { return int64(len(r.bookings)), nil }

func testCacheClient(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func storedCleaningBooking() *models.Booking {
	return &models.Booking{
		ID:           "bk-1",
		Kind:         models.KindCleaning,
		CustomerName: "Asha Rao",
		Mobile:       "9876543210",
		Address:      "12 MG Road",
		Cleaning:     &models.CleaningDetails{CleaningType: "deep"},
		Hours:        3.5,
		TotalPrice:   3500,
		Status:       models.StatusAwaitingPayment,
	}
}

func TestGetPaymentSummaryServesCachedSession(t *testing.T) {
	client := testCacheClient(t)
	store := &fakeBookingStore{}
	svc := &DefaultBookingService{Repo: store, CacheClient: client}

	cached := PaymentSession{
		BookingID:    "bk-1",
		CustomerName: "Asha Rao",
		Mobile:       "9876543210",
		Service:      "Deep Cleaning",
		TotalPrice:   3500,
		Settlement:   pricing.Split(3500).Lines(),
		CreatedAt:    time.Now(),
	}
	require.NoError(t, SavePaymentSession(client, cached))

	got, err := svc.GetPaymentSummary("bk-1")
	require.NoError(t, err)
	assert.Equal(t, cached.Settlement, got.Settlement)
	assert.Equal(t, "Deep Cleaning", got.Service)
	assert.Zero(t, store.getCalls, "a live session must not hit the store")
}

func TestGetPaymentSummaryRebuildsOnCacheMiss(t *testing.T) {
	client := testCacheClient(t)
	store := &fakeBookingStore{}
	require.NoError(t, store.Create(storedCleaningBooking()))
	svc := &DefaultBookingService{Repo: store, CacheClient: client}

	got, err := svc.GetPaymentSummary("bk-1")
	require.NoError(t, err)
	assert.Equal(t, "Deep Cleaning", got.Service)
	assert.Equal(t, 3500.0, got.TotalPrice)
	assert.Equal(t, 1750.0, got.Settlement.AdvanceAmount)
	assert.Equal(t, 1, store.getCalls)

	// The rebuilt session is re-cached; a second read never touches the store.
	got2, err := svc.GetPaymentSummary("bk-1")
	require.NoError(t, err)
	assert.Equal(t, got.Settlement, got2.Settlement)
	assert.Equal(t, 1, store.getCalls)
}

func TestGetPaymentSummaryWithoutCache(t *testing.T) {
	store := &fakeBookingStore{}
	require.NoError(t, store.Create(storedCleaningBooking()))
	svc := &DefaultBookingService{Repo: store}

	got, err := svc.GetPaymentSummary("bk-1")
	require.NoError(t, err)
	assert.Equal(t, 1750.0, got.Settlement.AdvanceAmount)
}

func TestGetPaymentSummaryUnknownBooking(t *testing.T) {
	svc := &DefaultBookingService{Repo: &fakeBookingStore{}, CacheClient: testCacheClient(t)}

	_, err := svc.GetPaymentSummary("missing")
	require.Error(t, err)
	var nferr *NotFoundError
	assert.ErrorAs(t, err, &nferr)
}
