package booking

import (
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "splashshine/database/repository/booking"
	"splashshine/models"
	"splashshine/services/pricing"
	"splashshine/utils"
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	CacheClient *redis.Client
}

// CreateCleaning gates, quotes and persists a cleaning booking.
func (s *DefaultBookingService) CreateCleaning(in models.CleaningBookingInput) (*models.BookingResponse, error) {
	if err := ValidateCleaning(in, time.Now()); err != nil {
		return nil, err
	}

	quote := pricing.CleaningQuote(pricing.CleaningSelection{
		CleaningType:  in.CleaningType,
		TypeOfService: in.TypeOfService,
		AMCFrequency:  in.AMCFrequency,
		Services:      in.Services,
	})

	services := make([]models.ServiceArea, 0, len(in.Services))
	for service, tier := range in.Services {
		services = append(services, models.ServiceArea{Service: service, AreaTier: tier})
	}

	b := &models.Booking{
		ID:           uuid.New().String(),
		Kind:         models.KindCleaning,
		CustomerName: in.CustomerName,
		Mobile:       in.Mobile,
		Address:      in.Address,
		BookingDate:  in.BookingDate,
		Cleaning: &models.CleaningDetails{
			CleaningType:  in.CleaningType,
			TypeOfService: in.TypeOfService,
			AMCFrequency:  in.AMCFrequency,
			Services:      services,
			Category:      in.Category,
		},
		Hours:        quote.TotalHours,
		PricePerHour: quote.RatePerHour,
		TotalPrice:   quote.FinalAmount,
		Status:       models.StatusDraft,
	}

	return s.submit(b)
}

// CreateCarWash gates, prices and persists a mobile car wash booking.
func (s *DefaultBookingService) CreateCarWash(in models.CarWashBookingInput) (*models.BookingResponse, error) {
	if err := ValidateCarWash(in); err != nil {
		return nil, err
	}

	price := pricing.CarWashPrice(pricing.CarWashSelection{
		VehicleType:   in.VehicleType,
		WashType:      in.WashType,
		CarSize:       in.CarSize,
		ExtraServices: in.ExtraServices,
	})

	b := &models.Booking{
		ID:           uuid.New().String(),
		Kind:         models.KindCarWash,
		CustomerName: in.CustomerName,
		Mobile:       in.Mobile,
		Address:      in.Address,
		CarWash: &models.CarWashDetails{
			VehicleType:   in.VehicleType,
			WashType:      in.WashType,
			CarSize:       in.CarSize,
			ExtraServices: in.ExtraServices,
		},
		Hours:      1,
		TotalPrice: price,
		Status:     models.StatusDraft,
	}

	return s.submit(b)
}

// CreateMovers gates, prices and persists a packers & movers booking.
func (s *DefaultBookingService) CreateMovers(in models.MoversBookingInput) (*models.BookingResponse, error) {
	if err := ValidateMovers(in); err != nil {
		return nil, err
	}

	distance := pricing.ParseDistance(in.DistanceKm)
	price := pricing.MoversPrice(distance)

	b := &models.Booking{
		ID:           uuid.New().String(),
		Kind:         models.KindMovers,
		CustomerName: in.CustomerName,
		Mobile:       in.Mobile,
		Address:      in.Address,
		Movers: &models.MoversDetails{
			GoodsType:  in.GoodsType,
			DistanceKm: distance,
		},
		Hours:      1,
		TotalPrice: price,
		Status:     models.StatusDraft,
	}

	return s.submit(b)
}

// submit walks the booking through draft -> submitted -> awaiting_payment,
// persists it, and caches the payment session for the payment phase.
func (s *DefaultBookingService) submit(b *models.Booking) (*models.BookingResponse, error) {
	if err := Advance(b, models.StatusSubmitted); err != nil {
		return nil, err
	}
	if err := Advance(b, models.StatusAwaitingPayment); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(b); err != nil {
		utils.GetLogger().Error("failed to persist booking", zap.Error(err))
		return nil, fmt.Errorf("failed to save booking, please try again")
	}

	settlement := pricing.Split(b.TotalPrice).Lines()

	session := PaymentSession{
		BookingID:    b.ID,
		CustomerName: b.CustomerName,
		Mobile:       b.Mobile,
		Service:      b.ServiceDescription(),
		TotalPrice:   b.TotalPrice,
		Settlement:   settlement,
		CreatedAt:    time.Now(),
	}
	if s.CacheClient != nil {
		if err := SavePaymentSession(s.CacheClient, session); err != nil {
			// The booking is persisted; the payment phase recomputes from
			// Mongo when the cache misses.
			utils.GetLogger().Warn("failed to cache payment session", zap.Error(err))
		}
	}

	return &models.BookingResponse{
		BookingID:    b.ID,
		Kind:         b.Kind,
		CustomerName: b.CustomerName,
		Mobile:       b.Mobile,
		Address:      b.Address,
		BookingDate:  b.BookingDate,
		Service:      b.ServiceDescription(),
		Hours:        b.Hours,
		TotalPrice:   b.TotalPrice,
		Status:       b.Status,
		Settlement:   settlement,
	}, nil
}

// GetByID loads a booking.
func (s *DefaultBookingService) GetByID(id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &NotFoundError{BookingID: id}
	}
	return b, nil
}

// GetPaymentSummary returns the payment-phase values for a booking. It serves
// the cached session when one is still live and rebuilds it from the store on
// a miss, so an expired cache never blocks the payment screen.
func (s *DefaultBookingService) GetPaymentSummary(id string) (*PaymentSession, error) {
	if s.CacheClient != nil {
		if session, err := GetPaymentSession(s.CacheClient, id); err == nil {
			return session, nil
		}
	}

	b, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	session := PaymentSession{
		BookingID:    b.ID,
		CustomerName: b.CustomerName,
		Mobile:       b.Mobile,
		Service:      b.ServiceDescription(),
		TotalPrice:   b.TotalPrice,
		Settlement:   pricing.Split(b.TotalPrice).Lines(),
		CreatedAt:    time.Now(),
	}
	if s.CacheClient != nil {
		if err := SavePaymentSession(s.CacheClient, session); err != nil {
			utils.GetLogger().Warn("failed to re-cache payment session", zap.Error(err))
		}
	}
	return &session, nil
}

// MarkDocumentsIssued advances a booking to documents_issued once its advance
// is confirmed. Earlier or repeated downloads leave the status untouched.
func (s *DefaultBookingService) MarkDocumentsIssued(id string) error {
	b, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if !CanTransition(b.Status, models.StatusDocumentsIssued) {
		return nil
	}
	return s.Repo.UpdateStatus(id, models.StatusDocumentsIssued)
}
