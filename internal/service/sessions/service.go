package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-BannerBookingService/internal/infra/storage/session"
	"github.com/m04kA/SMC-BannerBookingService/internal/service/sessions/models"
)

// Service сервис сессий страницы бронирования
type Service struct {
	loader       AvailabilityLoader
	sessionRepo  SessionRepository
	engine       DerivationEngine
	options      domain.AttributeOptions
	location     *time.Location
	metrics      Metrics
	timeProvider TimeProvider
	newID        func() string
	logger       Logger
}

// NewService создает новый экземпляр сервиса сессий
// metrics может быть nil, если метрики выключены
func NewService(
	loader AvailabilityLoader,
	sessionRepo SessionRepository,
	engine DerivationEngine,
	options domain.AttributeOptions,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *Service {
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &Service{
		loader:       loader,
		sessionRepo:  sessionRepo,
		engine:       engine,
		options:      options,
		location:     location,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// Create открывает новую сессию (свежая загрузка страницы)
// Загрузчик доступности вызывается один раз, минимальная дата вычисляется один раз,
// ledger засевается блоками "Unavailable"
func (s *Service) Create(ctx context.Context) (*models.SessionResponse, error) {
	now := s.timeProvider.Now()

	// 1. Загружаем занятые даты (без ошибок: при сбое получаем заглушку)
	availability := s.loader.Execute(ctx)

	// 2. Собираем сессию
	session := &domain.Session{
		ID:                s.newID(),
		CreatedAt:         now,
		LastAccessedAt:    now,
		MinDate:           domain.Tomorrow(now, s.location),
		DisabledIntervals: availability.Intervals,
		Fallback:          availability.Fallback,
		Ledger:            domain.NewLedger(),
	}
	session.Ledger.SeedFromExternal(session.DisabledIntervals, s.newID)

	// 3. Сохраняем
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		s.logger.Error("Create: failed to store session id=%s: %v", session.ID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	s.metrics.SetActiveSessions(s.sessionRepo.Count())

	s.logger.Info("Create: session id=%s created, min_date=%s, disabled=%d, fallback=%t",
		session.ID, domain.FormatDate(session.MinDate), len(session.DisabledIntervals), session.Fallback)

	return &models.SessionResponse{
		ID:            session.ID,
		CreatedAt:     session.CreatedAt,
		MinDate:       session.MinDate,
		DisabledDates: models.FromDomainIntervals(session.DisabledSnapshot()),
		Fallback:      session.Fallback,
		DailyRate:     s.engine.DailyRate(),
		Attributes:    models.FromDomainOptions(s.options),
		Reservations:  models.FromDomainRecords(session.Ledger.Records()),
	}, nil
}

// GetAvailability возвращает данные для date-range picker
func (s *Service) GetAvailability(ctx context.Context, sessionID string) (*models.AvailabilityResponse, error) {
	session, err := s.getSession(ctx, "GetAvailability", sessionID)
	if err != nil {
		return nil, err
	}

	return &models.AvailabilityResponse{
		SessionID:     session.ID,
		MinDate:       session.MinDate,
		DisabledDates: models.FromDomainIntervals(session.DisabledSnapshot()),
		Fallback:      session.Fallback,
	}, nil
}

// ListReservations возвращает события календаря в порядке добавления
func (s *Service) ListReservations(ctx context.Context, sessionID string) (*models.ReservationListResponse, error) {
	session, err := s.getSession(ctx, "ListReservations", sessionID)
	if err != nil {
		return nil, err
	}

	records := session.Ledger.Records()
	s.logger.Info("ListReservations: session id=%s has %d records", sessionID, len(records))

	return &models.ReservationListResponse{
		SessionID:    session.ID,
		Reservations: models.FromDomainRecords(records),
	}, nil
}

// GetReservationForEdit переводит форму в режим редактирования выбранного события
// Восстанавливается только продукт; вертикаль и локация берутся из значений по умолчанию
func (s *Service) GetReservationForEdit(ctx context.Context, sessionID, reservationID string) (*models.EditFormResponse, error) {
	session, err := s.getSession(ctx, "GetReservationForEdit", sessionID)
	if err != nil {
		return nil, err
	}

	record, ok := session.Ledger.Get(reservationID)
	if !ok {
		s.logger.Warn("GetReservationForEdit: reservation id=%s not found in session id=%s", reservationID, sessionID)
		return nil, ErrReservationNotFound
	}

	if !record.IsEditable() {
		s.logger.Warn("GetReservationForEdit: reservation id=%s in session id=%s is not editable", reservationID, sessionID)
		return nil, ErrNotEditable
	}

	dateRange, attrs, err := s.engine.FromReservationRecord(&record)
	if err != nil {
		s.logger.Error("GetReservationForEdit: failed to rehydrate reservation id=%s: %v", reservationID, err)
		return nil, fmt.Errorf("%w: GetReservationForEdit - rehydrate: %v", ErrInternal, err)
	}

	pricing, err := s.engine.Quote(dateRange)
	if err != nil {
		s.logger.Error("GetReservationForEdit: failed to quote reservation id=%s: %v", reservationID, err)
		return nil, fmt.Errorf("%w: GetReservationForEdit - quote: %v", ErrInternal, err)
	}

	return &models.EditFormResponse{
		Reservation: models.FromDomainRecord(record),
		StartDate:   *dateRange.StartDate,
		EndDate:     *dateRange.EndDate,
		Attributes:  attrs,
		Pricing:     pricing,
	}, nil
}

// GetAttributeOptions возвращает варианты выпадающих списков
func (s *Service) GetAttributeOptions() models.AttributesResponse {
	return models.FromDomainOptions(s.options)
}

// CleanupExpired удаляет сессии, к которым не обращались дольше ttl, и возвращает их количество
func (s *Service) CleanupExpired(ttl time.Duration) int {
	removed := s.sessionRepo.DeleteInactiveSince(s.timeProvider.Now().Add(-ttl))
	s.metrics.SetActiveSessions(s.sessionRepo.Count())

	if removed > 0 {
		s.logger.Info("CleanupExpired: removed %d sessions idle for more than %s", removed, ttl)
	}
	return removed
}

func (s *Service) getSession(ctx context.Context, op, sessionID string) (*domain.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("%s: session id=%s not found", op, sessionID)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("%s: repository error for session id=%s: %v", op, sessionID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return session, nil
}
