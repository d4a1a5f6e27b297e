package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-BannerBookingService/internal/infra/storage/session"
)

const operationCreate = "create"

// UseCase use case для подтверждения бронирования в режиме создания
type UseCase struct {
	sessionRepo SessionRepository
	engine      DerivationEngine
	options     domain.AttributeOptions
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	engine DerivationEngine,
	options domain.AttributeOptions,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &UseCase{
		sessionRepo: sessionRepo,
		engine:      engine,
		options:     options,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case создания записи
// При незавершённом выборе дат ledger не изменяется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: session=%s, product=%q, vertical=%q, location=%q",
		req.SessionID, req.Attributes.Product, req.Attributes.Vertical, req.Attributes.Location)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.options); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сессию
	session, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			uc.logger.Warn("CreateReservation: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("CreateReservation: failed to get session id=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	dateRange := req.dateRange()

	// 3. Диагностика пересечения с занятыми датами
	if interval, ok := findOverlap(dateRange, session.DisabledIntervals); ok {
		uc.logger.Warn("CreateReservation: selection %s..%s overlaps disabled interval %s..%s",
			domain.FormatDate(*req.StartDate), domain.FormatDate(*req.EndDate),
			domain.FormatDate(interval.StartDate), domain.FormatDate(interval.EndDate))
	}

	// 4. Строим запись
	record, err := uc.engine.ToReservationRecord(dateRange, req.Attributes)
	if err != nil {
		uc.logger.Warn("CreateReservation: failed to build record: %v", err)
		return nil, mapRangeError(err)
	}

	// 5. Считаем цену
	pricing, err := uc.engine.Quote(dateRange)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to quote: %v", err)
		return nil, fmt.Errorf("%w: failed to quote: %v", ErrInternal, err)
	}

	// 6. Добавляем в ledger
	session.Ledger.Append(*record)
	uc.metrics.ObserveReservation(operationCreate)

	uc.logger.Info("CreateReservation: reservation id=%s appended to session id=%s, days=%d, total=%.2f",
		record.ID, session.ID, pricing.Days, pricing.Total)

	return &Response{
		SessionID: session.ID,
		ID:        record.ID,
		Title:     record.Title,
		Start:     record.Start,
		End:       record.End,
		Pricing:   pricing,
	}, nil
}
