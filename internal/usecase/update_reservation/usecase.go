package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-BannerBookingService/internal/infra/storage/session"
)

const operationUpdate = "update"

// UseCase use case для подтверждения бронирования в режиме редактирования
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

// Execute заменяет запись на месте, сохраняя ее ID и позицию в ledger
// Если запись не найдена, ledger не изменяется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: session=%s, reservation=%s, product=%q",
		req.SessionID, req.ReservationID, req.Attributes.Product)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.options); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сессию
	session, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			uc.logger.Warn("UpdateReservation: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("UpdateReservation: failed to get session id=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	// 3. Проверяем цель редактирования
	current, ok := session.Ledger.Get(req.ReservationID)
	if !ok {
		uc.logger.Warn("UpdateReservation: reservation id=%s not found in session id=%s", req.ReservationID, session.ID)
		return nil, ErrReservationNotFound
	}
	if !current.IsEditable() {
		uc.logger.Warn("UpdateReservation: reservation id=%s is not editable", req.ReservationID)
		return nil, ErrNotEditable
	}

	dateRange := req.dateRange()

	// 4. Строим новую запись
	record, err := uc.engine.ToReservationRecord(dateRange, req.Attributes)
	if err != nil {
		uc.logger.Warn("UpdateReservation: failed to build record: %v", err)
		return nil, mapRangeError(err)
	}

	pricing, err := uc.engine.Quote(dateRange)
	if err != nil {
		uc.logger.Error("UpdateReservation: failed to quote: %v", err)
		return nil, fmt.Errorf("%w: failed to quote: %v", ErrInternal, err)
	}

	// 5. Заменяем на месте
	if !session.Ledger.Replace(req.ReservationID, *record) {
		uc.logger.Warn("UpdateReservation: reservation id=%s disappeared before replace", req.ReservationID)
		return nil, ErrEditTargetLost
	}
	uc.metrics.ObserveReservation(operationUpdate)

	uc.logger.Info("UpdateReservation: reservation id=%s replaced in session id=%s, days=%d, total=%.2f",
		req.ReservationID, session.ID, pricing.Days, pricing.Total)

	return &Response{
		SessionID: session.ID,
		ID:        req.ReservationID,
		Title:     record.Title,
		Start:     record.Start,
		End:       record.End,
		Pricing:   pricing,
	}, nil
}
