package update_reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
)

func validateRequest(req *Request, options domain.AttributeOptions) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if req.ReservationID == "" {
		return fmt.Errorf("%w: reservationID is required", ErrInvalidInput)
	}

	if err := req.dateRange().Validate(); err != nil {
		return mapRangeError(err)
	}

	if err := options.Validate(req.Attributes); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAttribute, err)
	}

	return nil
}

func mapRangeError(err error) error {
	switch {
	case errors.Is(err, domain.ErrIncompleteSelection):
		return ErrIncompleteSelection
	case errors.Is(err, domain.ErrInvalidRange):
		return ErrInvalidRange
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func (r *Request) dateRange() domain.DateRange {
	return domain.DateRange{StartDate: r.StartDate, EndDate: r.EndDate}
}
