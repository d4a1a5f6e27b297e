package create_reservation

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-BannerBookingService/internal/infra/storage/session"
	"github.com/m04kA/SMC-BannerBookingService/internal/service/derivation"
	"github.com/m04kA/SMC-BannerBookingService/pkg/logger"
	"github.com/m04kA/SMC-BannerBookingService/pkg/ptr"
)

type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) ObserveReservation(operation string) {
	m.Called(operation)
}

func day(d int) time.Time {
	return time.Date(2024, 12, d, 0, 0, 0, 0, time.UTC)
}

func setup(t *testing.T, metrics Metrics) (*UseCase, *domain.Session) {
	t.Helper()

	repo := sessionRepo.NewRepository()
	session := &domain.Session{
		ID:                "session-1",
		CreatedAt:         day(1),
		MinDate:           day(2),
		DisabledIntervals: []domain.DisabledInterval{{StartDate: day(10), EndDate: day(12)}},
		Ledger:            domain.NewLedger(),
	}
	require.NoError(t, repo.Create(context.Background(), session))

	options := domain.DefaultAttributeOptions()
	engine := derivation.NewEngine(domain.DefaultDailyRate, options.Defaults(), time.UTC)

	uc := NewUseCase(repo, engine, options, metrics, logger.NewWithWriter(io.Discard, "error"))
	return uc, session
}

func validRequest() *Request {
	return &Request{
		SessionID: "session-1",
		StartDate: ptr.Ptr(day(3)),
		EndDate:   ptr.Ptr(day(5)),
		Attributes: domain.SelectedAttributes{
			Product:  "Super Banner",
			Vertical: "Mercado",
			Location: "Rio de Janeiro",
		},
	}
}

func TestExecute_AppendsBooking(t *testing.T) {
	metrics := new(MockMetrics)
	metrics.On("ObserveReservation", "create").Once()
	uc, session := setup(t, metrics)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Super Banner", resp.Title)
	assert.Equal(t, day(3), resp.Start)
	assert.Equal(t, day(5), resp.End)
	assert.Equal(t, domain.PricingResult{Days: 3, Total: 45000}, resp.Pricing)

	records := session.Ledger.Records()
	require.Len(t, records, 1)
	assert.Equal(t, resp.ID, records[0].ID)
	assert.Equal(t, domain.KindBooking, records[0].Kind)

	metrics.AssertExpectations(t)
}

func TestExecute_SingleDaySelection(t *testing.T) {
	uc, _ := setup(t, nil)

	req := validRequest()
	req.EndDate = ptr.Ptr(day(3))

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.PricingResult{Days: 1, Total: domain.DefaultDailyRate}, resp.Pricing)
}

func TestExecute_DuplicateConfirmAppendsTwice(t *testing.T) {
	uc, session := setup(t, nil)

	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, session.Ledger.Len())
}

func TestExecute_OverlapWithDisabledIsNotBlocked(t *testing.T) {
	uc, session := setup(t, nil)

	req := validRequest()
	req.StartDate = ptr.Ptr(day(11))
	req.EndDate = ptr.Ptr(day(13))

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, session.Ledger.Len())
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *Request)
		wantErr error
	}{
		{
			name:    "missing session id",
			modify:  func(r *Request) { r.SessionID = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown session",
			modify:  func(r *Request) { r.SessionID = "missing" },
			wantErr: ErrSessionNotFound,
		},
		{
			name:    "no start date",
			modify:  func(r *Request) { r.StartDate = nil },
			wantErr: ErrIncompleteSelection,
		},
		{
			name:    "no end date",
			modify:  func(r *Request) { r.EndDate = nil },
			wantErr: ErrIncompleteSelection,
		},
		{
			name:    "end before start",
			modify:  func(r *Request) { r.StartDate, r.EndDate = ptr.Ptr(day(8)), ptr.Ptr(day(4)) },
			wantErr: ErrInvalidRange,
		},
		{
			name:    "unknown product",
			modify:  func(r *Request) { r.Attributes.Product = "Pop-up" },
			wantErr: ErrInvalidAttribute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := new(MockMetrics)
			uc, session := setup(t, metrics)

			req := validRequest()
			tt.modify(req)

			resp, err := uc.Execute(context.Background(), req)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, session.Ledger.Len())
			metrics.AssertNotCalled(t, "ObserveReservation", mock.Anything)
		})
	}
}
