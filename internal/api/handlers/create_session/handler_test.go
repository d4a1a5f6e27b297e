package create_session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
	"github.com/m04kA/SMC-BannerBookingService/internal/service/sessions/models"
	"github.com/m04kA/SMC-BannerBookingService/pkg/logger"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context) (*models.SessionResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionResponse), args.Error(1)
}

func day(d int) time.Time {
	return time.Date(2024, 12, d, 0, 0, 0, 0, time.UTC)
}

func TestHandle_Created(t *testing.T) {
	service := new(MockSessionService)
	service.On("Create", mock.Anything).Return(&models.SessionResponse{
		ID:            "session-1",
		CreatedAt:     time.Date(2024, 12, 1, 15, 0, 0, 0, time.UTC),
		MinDate:       day(2),
		DisabledDates: []models.DisabledDate{{StartDate: day(26), EndDate: day(27)}},
		Fallback:      true,
		DailyRate:     domain.DefaultDailyRate,
		Attributes:    models.FromDomainOptions(domain.DefaultAttributeOptions()),
		Reservations: []models.Reservation{
			{ID: "r-1", Title: domain.UnavailableTitle, Start: day(26), End: day(27), Kind: "unavailable"},
		},
	}, nil)

	h := NewHandler(service, logger.NewWithWriter(io.Discard, "error"))
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))

	require.Equal(t, http.StatusCreated, w.Code)

	var body SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "session-1", body.ID)
	assert.Equal(t, "2024-12-02", body.MinDate)
	assert.Equal(t, "2024-12-01T15:00:00Z", body.CreatedAt)
	assert.True(t, body.Fallback)
	require.Len(t, body.DisabledDates, 1)
	assert.Equal(t, "2024-12-26", body.DisabledDates[0].StartDate)
	assert.Equal(t, "2024-12-27", body.DisabledDates[0].EndDate)
	assert.Equal(t, "Super Banner", body.Attributes.Defaults.Product)
	require.Len(t, body.Reservations, 1)
	assert.False(t, body.Reservations[0].Editable)
}

func TestHandle_InternalError(t *testing.T) {
	service := new(MockSessionService)
	service.On("Create", mock.Anything).Return(nil, errors.New("boom"))

	h := NewHandler(service, logger.NewWithWriter(io.Discard, "error"))
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
