package create_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
	createReservation "github.com/m04kA/SMC-BannerBookingService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-BannerBookingService/pkg/logger"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createReservation.Response), args.Error(1)
}

const validBody = `{
	"startDate": "2024-12-03",
	"endDate": "2024-12-05",
	"attributes": {"product": "Super Banner", "vertical": "Mercado", "location": "São Paulo"}
}`

func day(d int) time.Time {
	return time.Date(2024, 12, d, 0, 0, 0, 0, time.UTC)
}

func serve(uc CreateReservationUseCase, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	h := NewHandler(uc, time.UTC, logger.NewWithWriter(io.Discard, "error"))
	router.HandleFunc("/sessions/{sessionId}/reservations", h.Handle).Methods(http.MethodPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sessions/s-1/reservations", strings.NewReader(body)))
	return w
}

func TestHandle_Created(t *testing.T) {
	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createReservation.Request) bool {
		return req.SessionID == "s-1" &&
			req.StartDate != nil && req.StartDate.Equal(day(3)) &&
			req.EndDate != nil && req.EndDate.Equal(day(5)) &&
			req.Attributes == domain.SelectedAttributes{Product: "Super Banner", Vertical: "Mercado", Location: "São Paulo"}
	})).Return(&createReservation.Response{
		SessionID: "s-1",
		ID:        "r-1",
		Title:     "Super Banner",
		Start:     day(3),
		End:       day(5),
		Pricing:   domain.PricingResult{Days: 3, Total: 45000},
	}, nil)

	w := serve(uc, validBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var body ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "r-1", body.Reservation.ID)
	assert.Equal(t, "2024-12-03", body.Reservation.Start)
	assert.Equal(t, "2024-12-05", body.Reservation.End)
	assert.True(t, body.Reservation.Editable)
	assert.Equal(t, 3, body.Pricing.Days)
	assert.Equal(t, 45000.0, body.Pricing.Total)
	uc.AssertExpectations(t)
}

func TestHandle_NullEndDateReachesUseCase(t *testing.T) {
	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createReservation.Request) bool {
		return req.StartDate != nil && req.EndDate == nil
	})).Return(nil, createReservation.ErrIncompleteSelection)

	w := serve(uc, `{"startDate":"2024-12-03","endDate":null,
		"attributes":{"product":"Super Banner","vertical":"Mercado","location":"São Paulo"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
	}{
		{name: "malformed body", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "missing attributes", body: `{"startDate":"2024-12-03","endDate":"2024-12-05","attributes":{}}`, wantStatus: http.StatusBadRequest},
		{name: "bad date", body: strings.Replace(validBody, "2024-12-03", "03.12.2024", 1), wantStatus: http.StatusBadRequest},
		{name: "session not found", body: validBody, ucErr: createReservation.ErrSessionNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid range", body: validBody, ucErr: createReservation.ErrInvalidRange, wantStatus: http.StatusBadRequest},
		{name: "invalid attribute", body: validBody, ucErr: createReservation.ErrInvalidAttribute, wantStatus: http.StatusBadRequest},
		{name: "internal", body: validBody, ucErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			w := serve(uc, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.ucErr == nil {
				uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
			}
		})
	}
}
