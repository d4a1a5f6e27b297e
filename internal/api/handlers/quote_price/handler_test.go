package quote_price

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BannerBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
	"github.com/m04kA/SMC-BannerBookingService/internal/service/derivation"
	"github.com/m04kA/SMC-BannerBookingService/pkg/logger"
)

func newHandler(t *testing.T) *Handler {
	t.Helper()

	loc, err := time.LoadLocation(domain.DefaultTimezone)
	require.NoError(t, err)

	engine := derivation.NewEngine(domain.DefaultDailyRate, domain.DefaultAttributeOptions().Defaults(), loc)
	return NewHandler(engine, loc, logger.NewWithWriter(io.Discard, "error"))
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantDays   int
		wantTotal  float64
	}{
		{
			name:       "five days",
			body:       `{"startDate":"2024-12-01","endDate":"2024-12-05"}`,
			wantStatus: http.StatusOK,
			wantDays:   5,
			wantTotal:  75000,
		},
		{
			name:       "single day",
			body:       `{"startDate":"2024-12-01","endDate":"2024-12-01"}`,
			wantStatus: http.StatusOK,
			wantDays:   1,
			wantTotal:  15000,
		},
		{
			name:       "across DST change",
			body:       `{"startDate":"2018-11-03","endDate":"2018-11-05"}`,
			wantStatus: http.StatusOK,
			wantDays:   3,
			wantTotal:  45000,
		},
		{
			name:       "end not selected",
			body:       `{"startDate":"2024-12-01","endDate":null}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "nothing selected",
			body:       `{}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "end before start",
			body:       `{"startDate":"2024-12-05","endDate":"2024-12-01"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad date",
			body:       `{"startDate":"05/12/2024","endDate":"2024-12-06"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{"startDate":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/quote", strings.NewReader(tt.body))
			newHandler(t).Handle(w, r)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var body handlers.PricingResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantDays, body.Days)
			assert.Equal(t, tt.wantTotal, body.Total)
		})
	}
}
