package availabilityservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент GraphQL сервиса доступности
type Client struct {
	url        string
	httpClient *http.Client
	location   *time.Location
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса доступности
func NewClient(url string, timeout time.Duration, location *time.Location, log Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		location: location,
		log:      log,
	}
}

// Name имя источника для логов и метрик
func (c *Client) Name() string {
	return "graphql"
}

// GetDisabledDates выполняет запрос GetDisabledDates и возвращает интервалы без коррекции сдвига
func (c *Client) GetDisabledDates(ctx context.Context) ([]domain.DisabledInterval, error) {
	data, err := c.query(ctx)
	if err != nil {
		return nil, err
	}

	intervals := make([]domain.DisabledInterval, 0, len(data.DisabledDates))
	for i, span := range data.DisabledDates {
		// Нераспознанная запись пропускается, остальные интервалы сохраняются
		start, err := domain.ParseCalendarDate(span.StartDate, c.location)
		if err != nil {
			c.log.Warn("Skipping disabledDates[%d]: startDate: %v", i, err)
			continue
		}
		end, err := domain.ParseCalendarDate(span.EndDate, c.location)
		if err != nil {
			c.log.Warn("Skipping disabledDates[%d]: endDate: %v", i, err)
			continue
		}

		intervals = append(intervals, domain.DisabledInterval{StartDate: start, EndDate: end})
	}

	c.log.Info("Fetched %d disabled intervals from %s", len(intervals), c.url)
	return intervals, nil
}

func (c *Client) query(ctx context.Context) (*DisabledDatesData, error) {
	body, err := json.Marshal(graphQLRequest{
		Query:         getDisabledDatesQuery,
		OperationName: "GetDisabledDates",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	// Парсим ответ
	var envelope graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, len(envelope.Errors))
		for i, e := range envelope.Errors {
			messages[i] = e.Message
		}
		return nil, fmt.Errorf("%w: %s", ErrQueryFailed, strings.Join(messages, "; "))
	}

	if envelope.Data == nil {
		return nil, fmt.Errorf("%w: response has no data", ErrInvalidResponse)
	}

	return envelope.Data, nil
}
