package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
	"github.com/m04kA/SMC-BannerBookingService/pkg/psqlbuilder"
)

// Repository источник занятых дат из PostgreSQL (офлайн вариант сервиса доступности)
//
// Ожидаемая схема:
//
//	CREATE TABLE disabled_dates (
//	    id         BIGSERIAL PRIMARY KEY,
//	    start_date DATE NOT NULL,
//	    end_date   DATE NOT NULL
//	);
type Repository struct {
	db       DBExecutor
	table    string
	location *time.Location
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor, table string, location *time.Location) *Repository {
	return &Repository{
		db:       db,
		table:    table,
		location: location,
	}
}

// Name имя источника для логов и метрик
func (r *Repository) Name() string {
	return "postgres"
}

// GetDisabledDates возвращает все занятые интервалы без коррекции сдвига
func (r *Repository) GetDisabledDates(ctx context.Context) ([]domain.DisabledInterval, error) {
	query, args, err := r.buildSelect()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDisabledDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDisabledDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	intervals := make([]domain.DisabledInterval, 0)
	for rows.Next() {
		var start, end time.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, fmt.Errorf("%w: GetDisabledDates - scan interval: %v", ErrScanRow, err)
		}

		intervals = append(intervals, domain.DisabledInterval{
			StartDate: r.asCalendarDay(start),
			EndDate:   r.asCalendarDay(end),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDisabledDates - iterate rows: %v", ErrScanRow, err)
	}

	return intervals, nil
}

func (r *Repository) buildSelect() (string, []interface{}, error) {
	return psqlbuilder.Select("start_date", "end_date").
		From(r.table).
		OrderBy("start_date ASC", "end_date ASC").
		ToSql()
}

// asCalendarDay переносит дату из колонки DATE (драйвер отдает полночь UTC) в часовой пояс календаря
func (r *Repository) asCalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, r.location)
}
