package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSelect(t *testing.T) {
	r := NewRepository(nil, "disabled_dates", time.UTC)

	query, args, err := r.buildSelect()
	require.NoError(t, err)

	assert.Equal(t, "SELECT start_date, end_date FROM disabled_dates ORDER BY start_date ASC, end_date ASC", query)
	assert.Empty(t, args)
}

func TestAsCalendarDay(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	r := NewRepository(nil, "disabled_dates", loc)

	got := r.asCalendarDay(time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 12, 25, 0, 0, 0, 0, loc), got)
	assert.Equal(t, "postgres", r.Name())
}
