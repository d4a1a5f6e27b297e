package domain

// Pricing defaults
const (
	DefaultDailyRate = 15000.0
	DefaultCurrency  = "BRL"
)

// Calendar constants
const (
	DateFormat      = "2006-01-02" // YYYY-MM-DD
	DefaultTimezone = "America/Sao_Paulo"

	// RemoteDisplayShiftDays корректирует сдвиг на один день между соглашением
	// удаленного сервиса о часовом поясе и отображением в календаре.
	// Применяется только к интервалам из удаленного источника.
	RemoteDisplayShiftDays = 1
)

// Placeholder interval used when the availability source fails or returns nothing.
// Stored unshifted; the loader applies RemoteDisplayShiftDays like to any remote interval.
const (
	PlaceholderStartDate = "2024-12-25"
	PlaceholderEndDate   = "2024-12-26"
)

// UnavailableTitle title of synthetic ledger records seeded from disabled intervals
const UnavailableTitle = "Unavailable"

// Default dropdown options (sample data)
var (
	DefaultProducts  = []string{"Super Banner", "Banner Carrossel"}
	DefaultVerticals = []string{"Restaurantes", "Mercado"}
	DefaultLocations = []string{"São Paulo", "Rio de Janeiro"}
)
