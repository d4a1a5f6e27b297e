package availabilityservice

// getDisabledDatesQuery единственный запрос к сервису доступности
const getDisabledDatesQuery = `query GetDisabledDates {
  disabledDates {
    startDate
    endDate
  }
}`

// graphQLRequest тело запроса GraphQL
type graphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

// graphQLResponse конверт ответа GraphQL
type graphQLResponse struct {
	Data   *DisabledDatesData `json:"data"`
	Errors []GraphQLError     `json:"errors,omitempty"`
}

// GraphQLError ошибка из поля errors
type GraphQLError struct {
	Message string `json:"message"`
}

// DisabledDatesData поле data ответа
// BasePrice и SpecialPricesPerDate зарезервированы под будущие правила ценообразования
type DisabledDatesData struct {
	DisabledDates        []DateSpan     `json:"disabledDates"`
	BasePrice            *float64       `json:"basePrice,omitempty"`
	SpecialPricesPerDate []SpecialPrice `json:"specialPricesPerDate,omitempty"`
}

// DateSpan занятый интервал в формате удаленного сервиса (ISO-8601)
type DateSpan struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// SpecialPrice цена на конкретную дату
type SpecialPrice struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}
