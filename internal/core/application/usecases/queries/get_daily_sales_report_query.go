package queries

import (
	"errors"
	"time"

	"resto/internal/pkg/guard"
)

var (
	ErrGetDailySalesReportQueryIsNotConstructed = errors.New(
		"GetDailySalesReportQuery must be created via NewGetDailySalesReportQuery constructor",
	)
	ErrTopLimitIsInvalid = errors.New("top limit must be greater than 0")
)

// GetDailySalesReportQuery retrieves the sales report for one calendar day:
// the revenue actually taken (payments recorded that day), the split per
// payment method and per hour, the best selling dishes, and counts of
// orders opened and cancelled.
//
// Example:
//
//	query, err := NewGetDailySalesReportQuery(time.Now(), 5)
//	if err != nil {
//	    return fmt.Errorf("invalid report query: %w", err)
//	}
//
//	handler := NewGetDailySalesReportQueryHandler(db)
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build report: %w", err)
//	}
//	fmt.Printf("revenue: %.2f over %d payments\n", report.TotalRevenue, report.PaymentCount)
type GetDailySalesReportQuery struct { //nolint:recvcheck //using for validation
	day      time.Time
	topLimit int

	guard guard.ConstructorGuard
}

// NewGetDailySalesReportQuery creates a report query for the calendar day
// containing day, in the local timezone. topLimit bounds the best-seller list.
func NewGetDailySalesReportQuery(day time.Time, topLimit int) (GetDailySalesReportQuery, error) {
	if day.IsZero() {
		return GetDailySalesReportQuery{}, errors.New("day is required")
	}
	if topLimit <= 0 {
		return GetDailySalesReportQuery{}, ErrTopLimitIsInvalid
	}

	return GetDailySalesReportQuery{
		day:      day,
		topLimit: topLimit,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDailySalesReportQuery) Validate() error {
	return q.guard.Validate(ErrGetDailySalesReportQueryIsNotConstructed)
}

// Day returns the queried day.
func (q GetDailySalesReportQuery) Day() time.Time {
	return q.day
}

// TopLimit returns the maximum length of the best-seller list.
func (q GetDailySalesReportQuery) TopLimit() int {
	return q.topLimit
}

// MethodRevenue is the revenue taken through one payment method.
type MethodRevenue struct {
	Method  string
	Count   int
	Revenue float64
}

// HourRevenue is the revenue taken during one hour of the day (0-23).
type HourRevenue struct {
	Hour    int
	Count   int
	Revenue float64
}

// ItemSales is the sold quantity and revenue of one dish across the day's
// paid orders.
type ItemSales struct {
	ItemName string
	Quantity int
	Revenue  float64
}

// DailySalesReport aggregates one day of trading. AverageTicket is the mean
// payment amount, zero when nothing was taken.
type DailySalesReport struct {
	Day             time.Time
	TotalRevenue    float64
	AverageTicket   float64
	PaymentCount    int
	OrdersOpened    int
	OrdersCancelled int
	ByMethod        []MethodRevenue
	ByHour          []HourRevenue
	TopItems        []ItemSales
}
