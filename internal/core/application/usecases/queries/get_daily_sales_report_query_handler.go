package queries

import (
	"context"
	"time"

	"resto/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDailySalesReportQueryHandler builds the day's sales report from raw SQL.
// Revenue comes from the payments ledger, not from order totals: a report day
// counts what was actually taken at the till during that day.
type GetDailySalesReportQueryHandler struct {
	db *gorm.DB
}

// NewGetDailySalesReportQueryHandler creates a handler for sales report queries.
func NewGetDailySalesReportQueryHandler(db *gorm.DB) GetDailySalesReportQueryHandler {
	return GetDailySalesReportQueryHandler{db: db}
}

// Handle executes the report query.
func (h GetDailySalesReportQueryHandler) Handle(
	ctx context.Context,
	query GetDailySalesReportQuery,
) (DailySalesReport, error) {
	if err := query.Validate(); err != nil {
		return DailySalesReport{}, err
	}

	day := query.Day()
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.Add(24 * time.Hour)

	report := DailySalesReport{
		Day:      from,
		ByMethod: make([]MethodRevenue, 0),
		ByHour:   make([]HourRevenue, 0),
		TopItems: make([]ItemSales, 0),
	}

	db := h.db.WithContext(ctx)

	err := db.Raw(`
		SELECT COALESCE(SUM(amount), 0), COUNT(*)
		FROM payments
		WHERE paid_at >= ? AND paid_at < ?
	`, from, to).Row().Scan(&report.TotalRevenue, &report.PaymentCount)
	if err != nil {
		return DailySalesReport{}, err
	}

	err = db.Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE created_at >= ? AND created_at < ?
	`, from, to).Row().Scan(&report.OrdersOpened)
	if err != nil {
		return DailySalesReport{}, err
	}

	err = db.Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE status = ? AND created_at >= ? AND created_at < ?
	`, order.Cancelled.String(), from, to).Row().Scan(&report.OrdersCancelled)
	if err != nil {
		return DailySalesReport{}, err
	}

	methodRows, err := db.Raw(`
		SELECT method, COUNT(*), SUM(amount)
		FROM payments
		WHERE paid_at >= ? AND paid_at < ?
		GROUP BY method
		ORDER BY SUM(amount) DESC
	`, from, to).Rows()
	if err != nil {
		return DailySalesReport{}, err
	}
	defer methodRows.Close()

	for methodRows.Next() {
		var entry MethodRevenue
		if err = methodRows.Scan(&entry.Method, &entry.Count, &entry.Revenue); err != nil {
			return DailySalesReport{}, err
		}
		report.ByMethod = append(report.ByMethod, entry)
	}
	if err = methodRows.Err(); err != nil {
		return DailySalesReport{}, err
	}

	hourRows, err := db.Raw(`
		SELECT EXTRACT(HOUR FROM paid_at)::int AS hour, COUNT(*), SUM(amount)
		FROM payments
		WHERE paid_at >= ? AND paid_at < ?
		GROUP BY hour
		ORDER BY hour
	`, from, to).Rows()
	if err != nil {
		return DailySalesReport{}, err
	}
	defer hourRows.Close()

	for hourRows.Next() {
		var entry HourRevenue
		if err = hourRows.Scan(&entry.Hour, &entry.Count, &entry.Revenue); err != nil {
			return DailySalesReport{}, err
		}
		report.ByHour = append(report.ByHour, entry)
	}
	if err = hourRows.Err(); err != nil {
		return DailySalesReport{}, err
	}

	itemRows, err := db.Raw(`
		SELECT mi.name, SUM(l.quantity), SUM(l.quantity * l.unit_price)
		FROM payments p
		JOIN orders o ON o.id = p.order_id
		JOIN order_lines l ON l.order_id = o.id
		JOIN menu_items mi ON mi.id = l.menu_item_id
		WHERE p.paid_at >= ? AND p.paid_at < ?
		GROUP BY mi.name
		ORDER BY SUM(l.quantity) DESC, mi.name
		LIMIT ?
	`, from, to, query.TopLimit()).Rows()
	if err != nil {
		return DailySalesReport{}, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var entry ItemSales
		if err = itemRows.Scan(&entry.ItemName, &entry.Quantity, &entry.Revenue); err != nil {
			return DailySalesReport{}, err
		}
		report.TopItems = append(report.TopItems, entry)
	}
	if err = itemRows.Err(); err != nil {
		return DailySalesReport{}, err
	}

	if report.PaymentCount > 0 {
		report.AverageTicket = report.TotalRevenue / float64(report.PaymentCount)
	}

	return report, nil
}
