// Package http exposes the application's use cases as a REST surface.
// Handlers translate bodies into commands and queries, and typed business
// errors into status codes; no business rule lives here.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"resto/internal/core/application/usecases/commands"
	"resto/internal/core/application/usecases/queries"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createTableHandler        commands.CreateTableCommandHandler
	updateTableHandler        commands.UpdateTableCommandHandler
	deleteTableHandler        commands.DeleteTableCommandHandler
	startNewOrderHandler      commands.StartNewOrderCommandHandler
	liberateTableHandler      commands.LiberateTableCommandHandler
	addLineItemHandler        commands.AddLineItemCommandHandler
	removeLineItemHandler     commands.RemoveLineItemCommandHandler
	updateLineQuantityHandler commands.UpdateLineItemQuantityCommandHandler
	applyDiscountHandler      commands.ApplyDiscountCommandHandler
	changeOrderStatusHandler  commands.ChangeOrderStatusCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	recordPaymentHandler      commands.RecordPaymentCommandHandler
	createCategoryHandler     commands.CreateCategoryCommandHandler
	createMenuItemHandler     commands.CreateMenuItemCommandHandler
	updateItemPriceHandler    commands.UpdateMenuItemPriceCommandHandler

	// Query handlers
	ordersByStatusHandler   queries.GetOrdersByStatusQueryHandler
	tableBoardHandler       queries.GetTableBoardQueryHandler
	menuHandler             queries.GetMenuQueryHandler
	dailySalesReportHandler queries.GetDailySalesReportQueryHandler
}

// NewServer creates an HTTP server wired to the application's handlers.
func NewServer(
	createTableHandler commands.CreateTableCommandHandler,
	updateTableHandler commands.UpdateTableCommandHandler,
	deleteTableHandler commands.DeleteTableCommandHandler,
	startNewOrderHandler commands.StartNewOrderCommandHandler,
	liberateTableHandler commands.LiberateTableCommandHandler,
	addLineItemHandler commands.AddLineItemCommandHandler,
	removeLineItemHandler commands.RemoveLineItemCommandHandler,
	updateLineQuantityHandler commands.UpdateLineItemQuantityCommandHandler,
	applyDiscountHandler commands.ApplyDiscountCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	createCategoryHandler commands.CreateCategoryCommandHandler,
	createMenuItemHandler commands.CreateMenuItemCommandHandler,
	updateItemPriceHandler commands.UpdateMenuItemPriceCommandHandler,
	ordersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	tableBoardHandler queries.GetTableBoardQueryHandler,
	menuHandler queries.GetMenuQueryHandler,
	dailySalesReportHandler queries.GetDailySalesReportQueryHandler,
) *Server {
	return &Server{
		createTableHandler:        createTableHandler,
		updateTableHandler:        updateTableHandler,
		deleteTableHandler:        deleteTableHandler,
		startNewOrderHandler:      startNewOrderHandler,
		liberateTableHandler:      liberateTableHandler,
		addLineItemHandler:        addLineItemHandler,
		removeLineItemHandler:     removeLineItemHandler,
		updateLineQuantityHandler: updateLineQuantityHandler,
		applyDiscountHandler:      applyDiscountHandler,
		changeOrderStatusHandler:  changeOrderStatusHandler,
		cancelOrderHandler:        cancelOrderHandler,
		recordPaymentHandler:      recordPaymentHandler,
		createCategoryHandler:     createCategoryHandler,
		createMenuItemHandler:     createMenuItemHandler,
		updateItemPriceHandler:    updateItemPriceHandler,
		ordersByStatusHandler:     ordersByStatusHandler,
		tableBoardHandler:         tableBoardHandler,
		menuHandler:               menuHandler,
		dailySalesReportHandler:   dailySalesReportHandler,
	}
}

// RegisterRoutes mounts the REST surface on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/tables", s.CreateTable)
	api.PUT("/tables/:tableId", s.UpdateTable)
	api.DELETE("/tables/:tableId", s.DeleteTable)
	api.GET("/tables/board", s.GetTableBoard)
	api.POST("/tables/:tableId/orders", s.StartNewOrder)
	api.POST("/tables/:tableId/liberate", s.LiberateTable)

	api.GET("/orders", s.GetOrdersByStatus)
	api.POST("/orders/:orderId/lines", s.AddLineItem)
	api.PUT("/orders/:orderId/lines/:lineId", s.UpdateLineItemQuantity)
	api.DELETE("/orders/:orderId/lines/:lineId", s.RemoveLineItem)
	api.POST("/orders/:orderId/discount", s.ApplyDiscount)
	api.POST("/orders/:orderId/status", s.ChangeOrderStatus)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/payments", s.RecordPayment)

	api.GET("/menu", s.GetMenu)
	api.POST("/menu/categories", s.CreateCategory)
	api.POST("/menu/items", s.CreateMenuItem)
	api.PUT("/menu/items/:itemId/price", s.UpdateMenuItemPrice)

	api.GET("/reports/daily", s.GetDailySalesReport)
}

// businessError maps a typed business error onto an HTTP response.
func businessError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, commands.ErrTableNumberTaken):
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func parseID(ctx echo.Context, param string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(param))
}

// CreateTable handles POST /api/v1/tables.
func (s *Server) CreateTable(ctx echo.Context) error {
	var body NewTable
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tableID := kernel.NewUUID()
	cmd, err := commands.NewCreateTableCommand(tableID, body.Number, body.Capacity)
	if err != nil {
		return businessError(ctx, err)
	}

	if err := s.createTableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: tableID.String()})
}

// UpdateTable handles PUT /api/v1/tables/:tableId.
func (s *Server) UpdateTable(ctx echo.Context) error {
	tableID, err := parseID(ctx, "tableId")
	if err != nil {
		return badRequest(ctx, "Invalid table id")
	}

	var body NewTable
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateTableCommand(tableID, body.Number, body.Capacity)
	if err != nil {
		return businessError(ctx, err)
	}

	if err := s.updateTableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteTable handles DELETE /api/v1/tables/:tableId.
func (s *Server) DeleteTable(ctx echo.Context) error {
	tableID, err := parseID(ctx, "tableId")
	if err != nil {
		return badRequest(ctx, "Invalid table id")
	}

	cmd, err := commands.NewDeleteTableCommand(tableID)
	if err != nil {
		return businessError(ctx, err)
	}

	if err := s.deleteTableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTableBoard handles GET /api/v1/tables/board.
func (s *Server) GetTableBoard(ctx echo.Context) error {
	views, err := s.tableBoardHandler.Handle(ctx.Request().Context(), queries.NewGetTableBoardQuery())
	if err != nil {
		return businessError(ctx, err)
	}

	response := make([]TableBoardEntry, len(views))
	for i, view := range views {
		entry := TableBoardEntry{
			ID:            view.ID.String(),
			Number:        view.Number,
			Capacity:      view.Capacity,
			DisplayStatus: view.DisplayStatus,
		}
		if view.ActiveOrderID != nil {
			id := view.ActiveOrderID.String()
			entry.ActiveOrderID = &id
		}
		response[i] = entry
	}

	return ctx.JSON(http.StatusOK, response)
}

// StartNewOrder handles POST /api/v1/tables/:tableId/orders.
func (s *Server) StartNewOrder(ctx echo.Context) error {
	tableID, err := parseID(ctx, "tableId")
	if err != nil {
		return badRequest(ctx, "Invalid table id")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewStartNewOrderCommand(orderID, tableID)
	if err != nil {
		return businessError(ctx, err)
	}

	if err := s.startNewOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// LiberateTable handles POST /api/v1/tables/:tableId/liberate.
func (s *Server) LiberateTable(ctx echo.Context) error {
	tableID, err := parseID(ctx, "tableId")
	if err != nil {
		return badRequest(ctx, "Invalid table id")
	}

	cmd, err := commands.NewLiberateTableCommand(tableID)
	if err != nil {
		return businessError(ctx, err)
	}

	if err := s.liberateTableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrdersByStatus handles GET /api/v1/orders?status=PENDING.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status")
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return businessError(ctx, err)
	}

	views, err := s.ordersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return businessError(ctx, err)
	}

	response := make([]Order, len(views))
	for i, view := range views {
		lines := make([]OrderLine, len(view.Lines))
		for j, line := range view.Lines {
			lines[j] = OrderLine{
				ID:        line.ID.String(),
				ItemName:  line.ItemName,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
			}
		}

		o := Order{
			ID:          view.ID.String(),
			TableNumber: view.TableNumber,
			Status:      view.Status,
			Discount:    view.Discount,
			Total:       view.Total,
			CreatedAt:   view.CreatedAt.Format(time.RFC3339),
			Lines:       lines,
		}
		if view.ServedAt != nil {
			served := view.ServedAt.Format(time.RFC3339)
			o.ServedAt = &served
		}
		response[i] = o
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddLineItem handles POST /api/v1/orders/:orderId/lines.
func (s *Server) AddLineItem(ctx echo.Context) error {
	orderID, err := parseID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body NewLineItem
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	menuItemID, err := kernel.UUIDFromString(body.MenuItemID)
	if err != nil {
		return badRequest(ctx, "Invalid menu item id")
	}

	lineID := kernel.NewUUID()
	cmd, err := commands.NewAddLineItemCommand(orderID, lineID, menuItemID, body.Quantity)
	if err != nil {
		return businessError(ctx, err)
	}

	if err := s.addLineItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: lineID.String()})
}

// UpdateLineItemQuantity handles PUT /api/v1/orders/:orderId/lines/:lineId.
func (s *Server) UpdateLineItemQuantity(ctx echo.Context) error {
	orderID, err := parseID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	lineID, err := parseID(ctx, "lineId")
	if err != nil {
		return badRequest(ctx, "Invalid line id")
	}

	var body LineItemQuantity
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateLineItemQuantityCommand(orderID, lineID, body.Quantity)
	if err != nil {
		return businessError(ctx, err)
	}

	if err := s.updateLineQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveLineItem handles DELETE /api/v1/orders/:orderId/lines/:lineId.
func (s *Server) RemoveLineItem(ctx echo.Context) error {
	orderID, err := parseID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	lineID, err := parseID(ctx, "lineId")
	if err != nil {
		return badRequest(ctx, "Invalid line id")
	}

	cmd, err := commands.NewRemoveLineItemCommand(orderID, lineID)
	if err != nil {
		return businessError(ctx, err)
	}

	if err := s.removeLineItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApplyDiscount handles POST /api/v1/orders/:orderId/discount.
func (s *Server) ApplyDiscount(ctx echo.Context) error {
	orderID, err := parseID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body Discount
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewApplyDiscountCommand(orderID, body.Amount)
	if err != nil {
		return businessError(ctx, err)
	}

	if err := s.applyDiscountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderId/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := parseID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body StatusChange
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(body.Target)
	if err != nil {
		return badRequest(ctx, "Invalid target status")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return businessError(ctx, err)
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, false)
	if err != nil {
		return businessError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordPayment handles POST /api/v1/orders/:orderId/payments.
func (s *Server) RecordPayment(ctx echo.Context) error {
	orderID, err := parseID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body NewPayment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	paymentID := kernel.NewUUID()
	cmd, err := commands.NewRecordPaymentCommand(orderID, paymentID, body.Amount, body.Method)
	if err != nil {
		return businessError(ctx, err)
	}

	if err := s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: paymentID.String()})
}

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	views, err := s.menuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return businessError(ctx, err)
	}

	response := make([]MenuCategory, len(views))
	for i, view := range views {
		items := make([]MenuItem, len(view.Items))
		for j, item := range view.Items {
			items[j] = MenuItem{
				ID:          item.ID.String(),
				Name:        item.Name,
				Price:       item.Price,
				Description: item.Description,
			}
		}
		response[i] = MenuCategory{
			ID:          view.ID.String(),
			Name:        view.Name,
			Description: view.Description,
			Items:       items,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCategory handles POST /api/v1/menu/categories.
func (s *Server) CreateCategory(ctx echo.Context) error {
	var body NewCategory
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	categoryID := kernel.NewUUID()
	cmd, err := commands.NewCreateCategoryCommand(categoryID, body.Name, body.Description)
	if err != nil {
		return businessError(ctx, err)
	}

	if err := s.createCategoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: categoryID.String()})
}

// CreateMenuItem handles POST /api/v1/menu/items.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var body NewMenuItem
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	categoryID, err := kernel.UUIDFromString(body.CategoryID)
	if err != nil {
		return badRequest(ctx, "Invalid category id")
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuItemCommand(itemID, body.Name, body.Price, body.Description, categoryID)
	if err != nil {
		return businessError(ctx, err)
	}

	if err := s.createMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: itemID.String()})
}

// UpdateMenuItemPrice handles PUT /api/v1/menu/items/:itemId/price.
func (s *Server) UpdateMenuItemPrice(ctx echo.Context) error {
	itemID, err := parseID(ctx, "itemId")
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var body ItemPrice
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateMenuItemPriceCommand(itemID, body.Price)
	if err != nil {
		return businessError(ctx, err)
	}

	if err := s.updateItemPriceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return businessError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDailySalesReport handles GET /api/v1/reports/daily?day=2006-01-02&top=5.
func (s *Server) GetDailySalesReport(ctx echo.Context) error {
	day, err := time.Parse("2006-01-02", ctx.QueryParam("day"))
	if err != nil {
		return badRequest(ctx, "Invalid day, expected YYYY-MM-DD")
	}

	topLimit := 5
	if raw := ctx.QueryParam("top"); raw != "" {
		topLimit, err = strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid top limit")
		}
	}

	query, err := queries.NewGetDailySalesReportQuery(day, topLimit)
	if err != nil {
		return businessError(ctx, err)
	}

	report, err := s.dailySalesReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return businessError(ctx, err)
	}

	response := SalesReport{
		Day:             report.Day.Format("2006-01-02"),
		TotalRevenue:    report.TotalRevenue,
		AverageTicket:   report.AverageTicket,
		PaymentCount:    report.PaymentCount,
		OrdersOpened:    report.OrdersOpened,
		OrdersCancelled: report.OrdersCancelled,
		ByMethod:        make([]MethodRevenue, len(report.ByMethod)),
		ByHour:          make([]HourRevenue, len(report.ByHour)),
		TopItems:        make([]ItemSales, len(report.TopItems)),
	}
	for i, m := range report.ByMethod {
		response.ByMethod[i] = MethodRevenue{Method: m.Method, Count: m.Count, Revenue: m.Revenue}
	}
	for i, h := range report.ByHour {
		response.ByHour[i] = HourRevenue{Hour: h.Hour, Count: h.Count, Revenue: h.Revenue}
	}
	for i, item := range report.TopItems {
		response.TopItems[i] = ItemSales{ItemName: item.ItemName, Quantity: item.Quantity, Revenue: item.Revenue}
	}

	return ctx.JSON(http.StatusOK, response)
}
