package cmd

import (
	"log/slog"

	resthttp "resto/internal/adapters/in/http"
	"resto/internal/adapters/out/postgres"
	"resto/internal/core/application/usecases/commands"
	"resto/internal/core/application/usecases/queries"
	"resto/internal/kitchen"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateTableCommandHandler() commands.CreateTableCommandHandler {
	var f commands.TableUoWFactory = FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTableCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateTableCommandHandler() commands.UpdateTableCommandHandler {
	var f commands.TableUoWFactory = FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateTableCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteTableCommandHandler() commands.DeleteTableCommandHandler {
	var f commands.TableUoWFactory = FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteTableCommandHandler(f)
}

func (c *CompositionRoot) CreateStartNewOrderCommandHandler() commands.StartNewOrderCommandHandler {
	var f commands.OrderTableUoWFactory = FuncOrderTableUoWFactory(func() commands.OrderTableUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartNewOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateLiberateTableCommandHandler() commands.LiberateTableCommandHandler {
	var f commands.OrderTableUoWFactory = FuncOrderTableUoWFactory(func() commands.OrderTableUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLiberateTableCommandHandler(f)
}

func (c *CompositionRoot) CreateAddLineItemCommandHandler() commands.AddLineItemCommandHandler {
	var f commands.OrderMenuUoWFactory = FuncOrderMenuUoWFactory(func() commands.OrderMenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddLineItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveLineItemCommandHandler() commands.RemoveLineItemCommandHandler {
	return commands.NewRemoveLineItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateLineItemQuantityCommandHandler() commands.UpdateLineItemQuantityCommandHandler {
	return commands.NewUpdateLineItemQuantityCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateApplyDiscountCommandHandler() commands.ApplyDiscountCommandHandler {
	return commands.NewApplyDiscountCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	return commands.NewCreateCategoryCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMenuItemPriceCommandHandler() commands.UpdateMenuItemPriceCommandHandler {
	return commands.NewUpdateMenuItemPriceCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTableBoardQueryHandler() queries.GetTableBoardQueryHandler {
	return queries.NewGetTableBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDailySalesReportQueryHandler() queries.GetDailySalesReportQueryHandler {
	return queries.NewGetDailySalesReportQueryHandler(c.gormDB)
}

// CreateKitchenBoard wires the kitchen board against the query and command
// handlers. The dispatcher may be nil for headless deployments.
func (c *CompositionRoot) CreateKitchenBoard(dispatcher kitchen.Dispatcher, logger *slog.Logger) *kitchen.Board {
	return kitchen.NewBoard(
		c.CreateGetOrdersByStatusQueryHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		dispatcher,
		logger,
	)
}

// CreateHTTPServer wires the REST adapter against every handler.
func (c *CompositionRoot) CreateHTTPServer() *resthttp.Server {
	return resthttp.NewServer(
		c.CreateCreateTableCommandHandler(),
		c.CreateUpdateTableCommandHandler(),
		c.CreateDeleteTableCommandHandler(),
		c.CreateStartNewOrderCommandHandler(),
		c.CreateLiberateTableCommandHandler(),
		c.CreateAddLineItemCommandHandler(),
		c.CreateRemoveLineItemCommandHandler(),
		c.CreateUpdateLineItemQuantityCommandHandler(),
		c.CreateApplyDiscountCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateRecordPaymentCommandHandler(),
		c.CreateCreateCategoryCommandHandler(),
		c.CreateCreateMenuItemCommandHandler(),
		c.CreateUpdateMenuItemPriceCommandHandler(),
		c.CreateGetOrdersByStatusQueryHandler(),
		c.CreateGetTableBoardQueryHandler(),
		c.CreateGetMenuQueryHandler(),
		c.CreateGetDailySalesReportQueryHandler(),
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTableUoWFactory func() commands.TableUoW

func (f FuncTableUoWFactory) Create() commands.TableUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncOrderTableUoWFactory func() commands.OrderTableUoW

func (f FuncOrderTableUoWFactory) Create() commands.OrderTableUoW {
	return f()
}

type FuncOrderMenuUoWFactory func() commands.OrderMenuUoW

func (f FuncOrderMenuUoWFactory) Create() commands.OrderMenuUoW {
	return f()
}
