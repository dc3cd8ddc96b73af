package cmd

import (
	"retailedge/internal/adapters/out/postgres"
	"retailedge/internal/core/application/usecases/commands"
	"retailedge/internal/core/application/usecases/queries"

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

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductCategoriesQueryHandler() queries.GetProductCategoriesQueryHandler {
	return queries.NewGetProductCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}
