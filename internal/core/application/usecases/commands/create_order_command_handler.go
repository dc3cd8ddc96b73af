package commands

import (
	"context"

	"retailedge/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// Builds the aggregate from request data, so every validation error surfaces
// before a persistence call is attempted, then stores header and items as one
// transactional write.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created aggregate
// for response projection. The new order starts in Pending status with its
// total derived from the items.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items, err := buildLineItems(cmd.Items())
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		items,
		cmd.Notes(),
		cmd.ShippingAddress(),
		cmd.BillingAddress(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// buildLineItems constructs domain line items from raw request arguments.
// Shared by the create and update order handlers.
func buildLineItems(args []ItemArgument) ([]*order.LineItem, error) {
	items := make([]*order.LineItem, 0, len(args))
	for _, arg := range args {
		item, err := order.NewLineItem(arg.ProductID, arg.ProductName, arg.Quantity, arg.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
