// Package http exposes the order, product, and customer use cases over a
// JSON REST API.
//
// Routing and (de)serialization live here; all business rules stay in the
// application and domain layers. Handlers translate request data into
// commands/queries, invoke the matching handler, and map application errors
// onto HTTP status codes: 400 for invalid input, 404 for missing resources,
// 409 for uniqueness conflicts, 500 for anything else.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"retailedge/internal/core/application/usecases/commands"
	"retailedge/internal/core/application/usecases/queries"
	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/core/domain/model/order"
	"retailedge/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	createProductHandler     commands.CreateProductCommandHandler
	updateProductHandler     commands.UpdateProductCommandHandler
	deleteProductHandler     commands.DeleteProductCommandHandler
	createCustomerHandler    commands.CreateCustomerCommandHandler
	updateCustomerHandler    commands.UpdateCustomerCommandHandler
	deleteCustomerHandler    commands.DeleteCustomerCommandHandler

	// Query handlers
	getOrderHandler             queries.GetOrderQueryHandler
	getOrdersHandler            queries.GetOrdersQueryHandler
	getProductHandler           queries.GetProductQueryHandler
	getProductsHandler          queries.GetProductsQueryHandler
	getProductCategoriesHandler queries.GetProductCategoriesQueryHandler
	getCustomerHandler          queries.GetCustomerQueryHandler
	getCustomersHandler         queries.GetCustomersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	deleteProductHandler commands.DeleteProductCommandHandler,
	createCustomerHandler commands.CreateCustomerCommandHandler,
	updateCustomerHandler commands.UpdateCustomerCommandHandler,
	deleteCustomerHandler commands.DeleteCustomerCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getProductHandler queries.GetProductQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getProductCategoriesHandler queries.GetProductCategoriesQueryHandler,
	getCustomerHandler queries.GetCustomerQueryHandler,
	getCustomersHandler queries.GetCustomersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		updateOrderHandler:          updateOrderHandler,
		changeOrderStatusHandler:    changeOrderStatusHandler,
		deleteOrderHandler:          deleteOrderHandler,
		createProductHandler:        createProductHandler,
		updateProductHandler:        updateProductHandler,
		deleteProductHandler:        deleteProductHandler,
		createCustomerHandler:       createCustomerHandler,
		updateCustomerHandler:       updateCustomerHandler,
		deleteCustomerHandler:       deleteCustomerHandler,
		getOrderHandler:             getOrderHandler,
		getOrdersHandler:            getOrdersHandler,
		getProductHandler:           getProductHandler,
		getProductsHandler:          getProductsHandler,
		getProductCategoriesHandler: getProductCategoriesHandler,
		getCustomerHandler:          getCustomerHandler,
		getCustomersHandler:         getCustomersHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	orders := e.Group("/api/orders")
	orders.POST("", s.CreateOrder)
	orders.GET("", s.GetOrders)
	orders.GET("/:id", s.GetOrder)
	orders.GET("/customer/:customerId", s.GetOrdersByCustomer)
	orders.GET("/status/:status", s.GetOrdersByStatus)
	orders.PUT("/:id", s.UpdateOrder)
	orders.PATCH("/:id/status", s.ChangeOrderStatus)
	orders.DELETE("/:id", s.DeleteOrder)

	products := e.Group("/api/products")
	products.POST("", s.CreateProduct)
	products.GET("", s.GetProducts)
	products.GET("/categories", s.GetProductCategories)
	products.GET("/category/:category", s.GetProductsByCategory)
	products.GET("/search", s.SearchProducts)
	products.GET("/:id", s.GetProduct)
	products.PUT("/:id", s.UpdateProduct)
	products.DELETE("/:id", s.DeleteProduct)

	customers := e.Group("/api/customers")
	customers.POST("", s.CreateCustomer)
	customers.GET("", s.GetCustomers)
	customers.GET("/email/:email", s.GetCustomerByEmail)
	customers.GET("/:id", s.GetCustomer)
	customers.PUT("/:id", s.UpdateCustomer)
	customers.DELETE("/:id", s.DeleteCustomer)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "UP"})
}

// CreateOrder handles POST /api/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req OrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+req.CustomerID)
	}

	items, err := itemArguments(req.Items)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customerID, items, req.Notes, req.ShippingAddress, req.BillingAddress,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "create order")
	}

	return ctx.JSON(http.StatusCreated, orderToView(created))
}

// GetOrders handles GET /api/orders - lists all orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	return s.listOrders(ctx, nil, nil)
}

// GetOrder handles GET /api/orders/:id - retrieves a single order with its items.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "retrieve order")
	}

	return ctx.JSON(http.StatusOK, orderResponseToView(resp))
}

// GetOrdersByCustomer handles GET /api/orders/customer/:customerId.
func (s *Server) GetOrdersByCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+ctx.Param("customerId"))
	}

	return s.listOrders(ctx, &customerID, nil)
}

// GetOrdersByStatus handles GET /api/orders/status/:status.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.Param("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+ctx.Param("status"))
	}

	return s.listOrders(ctx, nil, &status)
}

func (s *Server) listOrders(ctx echo.Context, customerID *kernel.UUID, status *order.Status) error {
	query, err := queries.NewGetOrdersQuery(customerID, status)
	if err != nil {
		return badRequest(ctx, "Invalid order filters: "+err.Error())
	}

	resps, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "retrieve orders")
	}

	return ctx.JSON(http.StatusOK, orderResponsesToViews(resps))
}

// UpdateOrder handles PUT /api/orders/:id - rewrites the order header and
// replaces its item set wholesale.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	var req OrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+req.CustomerID)
	}

	items, err := itemArguments(req.Items)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID, customerID, items, req.Notes, req.ShippingAddress, req.BillingAddress,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "update order")
	}

	return ctx.JSON(http.StatusOK, orderToView(updated))
}

// ChangeOrderStatus handles PATCH /api/orders/:id/status?status=X.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+ctx.QueryParam("status"))
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, "Invalid status change data: "+err.Error())
	}

	changed, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "change order status")
	}

	return ctx.JSON(http.StatusOK, orderToView(changed))
}

// DeleteOrder handles DELETE /api/orders/:id - removes an order and its items.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	found, err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "delete order")
	}
	if !found {
		return notFound(ctx, "Order not found: "+orderID.String())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateProduct handles POST /api/products - adds a catalog product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req ProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+req.Price)
	}

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), req.Name, req.Description, price, req.Category, req.InStock, req.ImageURL,
	)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "create product")
	}

	return ctx.JSON(http.StatusCreated, productToView(created))
}

// GetProducts handles GET /api/products with optional inStock, minPrice, and
// maxPrice query parameters.
func (s *Server) GetProducts(ctx echo.Context) error {
	filters, err := productFilters(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid product filters: "+err.Error())
	}

	return s.listProducts(ctx, filters)
}

// GetProduct handles GET /api/products/:id.
func (s *Server) GetProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+ctx.Param("id"))
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	resp, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "retrieve product")
	}

	return ctx.JSON(http.StatusOK, productResponseToView(resp))
}

// GetProductCategories handles GET /api/products/categories - lists distinct
// category names.
func (s *Server) GetProductCategories(ctx echo.Context) error {
	query := queries.NewGetProductCategoriesQuery()

	categories, err := s.getProductCategoriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "retrieve product categories")
	}

	return ctx.JSON(http.StatusOK, categories)
}

// GetProductsByCategory handles GET /api/products/category/:category.
func (s *Server) GetProductsByCategory(ctx echo.Context) error {
	return s.listProducts(ctx, queries.ProductFilters{Category: ctx.Param("category")})
}

// SearchProducts handles GET /api/products/search?name=X - case-insensitive
// substring match on the product name.
func (s *Server) SearchProducts(ctx echo.Context) error {
	name := ctx.QueryParam("name")
	if name == "" {
		return badRequest(ctx, "Query parameter 'name' is required")
	}

	return s.listProducts(ctx, queries.ProductFilters{NameContains: name})
}

func (s *Server) listProducts(ctx echo.Context, filters queries.ProductFilters) error {
	query, err := queries.NewGetProductsQuery(filters)
	if err != nil {
		return badRequest(ctx, "Invalid product filters: "+err.Error())
	}

	resps, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "retrieve products")
	}

	return ctx.JSON(http.StatusOK, productResponsesToViews(resps))
}

// UpdateProduct handles PUT /api/products/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+ctx.Param("id"))
	}

	var req ProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+req.Price)
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID, req.Name, req.Description, price, req.Category, req.InStock, req.ImageURL,
	)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	updated, err := s.updateProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "update product")
	}

	return ctx.JSON(http.StatusOK, productToView(updated))
}

// DeleteProduct handles DELETE /api/products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+ctx.Param("id"))
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	found, err := s.deleteProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "delete product")
	}
	if !found {
		return notFound(ctx, "Product not found: "+productID.String())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateCustomer handles POST /api/customers - registers a customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req CustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(
		kernel.NewUUID(), req.FirstName, req.LastName, req.Email,
		req.PhoneNumber, req.DateOfBirth, req.IsActive,
	)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	created, err := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "create customer")
	}

	return ctx.JSON(http.StatusCreated, customerToView(created))
}

// GetCustomers handles GET /api/customers with optional firstName, lastName,
// and isActive query parameters.
func (s *Server) GetCustomers(ctx echo.Context) error {
	filters := queries.CustomerFilters{
		FirstNameContains: ctx.QueryParam("firstName"),
		LastNameContains:  ctx.QueryParam("lastName"),
	}
	if raw := ctx.QueryParam("isActive"); raw != "" {
		isActive, err := strconv.ParseBool(raw)
		if err != nil {
			return badRequest(ctx, "Invalid isActive value: "+raw)
		}
		filters.IsActive = &isActive
	}

	query := queries.NewGetCustomersQuery(filters)

	resps, err := s.getCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "retrieve customers")
	}

	return ctx.JSON(http.StatusOK, customerResponsesToViews(resps))
}

// GetCustomer handles GET /api/customers/:id.
func (s *Server) GetCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+ctx.Param("id"))
	}

	query, err := queries.NewGetCustomerQuery(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	return s.findCustomer(ctx, query)
}

// GetCustomerByEmail handles GET /api/customers/email/:email.
func (s *Server) GetCustomerByEmail(ctx echo.Context) error {
	query, err := queries.NewGetCustomerByEmailQuery(ctx.Param("email"))
	if err != nil {
		return badRequest(ctx, "Invalid email: "+err.Error())
	}

	return s.findCustomer(ctx, query)
}

func (s *Server) findCustomer(ctx echo.Context, query queries.GetCustomerQuery) error {
	resp, err := s.getCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "retrieve customer")
	}

	return ctx.JSON(http.StatusOK, customerResponseToView(resp))
}

// UpdateCustomer handles PUT /api/customers/:id.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+ctx.Param("id"))
	}

	var req CustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(
		customerID, req.FirstName, req.LastName, req.Email,
		req.PhoneNumber, req.DateOfBirth, req.IsActive,
	)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	updated, err := s.updateCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "update customer")
	}

	return ctx.JSON(http.StatusOK, customerToView(updated))
}

// DeleteCustomer handles DELETE /api/customers/:id.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+ctx.Param("id"))
	}

	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	found, err := s.deleteCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "delete customer")
	}
	if !found {
		return notFound(ctx, "Customer not found: "+customerID.String())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// respondError maps application errors onto HTTP status codes. Validation
// failures never reach here; they are rejected before the handler is invoked.
func (s *Server) respondError(ctx echo.Context, err error, action string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx, err.Error())
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err.Error())
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to " + action,
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func itemArguments(items []OrderItemRequest) ([]commands.ItemArgument, error) {
	args := make([]commands.ItemArgument, len(items))
	for i, item := range items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("productId", err)
		}

		unitPrice, err := kernel.MoneyFromString(item.UnitPrice)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("unitPrice", err)
		}

		args[i] = commands.ItemArgument{
			ProductID:   productID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   unitPrice,
		}
	}
	return args, nil
}

func productFilters(ctx echo.Context) (queries.ProductFilters, error) {
	filters := queries.ProductFilters{
		NameContains: ctx.QueryParam("name"),
		Category:     ctx.QueryParam("category"),
	}

	if raw := ctx.QueryParam("inStock"); raw != "" {
		inStock, err := strconv.ParseBool(raw)
		if err != nil {
			return queries.ProductFilters{}, errs.NewValueIsInvalidErrorWithCause("inStock", err)
		}
		filters.InStock = &inStock
	}

	if raw := ctx.QueryParam("minPrice"); raw != "" {
		minPrice, err := kernel.MoneyFromString(raw)
		if err != nil {
			return queries.ProductFilters{}, errs.NewValueIsInvalidErrorWithCause("minPrice", err)
		}
		filters.MinPrice = &minPrice
	}

	if raw := ctx.QueryParam("maxPrice"); raw != "" {
		maxPrice, err := kernel.MoneyFromString(raw)
		if err != nil {
			return queries.ProductFilters{}, errs.NewValueIsInvalidErrorWithCause("maxPrice", err)
		}
		filters.MaxPrice = &maxPrice
	}

	return filters, nil
}
