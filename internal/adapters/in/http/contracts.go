package http

import (
	"time"

	"retailedge/internal/core/application/usecases/queries"
	"retailedge/internal/core/domain/model/customer"
	"retailedge/internal/core/domain/model/order"
	"retailedge/internal/core/domain/model/product"
)

// ErrorResponse is the JSON body returned for every non-2xx response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItemRequest is one requested order line. Money values travel as decimal
// strings ("12.75") so callers never lose precision to float encoding.
type OrderItemRequest struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

// OrderRequest is the body for creating or updating an order. Updates replace
// the item set wholesale; there is no per-item patching.
type OrderRequest struct {
	CustomerID      string             `json:"customerId"`
	Items           []OrderItemRequest `json:"items"`
	Notes           string             `json:"notes,omitempty"`
	ShippingAddress string             `json:"shippingAddress,omitempty"`
	BillingAddress  string             `json:"billingAddress,omitempty"`
}

// OrderItemResponse is one order line as exposed to callers.
type OrderItemResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	TotalPrice  string `json:"totalPrice"`
}

// OrderView is the full order projection: header plus items in insertion
// order. Status is the upper-case name, e.g. "PENDING".
type OrderView struct {
	ID              string              `json:"id"`
	CustomerID      string              `json:"customerId"`
	Status          string              `json:"status"`
	TotalAmount     string              `json:"totalAmount"`
	Notes           string              `json:"notes,omitempty"`
	ShippingAddress string              `json:"shippingAddress,omitempty"`
	BillingAddress  string              `json:"billingAddress,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// ProductRequest is the body for creating or updating a catalog product.
type ProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Category    string `json:"category,omitempty"`
	InStock     bool   `json:"inStock"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// ProductView is a catalog product as exposed to callers.
type ProductView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	Category    string    `json:"category,omitempty"`
	InStock     bool      `json:"inStock"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CustomerRequest is the body for registering or updating a customer.
// DateOfBirth uses RFC 3339 date-time encoding and may be null.
type CustomerRequest struct {
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	IsActive    bool       `json:"isActive"`
}

// CustomerView is a customer as exposed to callers.
type CustomerView struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func orderToView(o *order.Order) OrderView {
	items := make([]OrderItemResponse, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = OrderItemResponse{
			ID:          item.ID().String(),
			ProductID:   item.ProductID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().String(),
			TotalPrice:  item.TotalPrice().String(),
		}
	}

	return OrderView{
		ID:              o.ID().String(),
		CustomerID:      o.CustomerID().String(),
		Status:          o.Status().String(),
		TotalAmount:     o.TotalAmount().String(),
		Notes:           o.Notes(),
		ShippingAddress: o.ShippingAddress(),
		BillingAddress:  o.BillingAddress(),
		Items:           items,
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func orderResponseToView(resp queries.OrderResponse) OrderView {
	items := make([]OrderItemResponse, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = OrderItemResponse{
			ID:          item.ID.String(),
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.String(),
			TotalPrice:  item.TotalPrice.String(),
		}
	}

	return OrderView{
		ID:              resp.ID.String(),
		CustomerID:      resp.CustomerID.String(),
		Status:          resp.Status.String(),
		TotalAmount:     resp.TotalAmount.String(),
		Notes:           resp.Notes,
		ShippingAddress: resp.ShippingAddress,
		BillingAddress:  resp.BillingAddress,
		Items:           items,
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}
}

func orderResponsesToViews(resps []queries.OrderResponse) []OrderView {
	views := make([]OrderView, len(resps))
	for i, resp := range resps {
		views[i] = orderResponseToView(resp)
	}
	return views
}

func productToView(p *product.Product) ProductView {
	return ProductView{
		ID:          p.ID().String(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().String(),
		Category:    p.Category(),
		InStock:     p.InStock(),
		ImageURL:    p.ImageURL(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func productResponseToView(resp queries.ProductResponse) ProductView {
	return ProductView{
		ID:          resp.ID.String(),
		Name:        resp.Name,
		Description: resp.Description,
		Price:       resp.Price.String(),
		Category:    resp.Category,
		InStock:     resp.InStock,
		ImageURL:    resp.ImageURL,
		CreatedAt:   resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
	}
}

func productResponsesToViews(resps []queries.ProductResponse) []ProductView {
	views := make([]ProductView, len(resps))
	for i, resp := range resps {
		views[i] = productResponseToView(resp)
	}
	return views
}

func customerToView(c *customer.Customer) CustomerView {
	return CustomerView{
		ID:          c.ID().String(),
		FirstName:   c.FirstName(),
		LastName:    c.LastName(),
		Email:       c.Email(),
		PhoneNumber: c.PhoneNumber(),
		DateOfBirth: c.DateOfBirth(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func customerResponseToView(resp queries.CustomerResponse) CustomerView {
	return CustomerView{
		ID:          resp.ID.String(),
		FirstName:   resp.FirstName,
		LastName:    resp.LastName,
		Email:       resp.Email,
		PhoneNumber: resp.PhoneNumber,
		DateOfBirth: resp.DateOfBirth,
		IsActive:    resp.IsActive,
		CreatedAt:   resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
	}
}

func customerResponsesToViews(resps []queries.CustomerResponse) []CustomerView {
	views := make([]CustomerView, len(resps))
	for i, resp := range resps {
		views[i] = customerResponseToView(resp)
	}
	return views
}
