package order

import (
	"errors"
	"fmt"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/pkg/errs"
)

// maxProductNameLength bounds the denormalized product name snapshot.
const maxProductNameLength = 255

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not created
// through the NewLineItem or RestoreLineItem factory functions.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem")

// LineItem represents one product line within an order.
//
// The product name is a snapshot taken at order time: it is deliberately never
// re-fetched from the catalog, so later renames do not retroactively change
// historical orders. The total price is derived as quantity x unitPrice during
// construction and cannot be set independently.
//
// LineItem has no identity lifecycle of its own. It is created together with an
// order (or an item replacement) and destroyed with it.
type LineItem struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// productID references the catalog product (opaque, not re-validated here)
	productID kernel.UUID

	// productName is the product name snapshot at order time
	productName string

	// quantity is the number of units ordered (must be >= 1)
	quantity int

	// unitPrice is the price per unit at order time
	unitPrice kernel.Money

	// totalPrice is derived: quantity x unitPrice
	totalPrice kernel.Money

	// isConstructed ensures the item was created via a factory function
	isConstructed bool
}

// NewLineItem creates a line item from a product reference, a product name
// snapshot, a quantity, and a unit price. A fresh identifier is assigned, so
// items produced for a replacement never reuse previous identifiers.
//
// Fails when the product reference is invalid, the name is empty or too long,
// the quantity is below 1, or the unit price is not a constructed Money value
// (Money itself rejects negative amounts).
func NewLineItem(
	productID kernel.UUID,
	productName string,
	quantity int,
	unitPrice kernel.Money,
) (*LineItem, error) {
	return newLineItem(kernel.NewUUID(), productID, productName, quantity, unitPrice)
}

// RestoreLineItem reconstructs a line item from persistent storage, keeping its
// stored identifier. The same validation rules as NewLineItem apply; the total
// price is recomputed rather than trusted from storage.
func RestoreLineItem(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantity int,
	unitPrice kernel.Money,
) (*LineItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return newLineItem(id, productID, productName, quantity, unitPrice)
}

func newLineItem(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantity int,
	unitPrice kernel.Money,
) (*LineItem, error) {
	item := &LineItem{
		id:            id,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	item.totalPrice = item.Subtotal()
	return item, nil
}

// Validate ensures the LineItem instance was created through a factory function.
func (l *LineItem) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (l *LineItem) ID() kernel.UUID {
	return l.id
}

// ProductID returns the referenced catalog product identifier.
func (l *LineItem) ProductID() kernel.UUID {
	return l.productID
}

// ProductName returns the product name snapshot taken at order time.
func (l *LineItem) ProductName() string {
	return l.productName
}

// Quantity returns the number of units ordered.
func (l *LineItem) Quantity() int {
	return l.quantity
}

// UnitPrice returns the per-unit price at order time.
func (l *LineItem) UnitPrice() kernel.Money {
	return l.unitPrice
}

// TotalPrice returns the derived line total (quantity x unitPrice).
func (l *LineItem) TotalPrice() kernel.Money {
	return l.totalPrice
}

// Subtotal computes quantity x unitPrice at the configured precision.
// Pure computation with no side effects; TotalPrice caches this value.
func (l *LineItem) Subtotal() kernel.Money {
	return l.unitPrice.MulInt(l.quantity)
}

func (l *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *LineItem) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	if len(productName) > maxProductNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"product name",
			fmt.Errorf("length %d exceeds maximum of %d", len(productName), maxProductNameLength),
		)
	}
	l.productName = productName
	return nil
}

func (l *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than or equal to 1", quantity),
		)
	}
	l.quantity = quantity
	return nil
}

func (l *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	l.unitPrice = unitPrice
	return nil
}
