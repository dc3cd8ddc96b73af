package order

import (
	"errors"
	"fmt"
	"time"

	"retailedge/internal/core/domain/model/kernel"
	"retailedge/internal/pkg/errs"
)

const (
	maxNotesLength   = 500
	maxAddressLength = 1000
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderItemsAreRequired is returned when an order would end up with no line
	// items, at creation or on item replacement. An order is never empty.
	ErrOrderItemsAreRequired = errs.NewValueIsRequiredError("order items")
)

// Order is the aggregate root for a customer order. It owns its line items
// exclusively and keeps the header total consistent with them at all times.
//
// Order follows these invariants:
//   - The item collection is never empty
//   - totalAmount equals the sum of the line item totals after every mutation
//   - createdAt is set once; updatedAt is refreshed on every mutation
//   - Can only be created through NewOrder or RestoreOrder
//
// Mutation of the item collection happens only through ReplaceItems, which swaps
// the whole collection; individual items cannot be added or removed.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the ordering customer (opaque, not re-validated here)
	customerID kernel.UUID

	// status is the current lifecycle state
	status Status

	// totalAmount is derived: the sum of all line item totals
	totalAmount kernel.Money

	// notes is optional free text, bounded length
	notes string

	// shippingAddress and billingAddress are optional free text, bounded length
	shippingAddress string
	billingAddress  string

	// createdAt is set once at creation
	createdAt time.Time

	// updatedAt is refreshed on every mutation
	updatedAt time.Time

	// items is the owned, ordered line item collection
	items []*LineItem

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new order in Pending status with an initial item set.
//
// Fails when the customer reference is invalid, the item set is empty, any item
// is invalid, or a free-text field exceeds its bound. The total amount is
// derived from the items; createdAt and updatedAt are both set to the current
// time in UTC.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []*LineItem,
	notes string,
	shippingAddress string,
	billingAddress string,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setNotes(notes),
		o.setShippingAddress(shippingAddress),
		o.setBillingAddress(billingAddress),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o.createdAt = now
	o.updatedAt = now
	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistent storage.
//
// The stored status and timestamps are kept, but the total amount is recomputed
// from the restored items rather than trusted from storage, so a total that
// diverged from its items can never re-enter the domain.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	status Status,
	items []*LineItem,
	notes string,
	shippingAddress string,
	billingAddress string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setStatus(status),
		o.setNotes(notes),
		o.setShippingAddress(shippingAddress),
		o.setBillingAddress(billingAddress),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the Order instance was created through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the derived order total.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Notes returns the optional order notes.
func (o *Order) Notes() string {
	return o.notes
}

// ShippingAddress returns the optional shipping address.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// BillingAddress returns the optional billing address.
func (o *Order) BillingAddress() string {
	return o.billingAddress
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Items returns the owned line items in insertion order.
// The returned slice is a copy; the collection can only be changed through
// ReplaceItems.
func (o *Order) Items() []*LineItem {
	items := make([]*LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// ReplaceItems atomically discards the current line items and replaces them
// with newItems, recomputing the order total and refreshing updatedAt.
//
// Fails with ErrOrderItemsAreRequired when newItems is empty: an order that has
// been created never becomes empty. Fails when any new item is invalid, in
// which case the current items are left untouched.
func (o *Order) ReplaceItems(newItems []*LineItem) error {
	if err := o.setItems(newItems); err != nil {
		return err
	}

	o.touch()
	return nil
}

// UpdateDetails assigns the header fields without touching items or status.
// Refreshes updatedAt on success.
func (o *Order) UpdateDetails(
	customerID kernel.UUID,
	notes string,
	shippingAddress string,
	billingAddress string,
) error {
	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setNotes(notes),
		o.setShippingAddress(shippingAddress),
		o.setBillingAddress(billingAddress),
	); err != nil {
		return err
	}

	o.touch()
	return nil
}

// ChangeStatus transitions the order to the next lifecycle state and refreshes
// updatedAt. Items and total amount are left untouched. Any valid status is an
// allowed target, including the current one.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.ChangeTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

// recomputeTotal folds the line item totals into the header total.
// This is the only place totalAmount is ever assigned.
func (o *Order) recomputeTotal() {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.TotalPrice())
	}
	o.totalAmount = total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setNotes(notes string) error {
	if len(notes) > maxNotesLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"notes",
			fmt.Errorf("length %d exceeds maximum of %d", len(notes), maxNotesLength),
		)
	}
	o.notes = notes
	return nil
}

func (o *Order) setShippingAddress(shippingAddress string) error {
	if len(shippingAddress) > maxAddressLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipping address",
			fmt.Errorf("length %d exceeds maximum of %d", len(shippingAddress), maxAddressLength),
		)
	}
	o.shippingAddress = shippingAddress
	return nil
}

func (o *Order) setBillingAddress(billingAddress string) error {
	if len(billingAddress) > maxAddressLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"billing address",
			fmt.Errorf("length %d exceeds maximum of %d", len(billingAddress), maxAddressLength),
		)
	}
	o.billingAddress = billingAddress
	return nil
}

func (o *Order) setItems(items []*LineItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]*LineItem, len(items))
	copy(o.items, items)
	o.recomputeTotal()
	return nil
}
