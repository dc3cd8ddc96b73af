// Package order provides the Order aggregate root and its owned line item
// collection, together with the order status lifecycle.
//
// The package includes:
//   - Order: the aggregate root owning header fields and line items as one
//     consistency unit
//   - LineItem: a product line within an order with a derived total price
//   - Status: the enumerated order lifecycle states
//
// Key business rules:
//   - An order always has at least one line item, at creation and after every
//     item replacement
//   - totalAmount is always the sum of the line item totals; it is recomputed
//     inside every item mutation path and can never be assigned by callers
//   - Each line item's totalPrice is quantity x unitPrice, derived at
//     construction and never independently settable
//   - Line items have no lifecycle of their own: they are replaced wholesale
//     and deleted together with their order
//   - Status transitions are unrestricted: any valid status may move to any
//     other valid status, matching the behavior of the upstream system. States
//     such as Delivered or Cancelled are terminal in practice but not enforced
//     as terminal here.
package order
