// Package product provides the Product entity for the catalog collaborator.
//
// Products carry the catalog price and availability used when quoting new
// orders; line items snapshot the product name at order time, so later catalog
// changes never alter historical orders.
package product
