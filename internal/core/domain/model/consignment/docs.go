// Package consignment contains the Consignment aggregate: the delivery unit
// covering one order's items from one warehouse. The aggregate owns the
// delivery state machine (including the Failed -> Pending retry loop) and the
// append-only Event tracking trail consumed by tracking UIs.
//
// Parent-order completion (order turns Delivered when all of its consignments
// are Delivered) is coordinated by the application layer in the same
// transaction as the final consignment's status write.
package consignment
