// Package order contains the Order aggregate and its two independent status
// dimensions: the lifecycle Status driven by fulfillment, and the
// PaymentStatus reported by the payments collaborator.
//
// The aggregate owns the transition table and rejects every edge outside it.
// It does not touch inventory itself: the application layer pairs each status
// write with its inventory side effect inside one transaction.
package order
