// Package order contains the Order aggregate, its Line value object, and the
// order status state machine.
//
// An Order is created only through the creation saga: lines carry the unit
// price snapshotted from the catalog at creation time, and the total is the
// sum of line subtotals, never recomputed afterwards. Status moves strictly
// one step along PENDING -> CONFIRMED -> PREPARING -> OUT_FOR_DELIVERY ->
// DELIVERED; the only branch is PENDING -> CANCELLED.
package order
