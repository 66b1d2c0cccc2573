// Package delivery contains the Delivery aggregate and its status state
// machine.
//
// A Delivery is created exactly once per order token, normally by consuming a
// fulfillment-requested event, and is assigned to a delivery agent only after
// the identity authority has confirmed the candidate as an active
// delivery-role identity. The order token is a value-level reference into the
// order store; no foreign key crosses the two stores.
package delivery
