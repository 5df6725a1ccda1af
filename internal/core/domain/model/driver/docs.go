// Package driver provides the Driver aggregate of the fleet registry.
//
// A driver marked ON_TRIP carries the id of that trip; every other status
// clears it. Driver status is set explicitly and never derived from trips.
package driver
