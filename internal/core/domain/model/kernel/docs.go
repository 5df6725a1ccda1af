// Package kernel holds the value objects shared by every aggregate of the trip engine:
//   - UUID: identifier of trips, vehicles, drivers, documents and log records
//   - Actor: the user or role a change is attributed to
package kernel
