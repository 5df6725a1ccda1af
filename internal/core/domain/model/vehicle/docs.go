// Package vehicle provides the Vehicle aggregate of the fleet registry.
//
// Vehicles are registered AVAILABLE and change status only through ChangeStatus.
// Their status is not synchronised with trips: dispatchers and fleet managers
// set it explicitly.
package vehicle
