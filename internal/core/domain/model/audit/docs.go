// Package audit holds the immutable records emitted by every state change:
//   - Entry: an audit log line about one trip, vehicle or driver
//   - Activity: a global activity feed item
//
// Both implement Event so they can travel through the same subscription bus.
// Records are created once and never mutated or deleted.
package audit
