// Package lifecycle holds constants shared by components that participate in
// application start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and shutdown hooks (DB ping, HTTP drain).
const DefaultTimeout = 10 * time.Second
