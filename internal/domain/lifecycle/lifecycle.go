// Package lifecycle holds shared timing constants for component start/stop.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as connection pings and
// graceful shutdowns.
const DefaultTimeout = 10 * time.Second
