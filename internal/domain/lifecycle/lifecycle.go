// Package lifecycle holds values shared by fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start or stop hook that talks to the network.
const DefaultTimeout = 10 * time.Second
