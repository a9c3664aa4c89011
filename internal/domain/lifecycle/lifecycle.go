// Package lifecycle holds shared timeouts for component startup and
// shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a component may take to start or
// stop before the application gives up on it.
const DefaultTimeout = 30 * time.Second
