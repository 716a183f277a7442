package lifecycle

import "time"

// DefaultTimeout bounds OnStart/OnStop hooks and graceful shutdown.
const DefaultTimeout = 15 * time.Second
