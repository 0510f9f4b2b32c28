package futures

// The default manager backs the package-level functions for applications
// that want a single process-wide pool. Libraries should accept a *Manager
// instead of reaching for it.
var defaultManager = newManager(defaultManagerConfig())

// Default returns the process-wide Manager.
func Default() *Manager { return defaultManager }

// Configure records the desired size of the process-wide pool. See
// Manager.Configure.
func Configure(maxWorkers int) error { return defaultManager.Configure(maxWorkers) }

// Shutdown drains and releases the process-wide pool, if one was ever
// created. See Manager.Shutdown.
func Shutdown() { defaultManager.Shutdown() }
