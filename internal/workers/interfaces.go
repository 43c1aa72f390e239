// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running and stopping multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
// Run starts the worker; implementations either block for the duration of
// their work or spawn goroutines internally.
type Worker interface {
	Run()
}

// StoppableWorker is a Worker with a graceful shutdown. Stop blocks until
// the worker has fully terminated.
type StoppableWorker interface {
	Worker
	Stop()
}
