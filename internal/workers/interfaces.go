// Package workers runs payment requests off the UI goroutine.
//
// A [Dispatcher] allows one request in flight at a time. Each request runs
// as a [Worker] on its own goroutine and reports exactly one outcome.
package workers

// Worker is a unit of background work. Run blocks until the work is done.
type Worker interface {
	Run()
}
