// Package schedule provides cancellable delayed and periodic callbacks.
//
// Contents
//
//   - Scheduler, the interface services depend on (AfterFunc, Every)
//   - Task, a handle whose Stop cancels any future fire
//   - Real, backed by the runtime timers
//   - Manual, a virtual clock advanced explicitly by tests
//
// # Notes
//
// Stopping a task prevents future fires but cannot recall a callback that
// is already running. Callers that mutate state from callbacks should guard
// against a late fire, for example with a generation counter checked under
// their own lock.
package schedule
