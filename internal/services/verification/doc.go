// Package verification simulates identity verification sessions.
//
// A Simulator advances a progress counter on a fixed tick until it reaches
// 100 and the session succeeds. The four-step checklist is derived from the
// progress on every read and never stored. Service keeps a registry of
// simulators keyed by session id for the daemon and issues a certificate
// when a session succeeds.
//
// # Implementation
//
// Ticks come from a schedule.Scheduler task. Reset and Fail stop the task
// and bump a run generation, so a tick already in flight when the session
// was reset cannot move the counter.
package verification
