// Package scenario turns declarative scenario files into a simulated
// reference host environment.
//
// A scenario lists the processes an autosplitter may attach to, their
// memory layout, the initial timer setup and a script of steps (memory
// writes, process exits, manual timer overrides) applied before given
// ticks. After a run the requested actions can be checked against the
// scenario's expectations.
package scenario
