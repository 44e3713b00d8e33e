// Package timer implements the durable focus timer.
//
// The engine is a small state machine over {elapsedSeconds, tracking, paused}
// with a 1 Hz tick loop. Every transition and every tick persists a full
// snapshot with a fresh wall-clock checkpoint, so a reload can reconstruct
// time spent while the process was not running: a snapshot that was
// tracking-and-unpaused is credited floor(now - lastCheckpoint) extra seconds
// on restore, while a paused or stopped snapshot restores verbatim.
//
// Elapsed-second deltas (ticks and restore catch-up) are forwarded to an
// injected sink, which the application wires to the bloom streak tracker.
// Storage failure is never fatal; the engine logs once and keeps running in
// memory only.
package timer
