// Package remind polls user-defined study reminders against the wall clock.
//
// A reminder fires when its HH:MM time matches the current minute on a
// configured weekday while the reminder is active. Firing transitions the
// reminder into a 60-second in-memory cooldown, which is what guarantees
// at-most-once delivery per matching minute; correctness does not depend on
// the poll interval, only on it being no longer than one minute. Cooldown
// state is never persisted and reminder records are never mutated.
package remind
