// Package bloom tracks daily study-goal progress and the full-bloom streak.
//
// Progress is a saturating percentage of a fixed daily goal (4 hours by
// default). The day a user first reaches 100% the tracker increments both
// the lifetime full-bloom count and the consecutive-day streak, exactly once
// per day: the crossing test compares the previous progress strictly below
// 100 against the new progress at or above it, so further study time after
// the goal is met never re-increments.
//
// Day boundaries are reconciled once, at load. Yesterday's snapshot keeps the
// streak only if yesterday bloomed; any longer gap breaks it. The lifetime
// count never decreases.
package bloom
