// Package slot stores the most recent pending error for each goroutine.
//
// Each goroutine owns an independent single-value slot: storing replaces any
// previously pending error, taking drains and clears it. Because slots never
// cross goroutines, the only shared state is the registry map itself, and the
// one-shot consumption contract needs no coordination beyond the registry
// lock.
//
// # Consumption Contract
//
//	slot.Store(err)       // replaces whatever was pending
//	e := slot.Take()      // returns err, slot now empty
//	e = slot.Take()       // returns nil
//
// Reading the error clears it, mirroring a hardware interrupt flag: repeated
// reads without a new failure report nothing.
//
// # Lifecycle
//
// Slot entries are created lazily on the first Store by a goroutine and hold
// at most one error. The runtime offers no goroutine-exit hook, so
// long-lived worker goroutines that stored errors should call Release when
// they retire; Take also removes the entry, so drained slots cost nothing.
package slot
