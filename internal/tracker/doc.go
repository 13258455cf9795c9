// Package tracker implements the live chord sequence state machine.
//
// A Tracker moves between three states:
//
//	idle      -> Activate()  -> armed
//	armed     -> KeyEvent()  -> tracking (timer pending)
//	tracking  -> timer fires -> armed-but-quiescent
//
// Every KeyEvent cancels and replaces the single pending timer. When
// the timer fires the stored sequence is cleared and the quiescent
// flag set, but no notification is emitted — the reset becomes
// observable only on the next event, which starts a fresh one-element
// sequence. Reset and Deactivate clear eagerly and do notify.
//
// The tracker never fails: filtering against an unknown sequence
// returns an empty list, and continuation lookup on a dead-end
// sequence returns an empty key set.
//
// All state is guarded by one mutex, so a timer callback and a
// KeyEvent call cannot interleave mid-transition. Observer callbacks
// run outside the lock.
package tracker
