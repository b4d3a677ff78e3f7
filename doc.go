// Package cursorvec provides a sequence container with a built-in cursor.
//
// The cursor is a persistent index into the sequence: it survives edits
// to the underlying elements and can be explicitly resynchronized after
// the sequence shrinks or grows, so callers can track a "current element"
// across insertion, deletion, filtering, and truncation without
// recomputing bounds by hand.
//
// The package handles:
//
//   - Bounded movement that clamps at sequence bounds (Next, Prev, NextN,
//     PrevN), reporting MaxOut/MinOut through a tagged State result
//   - Rotatable mode, where movement wraps around bounds instead
//   - Always variants (NextAlways and friends) that skip the tagged
//     result and return the landing element as a plain optional
//   - Observable desync: mutation never silently clamps the cursor, and
//     UpdateCursor or Modify restores validity on demand
//
// Cursor validity:
//
// A cursor on a non-empty sequence is either synced (a valid index) or
// desynced (an out-of-range index remembered until the caller resyncs).
// Desync arises from shrinking the sequence through Container edits or
// from SetCursor with an arbitrary index; queries report it as
// StateOutOfRange rather than guessing a position. An empty sequence has
// no cursor at all.
//
// Basic usage:
//
//	vec := cursorvec.New([]string{"first", "second", "third", "fourth", "fifth"})
//
//	v, _ := vec.Current().Value()    // &"first"
//	v, _ = vec.Next().Value()        // &"second"
//	v, _ = vec.NextN(3).Value()      // &"fifth"
//	st := vec.Next()                 // st.Kind() == cursorvec.StateMaxOut
//
//	// Wraparound movement
//	ring := cursorvec.New([]int{1, 2, 3, 4, 5, 6, 7, 8}, cursorvec.WithRotatable(true))
//	n, _ := ring.NextN(10).Value()   // &3, index (0+10) mod 8
//
//	// Mutate and resync in one step
//	ring.Modify(func(s *seq.Slice[int]) {
//		s.Retain(func(v int) bool { return v%2 == 0 })
//	})
//
//	// Or batch raw edits and inspect the desync
//	vec.Container().DrainFrom(1)
//	vec.Current()                    // StateOutOfRange
//	vec.UpdateCursor()
//	vec.Current()                    // StateValid again
//
// Thread Safety:
//
// CursorVec holds a single cursor with single-threaded semantics. It is
// not safe for concurrent use and must be protected by external
// synchronization if shared.
package cursorvec
