// Package cursor implements the index state machine behind a cursorvec
// container.
//
// A Cursor is an integer index plus a wraparound policy. It deliberately
// does not know the sequence it points into: movement, validity, and
// clamping all take the sequence's current length as a parameter. This
// keeps the state machine honest after external mutation — there is no
// cached capacity to go stale, and a shrunken sequence is observed as an
// out-of-range index on the very next call.
//
// Movement semantics:
//
//   - Bounded (default): displacement past either end clamps to the
//     nearest boundary index and reports false. Repeating the move at the
//     boundary reports false again without moving.
//   - Rotatable: the target index wraps modulo the sequence length in
//     both directions and movement always reports true on a non-empty
//     sequence.
//
// N-step movement applies the policy to the net displacement, not to the
// intermediate positions: clamping lands on the boundary no matter how
// many extra steps were requested, and wrapping reduces the step count
// modulo the length before moving.
//
// Cursor is not safe for concurrent use; callers needing shared access
// must provide their own synchronization.
package cursor
