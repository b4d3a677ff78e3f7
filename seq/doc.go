// Package seq provides the dynamic-array collaborator used by cursorvec.
//
// Slice is a thin generic wrapper over a Go slice with the mutation
// surface a cursor-bearing container needs: indexed access, append,
// insertion, single deletes, range drains, and retain-by-predicate. It
// adds nothing clever — cursorvec depends on it for storage and indexed
// access only, and all cursor policy lives outside this package.
//
// Slice is not safe for concurrent use.
package seq
