// SPDX-License-Identifier: MIT

// Test-Bridge (White-Box) for the Native Converters
//
// Purpose:
//   - Expose the unexported coordinate⇄CSC round trip and option resolution
//     to package-internal tests without widening the production API.
//
// Build Policy:
//   - Test files cannot import "C", so the cgo-touching body lives in
//     convert.go (Context.roundTrip); this file is pure Go and only
//     re-exports it.
package spqr

import "github.com/katalvlaran/spqr/coo"

// roundTripForTest re-exports the converter round trip for white-box tests.
func (c *Context) roundTripForTest(a *coo.Matrix) (*coo.Matrix, error) {
	return c.roundTrip(a)
}

// gatherOptionsForTest exposes option resolution to white-box tests.
var gatherOptionsForTest = gatherOptions
