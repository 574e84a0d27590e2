// SPDX-License-Identifier: MIT

// Package spqr: native context lifecycle.
package spqr

/*
#include <cholmod.h>
#include <SuiteSparseQR_C.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"
)

// Context owns one CHOLMOD common object, the state every CHOLMOD and
// SuiteSparseQR entry point requires. NewContext returns it already
// started; release it with Close. After Close every operation returns
// ErrContextClosed.
//
// The common object is allocated in C memory so no pointer into Go memory
// is ever retained by the native side. An internal mutex serializes all
// native calls, so a single Context is safe to share across goroutines.
type Context struct {
	mu sync.Mutex
	cc *C.cholmod_common // nil once closed
}

// NewContext allocates and starts a CHOLMOD common object.
// Returns ErrNative when the native allocation or start fails.
func NewContext() (*Context, error) {
	cc := (*C.cholmod_common)(C.calloc(1, C.sizeof_cholmod_common))
	if cc == nil {
		return nil, fmt.Errorf("NewContext: calloc: %w", ErrNative)
	}
	if C.cholmod_l_start(cc) != 1 {
		C.free(unsafe.Pointer(cc))

		return nil, fmt.Errorf("NewContext: cholmod_l_start: %w", ErrNative)
	}

	return &Context{cc: cc}, nil
}

// SetPrintLevel sets CHOLMOD's diagnostic verbosity (cholmod_common.print,
// 0 = silent … 5 = everything; the native default is 3). At 4 and above the
// converters also dump freshly populated triplets through
// cholmod_l_print_triplet, matching the native library's own convention.
// Returns ErrContextClosed after Close.
func (c *Context) SetPrintLevel(level int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cc == nil {
		return ErrContextClosed
	}
	c.cc.print = C.int(level)

	return nil
}

// NativeAllocCount reports CHOLMOD's live allocation counter
// (cholmod_common.malloc_count): the number of native blocks currently
// outstanding through this context. Useful for verifying that repeated
// factorizations release every intermediate handle.
// Returns ErrContextClosed after Close.
func (c *Context) NativeAllocCount() (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cc == nil {
		return 0, ErrContextClosed
	}

	return int64(c.cc.malloc_count), nil
}

// Close finishes the CHOLMOD common object and releases its memory.
// Idempotent: a second Close is a no-op. Never returns a non-nil error
// today; the signature keeps room for native teardown diagnostics.
func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cc == nil {
		return nil
	}
	C.cholmod_l_finish(c.cc)
	C.free(unsafe.Pointer(c.cc))
	c.cc = nil

	return nil
}
