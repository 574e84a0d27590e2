// SPDX-License-Identifier: MIT

// Package spqr: cgo build configuration.
// The #cgo directives below apply to every file in the package; keep them
// in this one place so packagers only ever patch a single file.
//
// Header/library layout follows the common distro packaging of SuiteSparse
// (Debian/Ubuntu: libsuitesparse-dev; Fedora: suitesparse-devel; Homebrew:
// suite-sparse). Override with CGO_CFLAGS/CGO_LDFLAGS when SuiteSparse
// lives elsewhere.
package spqr

/*
#cgo CFLAGS: -I/usr/include/suitesparse -I/usr/local/include/suitesparse
#cgo darwin CFLAGS: -I/opt/homebrew/include/suitesparse
#cgo LDFLAGS: -lspqr -lcholmod -lsuitesparseconfig -lm
#cgo darwin LDFLAGS: -L/opt/homebrew/lib

#include <cholmod.h>
#include <SuiteSparseQR_C.h>
*/
import "C"
