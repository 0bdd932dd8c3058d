package magickit

/*
#cgo LDFLAGS: -lmagic
#include <magic.h>
#include <stdlib.h>
*/
import "C"

import (
	"errors"
	"os"
	"strings"
	"sync"
	"unsafe"
)

// Magic wraps a libmagic handle (a "cookie" in libmagic terms).
//
// A handle is NOT safe for concurrent use; every call into libmagic is
// serialized through an internal mutex, so a single Magic can be shared
// between goroutines. All detection logic lives in libmagic itself:
// this type only marshals calls across the cgo boundary.
type Magic struct {
	mu     sync.Mutex
	cookie C.magic_t
	flags  Flag
	loaded bool
}

// New opens a libmagic handle, applies the given options and loads the
// magic database (the system default unless WithDatabase is used).
// The caller must Close the returned handle when done with it.
func New(opts ...Option) (*Magic, error) {
	options := applyOptions(opts)

	cookie := C.magic_open(C.int(options.Flags))
	if cookie == nil {
		return nil, &MagicError{Op: "open", Err: ErrOpenFailed}
	}

	m := &Magic{cookie: cookie, flags: options.Flags}
	if err := m.Load(options.Databases...); err != nil {
		m.Close()
		return nil, err
	}
	return m, nil
}

// Load replaces the handle's compiled magic rules with the databases at
// the given paths. With no arguments the system default database is
// loaded. Multiple paths are combined the way the file(1) command does.
func (m *Magic) Load(paths ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cookie == nil {
		return &MagicError{Op: "load", Err: ErrClosed}
	}

	var cpath *C.char
	if len(paths) > 0 {
		// libmagic accepts a colon-separated list of database files.
		cpath = C.CString(strings.Join(paths, ":"))
		defer C.free(unsafe.Pointer(cpath))
	}

	if rv := C.magic_load(m.cookie, cpath); rv == -1 {
		return m.lastError("load", strings.Join(paths, ":"))
	}
	m.loaded = true
	return nil
}

// File returns libmagic's result for the file at path: a textual
// description by default, or a MIME type/encoding depending on the
// handle's flags.
//
// A file that cannot be opened by the current process reports the OS
// error up front instead of whatever libmagic would fold into its
// result text.
func (m *Magic) File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	f.Close()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cookie == nil {
		return "", &MagicError{Op: "file", Path: path, Err: ErrClosed}
	}
	if !m.loaded {
		return "", &MagicError{Op: "file", Path: path, Err: ErrNotLoaded}
	}

	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	result := C.magic_file(m.cookie, cpath)
	if result == nil {
		return m.nullResult("file", path)
	}
	return C.GoString(result), nil
}

// Buffer returns libmagic's result for the given content.
func (m *Magic) Buffer(data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cookie == nil {
		return "", &MagicError{Op: "buffer", Err: ErrClosed}
	}
	if !m.loaded {
		return "", &MagicError{Op: "buffer", Err: ErrNotLoaded}
	}

	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = unsafe.Pointer(&data[0])
	}

	result := C.magic_buffer(m.cookie, ptr, C.size_t(len(data)))
	if result == nil {
		return m.nullResult("buffer", "")
	}
	return C.GoString(result), nil
}

// Descriptor returns libmagic's result for an open file descriptor.
// The descriptor is consumed by libmagic and closed on some platforms;
// callers should dup it first if they still need it.
func (m *Magic) Descriptor(fd uintptr) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cookie == nil {
		return "", &MagicError{Op: "descriptor", Err: ErrClosed}
	}
	if !m.loaded {
		return "", &MagicError{Op: "descriptor", Err: ErrNotLoaded}
	}

	result := C.magic_descriptor(m.cookie, C.int(fd))
	if result == nil {
		return m.nullResult("descriptor", "")
	}
	return C.GoString(result), nil
}

// SetFlags changes the handle's flags for subsequent calls.
func (m *Magic) SetFlags(flags Flag) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cookie == nil {
		return &MagicError{Op: "setflags", Err: ErrClosed}
	}
	if rv := C.magic_setflags(m.cookie, C.int(flags)); rv == -1 {
		return m.lastError("setflags", "")
	}
	m.flags = flags
	return nil
}

// Flags returns the flags the handle currently operates with.
func (m *Magic) Flags() Flag {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flags
}

// Check validates the magic database file at path without loading it.
// With an empty path the system default database is checked.
func (m *Magic) Check(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cookie == nil {
		return &MagicError{Op: "check", Path: path, Err: ErrClosed}
	}

	var cpath *C.char
	if path != "" {
		cpath = C.CString(path)
		defer C.free(unsafe.Pointer(cpath))
	}
	if rv := C.magic_check(m.cookie, cpath); rv == -1 {
		return m.lastError("check", path)
	}
	return nil
}

// Compile compiles the magic database file at path into the binary
// ".mgc" form, written to the current directory. With an empty path the
// system default database is compiled.
func (m *Magic) Compile(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cookie == nil {
		return &MagicError{Op: "compile", Path: path, Err: ErrClosed}
	}

	var cpath *C.char
	if path != "" {
		cpath = C.CString(path)
		defer C.free(unsafe.Pointer(cpath))
	}
	if rv := C.magic_compile(m.cookie, cpath); rv == -1 {
		return m.lastError("compile", path)
	}
	return nil
}

// Close releases the libmagic handle. It is safe to call Close more
// than once; subsequent calls are no-ops.
func (m *Magic) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cookie != nil {
		C.magic_close(m.cookie)
		m.cookie = nil
		m.loaded = false
	}
	return nil
}

// Version returns the version number of the linked libmagic,
// e.g. 543 for version 5.43.
func Version() int {
	return int(C.magic_version())
}

// lastError converts the handle's libmagic error state into a
// *MagicError. Callers must hold m.mu.
func (m *Magic) lastError(op, path string) error {
	errno := int(C.magic_errno(m.cookie))
	if msg := C.magic_error(m.cookie); msg != nil {
		return &MagicError{Op: op, Path: path, Errno: errno, Err: errors.New(C.GoString(msg))}
	}
	return &MagicError{Op: op, Path: path, Errno: errno, Err: ErrEmptyResult}
}

// nullResult handles a NULL return from an identification call.
// libmagic 5.09 can fail to identify content and return NULL without
// setting an error message; under a MIME flag the conventional fallback
// result is application/octet-stream. Callers must hold m.mu.
func (m *Magic) nullResult(op, path string) (string, error) {
	if msg := C.magic_error(m.cookie); msg != nil {
		errno := int(C.magic_errno(m.cookie))
		return "", &MagicError{Op: op, Path: path, Errno: errno, Err: errors.New(C.GoString(msg))}
	}
	if m.flags.Has(FlagMIMEType) {
		return "application/octet-stream", nil
	}
	return "", &MagicError{Op: op, Path: path, Err: ErrEmptyResult}
}

// Ensure Magic implements Identifier
var _ Identifier = (*Magic)(nil)
