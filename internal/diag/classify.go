package diag

import (
	"errors"
	"io"
	"io/fs"
	"syscall"
)

// Stable classification labels. These are the contract: callers may match
// on them, so they never change with platform or locale, unlike the
// message strings the OS renders into an *fs.PathError.
const (
	LabelNotFound      = "Entity not found"
	LabelPermission    = "Permission denied"
	LabelConnRefused   = "Connection refused"
	LabelConnReset     = "Connection reset"
	LabelConnAborted   = "Connection aborted"
	LabelNotConnected  = "Not connected"
	LabelAddrInUse     = "Address in use"
	LabelAddrNotAvail  = "Address not available"
	LabelBrokenPipe    = "Broken pipe"
	LabelAlreadyExists = "Entity already exists"
	LabelWouldBlock    = "Operation would block"
	LabelInvalidInput  = "Invalid input parameter"
	LabelInvalidData   = "Invalid data"
	LabelTimedOut      = "Timed out"
	LabelWriteZero     = "Write zero"
	LabelInterrupted   = "Operation interrupted"
	LabelUnexpectedEOF = "Unexpected end of file"
	LabelOther         = "Other os error"
	LabelUnknown       = "Unknown error"
)

var errnoLabels = map[syscall.Errno]string{
	syscall.ENOENT:        LabelNotFound,
	syscall.EACCES:        LabelPermission,
	syscall.EPERM:         LabelPermission,
	syscall.ECONNREFUSED:  LabelConnRefused,
	syscall.ECONNRESET:    LabelConnReset,
	syscall.ECONNABORTED:  LabelConnAborted,
	syscall.ENOTCONN:      LabelNotConnected,
	syscall.EADDRINUSE:    LabelAddrInUse,
	syscall.EADDRNOTAVAIL: LabelAddrNotAvail,
	syscall.EPIPE:         LabelBrokenPipe,
	syscall.EEXIST:        LabelAlreadyExists,
	syscall.EAGAIN:        LabelWouldBlock,
	syscall.EINVAL:        LabelInvalidInput,
	syscall.EBADMSG:       LabelInvalidData,
	syscall.EILSEQ:        LabelInvalidData,
	syscall.ETIMEDOUT:     LabelTimedOut,
	syscall.EINTR:         LabelInterrupted,
}

// Classify maps an error cause to its stable label. It is total: any cause
// it does not recognize maps to LabelUnknown, and an OS errno outside the
// known set maps to LabelOther. Wrapped errors are unwrapped via
// errors.Is/As, so *fs.PathError values from os calls classify by their
// underlying errno.
func Classify(err error) string {
	if err == nil {
		return LabelUnknown
	}

	switch {
	case errors.Is(err, io.ErrUnexpectedEOF):
		return LabelUnexpectedEOF
	case errors.Is(err, io.ErrShortWrite):
		return LabelWriteZero
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		if label, ok := errnoLabels[errno]; ok {
			return label
		}
		return LabelOther
	}

	// Portable sentinels for errors that did not come from a syscall.
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return LabelNotFound
	case errors.Is(err, fs.ErrPermission):
		return LabelPermission
	case errors.Is(err, fs.ErrExist):
		return LabelAlreadyExists
	case errors.Is(err, fs.ErrInvalid):
		return LabelInvalidInput
	}

	return LabelUnknown
}
