package aesmodes

import (
	"github.com/pkg/errors"
)

// Error is the closed set of failures reported by this package. Every
// error returned by an exported function wraps exactly one Error, so
// errors.Is(err, ErrInvalidKey) and Code(err) both work.
type Error int

const (
	// ErrInvalidDataSize means the input length is not a multiple of the
	// block size where one is required, or an IV has the wrong length.
	ErrInvalidDataSize Error = iota + 1
	// ErrInvalidKeySize means the key is not 16, 24 or 32 bytes.
	ErrInvalidKeySize
	// ErrInvalidBufferSize means dst cannot hold the result.
	ErrInvalidBufferSize
	// ErrInvalidKey means the padding check failed after decryption:
	// wrong key, or corrupted or tampered ciphertext.
	ErrInvalidKey
	// ErrInvalidNonceSize means the CTR nonce is longer than one block.
	ErrInvalidNonceSize
)

var errorText = map[Error]string{
	ErrInvalidDataSize:   "invalid data size",
	ErrInvalidKeySize:    "invalid key size",
	ErrInvalidBufferSize: "invalid buffer size",
	ErrInvalidKey:        "invalid key",
	ErrInvalidNonceSize:  "invalid nonce size",
}

// Error returns the package-prefixed description of the code.
func (e Error) Error() string {
	if s, ok := errorText[e]; ok {
		return "aesmodes: " + s
	}
	return "aesmodes: unknown error"
}

// Code returns the Error wrapped by err, or 0 if err is nil or did not
// come from this package.
func Code(err error) Error {
	var e Error
	if errors.As(err, &e) {
		return e
	}
	return 0
}
