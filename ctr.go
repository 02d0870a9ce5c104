package aesmodes

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CryptCTR encrypts or decrypts data in place in CTR mode.
//
// The initial counter block is nonce followed by zero bytes, so nonce may
// be 0 to 16 bytes long. The counter is incremented as a 128-bit
// big-endian integer after each keystream block. data may have any
// length; applying CryptCTR twice with the same key and nonce restores
// the input.
func CryptCTR(data, key, nonce []byte) error {
	if len(nonce) > BlockSize {
		err := errors.Wrapf(ErrInvalidNonceSize, "nonce length %d exceeds %d", len(nonce), BlockSize)
		return rejected("CryptCTR", err, zap.Int("nonceLen", len(nonce)))
	}
	if !validKeySize(len(key)) {
		err := errors.Wrapf(ErrInvalidKeySize, "key length %d", len(key))
		return rejected("CryptCTR", err, zap.Int("keyLen", len(key)))
	}

	rk := expandKey(key)
	defer rk.wipe()

	var ctr, ks state
	copy(ctr[:], nonce)

	for off := 0; off < len(data); off += BlockSize {
		encryptBlock(rk, ks[:], ctr[:])
		incrCounter(&ctr)

		end := min(off+BlockSize, len(data))
		xorBytesInPlace(data[off:end], data[off:end], ks[:end-off])
	}
	zeroBytes(ks[:])
	return nil
}
