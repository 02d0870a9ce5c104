package aesmodes

import (
	"github.com/pkg/errors"
)

// PaddedSize returns the ciphertext length of n bytes of plaintext under
// PKCS#7 padding. A full block of padding is added when n is already
// block aligned.
func PaddedSize(n int) int {
	return n + BlockSize - n%BlockSize
}

// checkEncrypt validates an encryption call before anything is written.
func checkEncrypt(dataLen, keyLen, dstLen int, pads bool) error {
	if !pads && dataLen%BlockSize != 0 {
		return errors.Wrapf(ErrInvalidDataSize, "data length %d is not a multiple of %d", dataLen, BlockSize)
	}
	if !validKeySize(keyLen) {
		return errors.Wrapf(ErrInvalidKeySize, "key length %d", keyLen)
	}
	required := dataLen
	if pads {
		required = PaddedSize(dataLen)
	}
	if dstLen < required {
		return errors.Wrapf(ErrInvalidBufferSize, "need %d bytes, have %d", required, dstLen)
	}
	return nil
}

// checkDecrypt validates a decryption call before anything is written.
// With unpad set the bound is one block short of the input, since the
// pad length is not known yet.
func checkDecrypt(dataLen, keyLen, dstLen int, unpad bool) error {
	if dataLen == 0 || dataLen%BlockSize != 0 {
		return errors.Wrapf(ErrInvalidDataSize, "data length %d is not a positive multiple of %d", dataLen, BlockSize)
	}
	if !validKeySize(keyLen) {
		return errors.Wrapf(ErrInvalidKeySize, "key length %d", keyLen)
	}
	required := dataLen
	if unpad {
		required = dataLen - BlockSize
	}
	if dstLen < required {
		return errors.Wrapf(ErrInvalidBufferSize, "need %d bytes, have %d", required, dstLen)
	}
	return nil
}

// checkIV accepts a nil IV or one of exactly one block.
func checkIV(iv []byte) error {
	if iv != nil && len(iv) != BlockSize {
		return errors.Wrapf(ErrInvalidDataSize, "iv length %d, want %d", len(iv), BlockSize)
	}
	return nil
}

// checkPadding reports whether the last p bytes of the block all equal p
// with 1 <= p <= 16.
func checkPadding(p int, last *state) bool {
	if p < 1 || p > BlockSize {
		return false
	}
	var diff byte
	for i := BlockSize - p; i < BlockSize; i++ {
		diff |= last[i] ^ byte(p)
	}
	return diff == 0
}
