package aesmodes

import (
	"crypto/cipher"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// aesCipher holds an expanded schedule for reuse across blocks. It is
// never modified after NewCipher returns.
type aesCipher struct {
	rk roundKeys
}

// NewCipher returns a cipher.Block backed by this package's round
// transforms, for use with the crypto/cipher modes. Unlike the mode
// functions, the returned Block keeps the expanded key until it is
// garbage collected.
func NewCipher(key []byte) (cipher.Block, error) {
	if !validKeySize(len(key)) {
		err := errors.Wrapf(ErrInvalidKeySize, "key length %d", len(key))
		return nil, rejected("NewCipher", err, zap.Int("keyLen", len(key)))
	}
	return &aesCipher{rk: expandKey(key)}, nil
}

// BlockSize returns the AES block size.
func (c *aesCipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the first block of src into dst.
func (c *aesCipher) Encrypt(dst, src []byte) {
	encryptBlock(c.rk, dst, src)
}

// Decrypt decrypts the first block of src into dst.
func (c *aesCipher) Decrypt(dst, src []byte) {
	decryptBlock(c.rk, dst, src)
}
