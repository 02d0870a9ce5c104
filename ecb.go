package aesmodes

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// EncryptECB encrypts src into dst in ECB mode and returns the number of
// bytes written.
//
// Without pads, len(src) must be a multiple of 16 and dst must hold
// len(src) bytes. With pads, src may have any length; the output is
// PaddedSize(len(src)) bytes, one block longer than src when src is
// already aligned. dst and src may overlap entirely or not at all.
func EncryptECB(dst, src, key []byte, pads bool) (int, error) {
	if err := checkEncrypt(len(src), len(key), len(dst), pads); err != nil {
		return 0, rejected("EncryptECB", err, sizeFields(src, key, dst)...)
	}

	rk := expandKey(key)
	defer rk.wipe()

	forEachBlock(src, func(off int) {
		encryptBlock(rk, dst[off:], src[off:])
	})
	n := len(src) - len(src)%BlockSize

	if pads {
		last := padBlock(src)
		encryptBlock(rk, dst[n:], last[:])
		zeroBytes(last[:])
		n += BlockSize
	}
	return n, nil
}

// DecryptECB decrypts src into dst in ECB mode and returns the number of
// plaintext bytes written.
//
// len(src) must be a positive multiple of 16. Without unpad, dst must hold
// len(src) bytes and the padding, if any, is left in place. With unpad,
// dst must hold at least len(src)-16 bytes up front and the PKCS#7
// padding is checked and stripped; a bad pad returns ErrInvalidKey.
//
// On ErrInvalidKey or a late ErrInvalidBufferSize, every block before the
// last has already been written to dst, and n reports how many bytes that
// is.
func DecryptECB(dst, src, key []byte, unpad bool) (int, error) {
	if err := checkDecrypt(len(src), len(key), len(dst), unpad); err != nil {
		return 0, rejected("DecryptECB", err, sizeFields(src, key, dst)...)
	}

	rk := expandKey(key)
	defer rk.wipe()

	lastOff := len(src) - BlockSize
	forEachBlock(src[:lastOff], func(off int) {
		decryptBlock(rk, dst[off:], src[off:])
	})

	var last state
	decryptBlock(rk, last[:], src[lastOff:])
	return writeLast("DecryptECB", dst, lastOff, &last, unpad)
}

// writeLast copies the decrypted final block to dst at off, stripping and
// verifying PKCS#7 padding when unpad is set.
func writeLast(op string, dst []byte, off int, last *state, unpad bool) (int, error) {
	defer zeroBytes(last[:])

	if !unpad {
		copy(dst[off:], last[:])
		return off + BlockSize, nil
	}

	p := int(last[BlockSize-1])
	if !checkPadding(p, last) {
		return off, rejected(op, errors.Wrap(ErrInvalidKey, "padding check failed"), zap.Int("dstLen", len(dst)))
	}
	keep := BlockSize - p
	if len(dst) < off+keep {
		err := errors.Wrapf(ErrInvalidBufferSize, "need %d bytes, have %d", off+keep, len(dst))
		return off, rejected(op, err, zap.Int("dstLen", len(dst)))
	}
	copy(dst[off:], last[:keep])
	return off + keep, nil
}

// sizeFields describes a call's buffer lengths for logging.
func sizeFields(src, key, dst []byte) []zap.Field {
	return []zap.Field{
		zap.Int("dataLen", len(src)),
		zap.Int("keyLen", len(key)),
		zap.Int("dstLen", len(dst)),
	}
}
