package aesmodes

// EncryptCBC encrypts src into dst in CBC mode and returns the number of
// bytes written.
//
// iv must be 16 bytes, or nil to chain from an all-zero block. Size rules
// for src, dst and pads are those of EncryptECB. Input shorter than one
// block becomes a single padded block. dst and src may overlap entirely
// or not at all.
func EncryptCBC(dst, src, key, iv []byte, pads bool) (int, error) {
	err := checkEncrypt(len(src), len(key), len(dst), pads)
	if err == nil {
		err = checkIV(iv)
	}
	if err != nil {
		return 0, rejected("EncryptCBC", err, sizeFields(src, key, dst)...)
	}

	rk := expandKey(key)
	defer rk.wipe()

	var prev, s state
	copy(prev[:], iv)

	forEachBlock(src, func(off int) {
		xorBytesInPlace(s[:], src[off:off+BlockSize], prev[:])
		encryptBlock(rk, dst[off:], s[:])
		copy(prev[:], dst[off:off+BlockSize])
	})
	n := len(src) - len(src)%BlockSize

	if pads {
		s = padBlock(src)
		xorBytesInPlace(s[:], s[:], prev[:])
		encryptBlock(rk, dst[n:], s[:])
		n += BlockSize
	}
	zeroBytes(s[:])
	return n, nil
}

// DecryptCBC decrypts src into dst in CBC mode and returns the number of
// plaintext bytes written.
//
// iv must be 16 bytes, or nil for an all-zero chaining block. The first
// block is always XORed with the IV, single-block input included. Size
// and padding rules, and the partial-write caveat on failure, are those of
// DecryptECB. dst and src may overlap entirely or not at all.
func DecryptCBC(dst, src, key, iv []byte, unpad bool) (int, error) {
	err := checkDecrypt(len(src), len(key), len(dst), unpad)
	if err == nil {
		err = checkIV(iv)
	}
	if err != nil {
		return 0, rejected("DecryptCBC", err, sizeFields(src, key, dst)...)
	}

	rk := expandKey(key)
	defer rk.wipe()

	var prev, cur state
	copy(prev[:], iv)

	lastOff := len(src) - BlockSize
	forEachBlock(src[:lastOff], func(off int) {
		copy(cur[:], src[off:off+BlockSize])
		out := dst[off : off+BlockSize]
		decryptBlock(rk, out, cur[:])
		xorBytesInPlace(out, out, prev[:])
		prev = cur
	})

	var last state
	decryptBlock(rk, last[:], src[lastOff:])
	xorBytesInPlace(last[:], last[:], prev[:])
	return writeLast("DecryptCBC", dst, lastOff, &last, unpad)
}
