package aesmodes

// xorBytesInPlace XORs a and b into dst.
func xorBytesInPlace(dst, a, b []byte) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("xorBytesInPlace: all slices must have equal length")
	}
	for i := range a {
		dst[i] = a[i] ^ b[i]
	}
}

// zeroBytes clears a byte slice.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// padBlock builds the PKCS#7 final block from the bytes of data past its
// last full block. The pad value is 16 minus that count, so aligned input
// yields a full block of 16s.
func padBlock(data []byte) state {
	rem := len(data) % BlockSize
	padV := byte(BlockSize - rem)

	var b state
	for i := range b {
		b[i] = padV
	}
	copy(b[:], data[len(data)-rem:])
	return b
}

// forEachBlock calls fn with the offset of every full block in data.
// Trailing partial bytes are skipped.
func forEachBlock(data []byte, fn func(off int)) {
	n := len(data) / BlockSize
	for i := 0; i < n; i++ {
		fn(i * BlockSize)
	}
}

// incrCounter adds one to a 128-bit big-endian counter, wrapping to zero.
func incrCounter(ctr *state) {
	for i := BlockSize - 1; i >= 0; i-- {
		ctr[i]++
		if ctr[i] != 0 {
			return
		}
	}
}
