package aesmodes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIncrCounter(t *testing.T) {
	cases := []struct{ in, out string }{
		{"00000000000000000000000000000000", "00000000000000000000000000000001"},
		{"000000000000000000000000000000ff", "00000000000000000000000000000100"},
		{"0000000000000000ffffffffffffffff", "00000000000000010000000000000000"},
		{"ffffffffffffffffffffffffffffffff", "00000000000000000000000000000000"},
	}
	for _, c := range cases {
		var ctr state
		copy(ctr[:], hexDecode(c.in))
		incrCounter(&ctr)
		require.Equal(t, c.out, hexEncode(ctr[:]))
	}
}

func TestPadBlock(t *testing.T) {
	b := padBlock([]byte("12"))
	require.Equal(t, []byte{'1', '2'}, b[:2])
	for _, v := range b[2:] {
		require.Equal(t, byte(14), v)
	}

	// only the bytes past the last full block are used
	b = padBlock([]byte("1234567890ABCDEFxyz"))
	require.Equal(t, []byte("xyz"), b[:3])
	require.Equal(t, byte(13), b[BlockSize-1])

	b = padBlock(make([]byte, BlockSize))
	for _, v := range b {
		require.Equal(t, byte(BlockSize), v)
	}
}

func TestXorBytesInPlace(t *testing.T) {
	a := []byte{0x01, 0x02, 0x03}
	b := []byte{0x04, 0x05, 0x06}
	dst := make([]byte, 3)
	xorBytesInPlace(dst, a, b)
	require.Equal(t, []byte{0x05, 0x07, 0x05}, dst)

	require.Panics(t, func() { xorBytesInPlace(dst, a, b[:2]) })
	require.Panics(t, func() { xorBytesInPlace(make([]byte, 4), a, b) }, "dst longer than inputs")
}

func TestForEachBlock(t *testing.T) {
	var offs []int
	forEachBlock(make([]byte, 3*BlockSize+5), func(off int) {
		offs = append(offs, off)
	})
	require.Equal(t, []int{0, 16, 32}, offs)

	offs = nil
	forEachBlock(make([]byte, BlockSize-1), func(off int) {
		offs = append(offs, off)
	})
	require.Empty(t, offs)
}
