package aesmodes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func rowMajor(rows [4][4]byte) state {
	var s state
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s.set(r, c, rows[r][c])
		}
	}
	return s
}

func TestStateLayout(t *testing.T) {
	var s state
	for i := range s {
		s[i] = byte(i)
	}
	// input byte i lands in row i%4, column i/4
	require.Equal(t, byte(0x01), s.at(1, 0))
	require.Equal(t, byte(0x04), s.at(0, 1))
	require.Equal(t, byte(0x0e), s.at(2, 3))
}

func TestShiftRows(t *testing.T) {
	s := rowMajor([4][4]byte{
		{0x00, 0x01, 0x02, 0x03},
		{0x10, 0x11, 0x12, 0x13},
		{0x20, 0x21, 0x22, 0x23},
		{0x30, 0x31, 0x32, 0x33},
	})
	want := rowMajor([4][4]byte{
		{0x00, 0x01, 0x02, 0x03},
		{0x11, 0x12, 0x13, 0x10},
		{0x22, 0x23, 0x20, 0x21},
		{0x33, 0x30, 0x31, 0x32},
	})

	orig := s
	shiftRows(&s)
	require.Equal(t, want, s)
	invShiftRows(&s)
	require.Equal(t, orig, s)
}

func TestMixColumns(t *testing.T) {
	// Well-known column test values
	cases := []struct{ in, out [4]byte }{
		{[4]byte{0xdb, 0x13, 0x53, 0x45}, [4]byte{0x8e, 0x4d, 0xa1, 0xbc}},
		{[4]byte{0xf2, 0x0a, 0x22, 0x5c}, [4]byte{0x9f, 0xdc, 0x58, 0x9d}},
		{[4]byte{0x01, 0x01, 0x01, 0x01}, [4]byte{0x01, 0x01, 0x01, 0x01}},
		{[4]byte{0xd4, 0xd4, 0xd4, 0xd5}, [4]byte{0xd5, 0xd5, 0xd7, 0xd6}},
	}

	var s state
	for c, tc := range cases {
		copy(s[4*c:], tc.in[:])
	}
	orig := s

	mixColumns(&s)
	for c, tc := range cases {
		require.Equal(t, tc.out[:], s[4*c:4*c+4], "column %d", c)
	}
	invMixColumns(&s)
	require.Equal(t, orig, s)
}

func TestSubBytesInverse(t *testing.T) {
	var s state
	for i := range s {
		s[i] = byte(i * 17)
	}
	orig := s
	subBytes(&s)
	require.NotEqual(t, orig, s)
	invSubBytes(&s)
	require.Equal(t, orig, s)
}

func TestAddRoundKeyInvolution(t *testing.T) {
	var s, k state
	for i := range s {
		s[i] = byte(i)
		k[i] = byte(0xa5 ^ i)
	}
	orig := s
	addRoundKey(&s, &k)
	addRoundKey(&s, &k)
	require.Equal(t, orig, s)
}

func TestBlockShortBufferPanics(t *testing.T) {
	rk := expandKey(make([]byte, KeySize128))
	require.Panics(t, func() { encryptBlock(rk, make([]byte, 16), make([]byte, 15)) })
	require.Panics(t, func() { decryptBlock(rk, make([]byte, 15), make([]byte, 16)) })
}
