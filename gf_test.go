package aesmodes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDoubleGF(t *testing.T) {
	// FIPS-197 section 4.2.1: repeated xtime of {57}
	chain := []byte{0x57, 0xae, 0x47, 0x8e, 0x07}
	for i := 0; i+1 < len(chain); i++ {
		require.Equal(t, chain[i+1], doubleGF(chain[i]), "xtime(%#02x)", chain[i])
	}
	require.Equal(t, byte(0x1b), doubleGF(0x80))
	require.Equal(t, byte(0x00), doubleGF(0x00))
}

func TestMulGF(t *testing.T) {
	cases := []struct {
		b, m, want byte
	}{
		{0x57, 0x83, 0xc1},
		{0x57, 0x13, 0xfe},
		{0x57, 0x01, 0x57},
		{0x57, 0x02, 0xae},
		{0x57, 0x00, 0x00},
		{0x00, 0x0e, 0x00},
	}
	for _, c := range cases {
		require.Equal(t, c.want, mulGF(c.b, c.m), "%#02x * %#02x", c.b, c.m)
	}

	for b := 0; b < 256; b++ {
		require.Equal(t, mulGF(byte(b), 0x03), doubleGF(byte(b))^byte(b))
		require.Equal(t, mulGF(byte(b), 0x0b), mulGF(0x0b, byte(b)))
	}
}

func TestSboxIsPermutation(t *testing.T) {
	for i := 0; i < 256; i++ {
		require.Equal(t, byte(i), invSbox[sbox[i]])
	}
	require.Equal(t, byte(0x63), sbox[0x00])
	require.Equal(t, byte(0xed), sbox[0x53])
}
