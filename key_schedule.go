package aesmodes

// Key sizes in bytes.
const (
	KeySize128 = 16
	KeySize192 = 24
	KeySize256 = 32
)

// nb is the number of 32-bit columns in the state.
const nb = 4

// word is one column of key material, first byte in row 0.
type word [4]byte

// roundKeys is an expanded key schedule: Nr+1 round keys.
type roundKeys []state

// validKeySize reports whether n is an AES key length.
func validKeySize(n int) bool {
	return n == KeySize128 || n == KeySize192 || n == KeySize256
}

// roundCount returns Nr for a validated key length.
func roundCount(keyLen int) int {
	switch keyLen {
	case KeySize128:
		return 10
	case KeySize192:
		return 12
	case KeySize256:
		return 14
	}
	panic("roundCount: invalid key size")
}

// rotWord rotates the word one byte so that row 0 moves to row 3.
func rotWord(w word) word {
	return word{w[1], w[2], w[3], w[0]}
}

// subWord applies the S-box to each byte of w.
func subWord(w word) word {
	return word{sbox[w[0]], sbox[w[1]], sbox[w[2]], sbox[w[3]]}
}

// expandKey runs the FIPS-197 key expansion. The caller has already
// checked the key length.
func expandKey(key []byte) roundKeys {
	nk := len(key) / 4
	nr := roundCount(len(key))
	total := nb * (nr + 1)

	w := make([]word, total)
	for i := 0; i < nk; i++ {
		copy(w[i][:], key[4*i:4*i+4])
	}
	for i := nk; i < total; i++ {
		t := w[i-1]
		if i%nk == 0 {
			t = subWord(rotWord(t))
			t[0] ^= rcon[i/nk]
		} else if nk > 6 && i%nk == 4 {
			t = subWord(t)
		}
		for j := 0; j < 4; j++ {
			w[i][j] = t[j] ^ w[i-nk][j]
		}
	}

	rk := make(roundKeys, nr+1)
	for i := range w {
		copy(rk[i/nb][4*(i%nb):], w[i][:])
	}
	zeroWords(w)
	return rk
}

// rounds returns Nr for the schedule.
func (rk roundKeys) rounds() int {
	return len(rk) - 1
}

// wipe clears the schedule once a call is done with it.
func (rk roundKeys) wipe() {
	for i := range rk {
		zeroBytes(rk[i][:])
	}
}

// zeroWords clears expanded key words.
func zeroWords(w []word) {
	for i := range w {
		w[i] = word{}
	}
}
