package aesmodes

// The round transforms below operate on a column-major state: byte 4*c+r
// holds row r of column c, which is also the order bytes arrive in.

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// state is the 4x4 byte matrix processed by each round.
type state [BlockSize]byte

// at returns the byte at row r, column c.
func (s *state) at(r, c int) byte {
	return s[4*c+r]
}

// set stores v at row r, column c.
func (s *state) set(r, c int, v byte) {
	s[4*c+r] = v
}

// addRoundKey XORs the round key into the state.
func addRoundKey(s *state, k *state) {
	for i := range s {
		s[i] ^= k[i]
	}
}

// subBytes substitutes every byte through the S-box.
func subBytes(s *state) {
	for i := range s {
		s[i] = sbox[s[i]]
	}
}

// invSubBytes substitutes every byte through the inverse S-box.
func invSubBytes(s *state) {
	for i := range s {
		s[i] = invSbox[s[i]]
	}
}

// shiftRows rotates row r left by r columns.
func shiftRows(s *state) {
	for r := 1; r < 4; r++ {
		var row [4]byte
		for c := 0; c < 4; c++ {
			row[c] = s.at(r, (c+r)%4)
		}
		for c := 0; c < 4; c++ {
			s.set(r, c, row[c])
		}
	}
}

// invShiftRows rotates row r right by r columns.
func invShiftRows(s *state) {
	for r := 1; r < 4; r++ {
		var row [4]byte
		for c := 0; c < 4; c++ {
			row[(c+r)%4] = s.at(r, c)
		}
		for c := 0; c < 4; c++ {
			s.set(r, c, row[c])
		}
	}
}

// mixColumns multiplies each column by the circulant {02,03,01,01}.
func mixColumns(s *state) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s.at(0, c), s.at(1, c), s.at(2, c), s.at(3, c)
		all := a0 ^ a1 ^ a2 ^ a3
		// 2a ^ 3b ^ c ^ d == a ^ all ^ 2(a^b)
		s.set(0, c, a0^all^doubleGF(a0^a1))
		s.set(1, c, a1^all^doubleGF(a1^a2))
		s.set(2, c, a2^all^doubleGF(a2^a3))
		s.set(3, c, a3^all^doubleGF(a3^a0))
	}
}

// invMixColumns multiplies each column by the circulant {0e,0b,0d,09}.
func invMixColumns(s *state) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s.at(0, c), s.at(1, c), s.at(2, c), s.at(3, c)
		s.set(0, c, mulGF(a0, 0x0e)^mulGF(a1, 0x0b)^mulGF(a2, 0x0d)^mulGF(a3, 0x09))
		s.set(1, c, mulGF(a0, 0x09)^mulGF(a1, 0x0e)^mulGF(a2, 0x0b)^mulGF(a3, 0x0d))
		s.set(2, c, mulGF(a0, 0x0d)^mulGF(a1, 0x09)^mulGF(a2, 0x0e)^mulGF(a3, 0x0b))
		s.set(3, c, mulGF(a0, 0x0b)^mulGF(a1, 0x0d)^mulGF(a2, 0x09)^mulGF(a3, 0x0e))
	}
}

// encryptBlock runs the forward cipher over one block. dst and src may
// overlap entirely.
func encryptBlock(rk roundKeys, dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("encryptBlock: input and output must be at least 16 bytes")
	}

	var s state
	copy(s[:], src)
	nr := rk.rounds()

	addRoundKey(&s, &rk[0])
	for round := 1; round < nr; round++ {
		subBytes(&s)
		shiftRows(&s)
		mixColumns(&s)
		addRoundKey(&s, &rk[round])
	}
	subBytes(&s)
	shiftRows(&s)
	addRoundKey(&s, &rk[nr])

	copy(dst, s[:])
}

// decryptBlock runs the inverse cipher over one block. dst and src may
// overlap entirely.
func decryptBlock(rk roundKeys, dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("decryptBlock: input and output must be at least 16 bytes")
	}

	var s state
	copy(s[:], src)
	nr := rk.rounds()

	addRoundKey(&s, &rk[nr])
	invShiftRows(&s)
	invSubBytes(&s)
	for round := nr - 1; round > 0; round-- {
		addRoundKey(&s, &rk[round])
		invMixColumns(&s)
		invShiftRows(&s)
		invSubBytes(&s)
	}
	addRoundKey(&s, &rk[0])

	copy(dst, s[:])
}
