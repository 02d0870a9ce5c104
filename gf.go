package aesmodes

// doubleGF multiplies b by x (2) in GF(2^8) modulo x^8+x^4+x^3+x+1.
func doubleGF(b byte) byte {
	d := b << 1
	if b&0x80 != 0 {
		d ^= 0x1b
	}
	return d
}

// mulGF multiplies b by m in GF(2^8) using shift-and-add.
func mulGF(b, m byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if (m>>i)&0x01 != 0 {
			p ^= b
		}
		b = doubleGF(b)
	}
	return p
}
