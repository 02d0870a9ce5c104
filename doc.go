// Package aesmodes is a portable AES implementation for 128, 192 and 256
// bit keys with ECB, CBC and CTR modes.
//
// The mode functions take caller-owned buffers: the length of dst is its
// capacity, every size is validated before dst is written, and the key is
// expanded afresh on every call and wiped before returning. No state is
// shared between calls, so they are safe for concurrent use.
//
// ECB and CBC optionally apply PKCS#7 padding. Decryption with unpadding
// reports ErrInvalidKey when the padding does not check out, which is how
// a wrong key or modified ciphertext usually shows up. A failed decrypt
// may already have written the blocks before the last one to dst.
//
// Errors are values of type Error wrapped with context; use errors.Is or
// Code to inspect them.
//
// This package performs plain table lookups and is not hardened against
// timing or cache side channels. It provides no authentication.
package aesmodes
