package utils // package utils provides helper functions for hashing and token creation

import "crypto/rand"

// tokenAlphabet is the 52-symbol ASCII letter set session tokens are
// drawn from. Alphabet and length (16) are kept for compatibility with
// existing clients of the service; the randomness source is crypto/rand
// rather than a seeded PRNG, so tokens are not guessable even though the
// format is unchanged.
const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// SessionTokenLength is the fixed length of issued session tokens.
const SessionTokenLength = 16

// NewSessionToken returns a 16-character opaque session token drawn
// uniformly from the ASCII letters. Rejection sampling keeps the
// distribution uniform across the 52-symbol alphabet.
func NewSessionToken() (string, error) {
	out := make([]byte, 0, SessionTokenLength)
	buf := make([]byte, SessionTokenLength)
	for len(out) < SessionTokenLength {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			// 208 is the largest multiple of 52 below 256; bytes at or
			// above it would bias the low letters and are re-drawn.
			if b >= 208 {
				continue
			}
			out = append(out, tokenAlphabet[int(b)%len(tokenAlphabet)])
			if len(out) == SessionTokenLength {
				break
			}
		}
	}
	return string(out), nil
}
