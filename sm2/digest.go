package sm2

import "github.com/tjfoc/gmsm/sm3"

// digest hashes the concatenation of chunks with SM3. Every hashing step
// in the package (Z-value, message digest, C3, KDF blocks, confirmation
// tags) goes through this one oracle.
func digest(chunks ...[]byte) []byte {
	h := sm3.New()
	for _, c := range chunks {
		h.Write(c)
	}
	return h.Sum(nil)
}
