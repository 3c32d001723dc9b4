package sm2

import (
	"encoding/binary"

	"github.com/tjfoc/gmsm/sm3"

	"github.com/kochabx/gm/log"
)

// kdf expands the seed chunks into length bytes of keystream by hashing
// seed || counter for a 32-bit big-endian counter starting at 1 and
// truncating the concatenated digests. Zero length yields an empty
// keystream.
//
// An all-zero keystream is not a fluke: it means the point multiplication
// feeding the seed collapsed, so it fails with ErrDegenerateKey instead of
// being returned.
func kdf(length int, seed ...[]byte) ([]byte, error) {
	if length <= 0 {
		return nil, nil
	}

	h := sm3.New()
	out := make([]byte, 0, ((length+DigestSize-1)/DigestSize)*DigestSize)
	var counter [4]byte
	for ct := uint32(1); len(out) < length; ct++ {
		h.Reset()
		for _, s := range seed {
			h.Write(s)
		}
		binary.BigEndian.PutUint32(counter[:], ct)
		h.Write(counter[:])
		out = append(out, h.Sum(nil)...)
	}
	out = out[:length]

	var acc byte
	for _, b := range out {
		acc |= b
	}
	if acc == 0 {
		log.Warn().Int("length", length).Msg("sm2: KDF produced an all-zero keystream")
		return nil, ErrDegenerateKey
	}
	return out, nil
}
