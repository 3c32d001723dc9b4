package sm2

// Order selects the ciphertext component ordering on the wire.
//
// The 2016 revision of the standard places the integrity digest before
// the masked payload (C1 || C3 || C2); older deployments emit the legacy
// C1 || C2 || C3. OrderAuto, the zero value, encrypts with the
// recommended ordering and tries both on decrypt.
type Order int8

const (
	// OrderAuto encrypts as C1C3C2 and auto-detects on decrypt
	OrderAuto Order = iota

	// OrderC1C3C2 is the ordering recommended by GB/T 32918.4-2016
	OrderC1C3C2

	// OrderC1C2C3 is the legacy ordering kept for interoperability
	OrderC1C2C3
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case OrderAuto:
		return "auto"
	case OrderC1C3C2:
		return "C1C3C2"
	case OrderC1C2C3:
		return "C1C2C3"
	default:
		return "unknown"
	}
}

// SignerOpts configures signing and verification. A nil pointer or the
// zero value selects raw r || s output, the standard default identity,
// and Z-value preprocessing.
//
// Signer and verifier must agree on UID and SkipZValue: a mismatch
// changes the digest under the signature, so verification fails by
// construction rather than erroring.
type SignerOpts struct {
	// DER frames the signature as an ASN.1 SEQUENCE instead of raw
	// r || s. On verify it requires DER input and disables raw parsing.
	DER bool

	// UID is the signer identity bound through the Z-value. Nil or empty
	// selects DefaultUID.
	UID []byte

	// SkipZValue hashes the message directly without identity binding,
	// for raw-digest interoperability with peers that do the same.
	SkipZValue bool
}

// resolveSignerOpts fills the defaults that a nil opts or a nil UID stand
// for. The caller's struct is never modified.
func resolveSignerOpts(opts *SignerOpts) *SignerOpts {
	out := &SignerOpts{}
	if opts != nil {
		*out = *opts
	}
	if len(out.UID) == 0 {
		out.UID = DefaultUID
	}
	return out
}
