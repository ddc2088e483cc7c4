package crypto

const (
	// KeySize is the size of an AES-256-GCM-SIV key in bytes.
	KeySize = 32
	// NonceSize is the size of an AES-GCM-SIV nonce in bytes.
	NonceSize = 12
	// TagSize is the size of an AES-GCM-SIV authentication tag in bytes.
	TagSize = 16

	// MinSaltSize is the shortest salt accepted by Argon2.
	MinSaltSize = 8

	// Argon2Version10 is the legacy Argon2 version (0x10). Blocks are
	// overwritten on every pass instead of XOR-ed in after the first one.
	Argon2Version10 = 0x10
	// Argon2Version13 is the current Argon2 version (0x13).
	Argon2Version13 = 0x13
)

// KDFParams describes an Argon2id parameter set.
type KDFParams struct {
	// Version is the Argon2 version byte (0x10 or 0x13).
	Version uint32
	// Memory is the memory cost in KiB (1 KiB = one Argon2 block).
	Memory uint32
	// Iterations is the number of passes over memory.
	Iterations uint32
	// Parallelism is the number of lanes.
	Parallelism uint8
	// KeyLen is the output length in bytes.
	KeyLen uint32
}

// KDFParamsV1 is the parameter set every derived encryption key depends on.
// Changing any field changes every key and makes existing ciphertexts
// undecryptable.
var KDFParamsV1 = KDFParams{
	Version:     Argon2Version10,
	Memory:      64,
	Iterations:  4,
	Parallelism: 1,
	KeyLen:      KeySize,
}

// Ciphersuite is the canonical string representation of the algorithm suite.
const Ciphersuite = "ARGON2ID-0x10-m64-t4-p1:AES-256-GCM-SIV"
