package exported

import "crypto/sha256"

// HashLength is the length in bytes of voice hashes, vote commitments and salts
const HashLength = sha256.Size

// VoteCommitment returns the canonical commitment for an option label and salt:
// the sha256 digest of the raw label bytes concatenated with the raw salt bytes.
// Wallets must build commitments with this exact encoding for the reveal to verify.
func VoteCommitment(option string, salt []byte) []byte {
	payload := make([]byte, 0, len(option)+len(salt))
	payload = append(payload, option...)
	payload = append(payload, salt...)

	hash := sha256.Sum256(payload)
	return hash[:]
}
