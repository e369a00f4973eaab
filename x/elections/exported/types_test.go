package exported

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVoteCommitment_Encoding(t *testing.T) {
	salt := []byte("0123456789abcdef0123456789abcdef")

	expected := sha256.Sum256(append([]byte("yes"), salt...))
	assert.Equal(t, expected[:], VoteCommitment("yes", salt))
}

func TestVoteCommitment_EmptySalt(t *testing.T) {
	expected := sha256.Sum256([]byte("yes"))
	assert.Equal(t, expected[:], VoteCommitment("yes", nil))
}
