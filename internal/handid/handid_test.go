package handid

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/nawan/internal/randutil"
)

func TestGenerate(t *testing.T) {
	id := Generate()

	assert.Len(t, id, 26)
	require.NoError(t, Validate(id))
	assert.LessOrEqual(t, id[0], byte('7'))
}

func TestGenerateUnique(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := Generate()
		assert.False(t, ids[id], "duplicate ID generated: %s", id)
		ids[id] = true
	}
}

func TestGenerateTimeSorted(t *testing.T) {
	var ids []string
	for i := 0; i < 10; i++ {
		ids = append(ids, Generate())
		time.Sleep(time.Millisecond)
	}

	for i := 1; i < len(ids); i++ {
		assert.LessOrEqual(t, strings.Compare(ids[i-1], ids[i]), 0,
			"IDs must sort by generation time: %s then %s", ids[i-1], ids[i])
	}
}

func TestGenerateWithSeededSource(t *testing.T) {
	// Same seed, same millisecond: only the random tail matters for the
	// comparison, so freeze time by comparing suffixes.
	first := NewGenerator(randutil.New(7)).Generate()
	second := NewGenerator(randutil.New(7)).Generate()

	require.NoError(t, Validate(first))
	require.NoError(t, Validate(second))

	// The last 12 characters are pure random-tail bits.
	assert.Equal(t, first[len(first)-12:], second[len(second)-12:])
}

func TestValidateRejectsBadIDs(t *testing.T) {
	assert.Error(t, Validate("short"))
	assert.Error(t, Validate(strings.Repeat("z", 26)), "first character out of range")
	assert.Error(t, Validate("0"+strings.Repeat("u", 25)), "u is not in the alphabet")
	assert.NoError(t, Validate("0"+strings.Repeat("0", 25)))
}
