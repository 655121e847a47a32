package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProvider_Next_FromBuiltinVocabulary(t *testing.T) {
	t.Parallel()

	p := NewProvider()
	assert.Greater(t, p.Count(), 0)

	vocabulary := make(map[string]bool, len(western))
	for _, w := range western {
		vocabulary[w] = true
	}

	for i := 0; i < 100; i++ {
		assert.True(t, vocabulary[p.Next()])
	}
}

func TestProvider_Next_CustomWords(t *testing.T) {
	t.Parallel()

	p := NewProvider("draw")
	for i := 0; i < 10; i++ {
		assert.Equal(t, "draw", p.Next())
	}
}

func TestProvider_Next_CoversVocabulary(t *testing.T) {
	t.Parallel()

	// With a tiny vocabulary, uniform sampling should hit every word quickly
	p := NewProvider("gold", "mine", "duel")
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		seen[p.Next()] = true
	}
	assert.Len(t, seen, 3)
}
