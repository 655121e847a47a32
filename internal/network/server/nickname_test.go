package server

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNickname_FromWesternPools(t *testing.T) {
	t.Parallel()

	// Every generated name is an adjective from the pool followed by a noun
	for i := 0; i < 50; i++ {
		name := GenerateNickname()
		require.NotEmpty(t, name)

		matched := false
		for _, adj := range adjectives {
			if !strings.HasPrefix(name, adj) {
				continue
			}
			noun := strings.TrimPrefix(name, adj)
			for _, n := range nouns {
				if noun == n {
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
		assert.True(t, matched, "nickname %q not drawn from the pools", name)
	}
}
