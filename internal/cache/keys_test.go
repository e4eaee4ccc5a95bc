package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name       string
		service    string
		objectType string
		identifier string
		params     []string
		expected   string
	}{
		{
			name:       "library quiz key",
			service:    "library",
			objectType: "quiz",
			identifier: "set-1",
			expected:   "quizshare:library:quiz:set-1",
		},
		{
			name:       "index key",
			service:    "library",
			objectType: "index",
			identifier: "quizzes",
			expected:   "quizshare:library:index:quizzes",
		},
		{
			name:       "key with params",
			service:    "library",
			objectType: "quiz",
			identifier: "set-1",
			params:     []string{"rev", "2"},
			expected:   "quizshare:library:quiz:set-1:rev_2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateCacheKey(tt.service, tt.objectType, tt.identifier, tt.params...)
			assert.Equal(t, tt.expected, got)
		})
	}
}
