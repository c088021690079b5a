// Copyright (c) 2026 Newsroom. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/newsroomhq/newsroom/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already_a_slug", "football", "football"},
		{"spaces_become_hyphens", "local news", "local-news"},
		{"lowercased", "Coding", "coding"},
		{"accents_stripped", "Café Société", "cafe-societe"},
		{"punctuation_collapsed", "what's -- new?!", "what-s-new"},
		{"leading_trailing_trimmed", "  cooking  ", "cooking"},
		{"digits_kept", "top 10 reads", "top-10-reads"},
		{"nothing_left", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
