package slug_test

import (
	"regexp"
	"strings"
	"testing"

	"business-platform-backend/internal/slug"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple name",
			input:    "Acme Printing",
			expected: "acme-printing",
		},
		{
			name:     "accents and punctuation",
			input:    "Ștefan's Print & Co!!",
			expected: "stefans-print-co",
		},
		{
			name:     "typographic apostrophe",
			input:    "Kwame’s Pharmacy",
			expected: "kwames-pharmacy",
		},
		{
			name:     "surrounding whitespace",
			input:    "  Corner Shop  ",
			expected: "corner-shop",
		},
		{
			name:     "runs of separators collapse",
			input:    "A --- B___C",
			expected: "a-b-c",
		},
		{
			name:     "mixed case and digits",
			input:    "Shop 24/7",
			expected: "shop-24-7",
		},
		{
			name:     "leading and trailing separators trimmed",
			input:    "--hello world--",
			expected: "hello-world",
		},
		{
			name:     "accented french name",
			input:    "Café Résumé",
			expected: "cafe-resume",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.Make(tt.input))
		})
	}
}

func TestMakeFallback(t *testing.T) {
	fallback := regexp.MustCompile(`^tenant-\d+$`)

	for _, input := range []string{"", "   ", "!!!", "---", "№§¶"} {
		assert.Regexp(t, fallback, slug.Make(input), "input %q", input)
	}
}

func TestMakeTruncation(t *testing.T) {
	long := strings.Repeat("a", 400)
	got := slug.Make(long)

	assert.Len(t, got, slug.MaxLength)
	assert.False(t, strings.HasSuffix(got, "-"))
}

func TestMakeTruncationNoTrailingHyphen(t *testing.T) {
	// Build a name whose 150th byte lands on a separator.
	long := strings.Repeat("ab ", 100)
	got := slug.Make(long)

	assert.LessOrEqual(t, len(got), slug.MaxLength)
	assert.False(t, strings.HasSuffix(got, "-"))
	assert.False(t, strings.HasPrefix(got, "-"))
}

func TestWithSuffix(t *testing.T) {
	assert.Equal(t, "acme-1", slug.WithSuffix("acme", 1))
	assert.Equal(t, "acme-42", slug.WithSuffix("acme", 42))
}
