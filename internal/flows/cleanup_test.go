package flows

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		language string
		want     string
	}{
		{"language fence", "```python\nprint(1)\n```", "python", "print(1)"},
		{"language fence case insensitive", "```python\nprint(1)\n```", "Python", "print(1)"},
		{"untagged fence", "```\nprint(1)\n```", "python", "print(1)"},
		{"other language fence", "```js\nconsole.log(1)\n```", "python", "console.log(1)"},
		{"unfenced", "  print(1)\n\n", "python", "print(1)"},
		{"fence inside prose", "Here:\n```go\nfmt.Println(1)\n```\nDone.", "go", "fmt.Println(1)"},
		{"language with regex chars", "```c++\nint x;\n```", "C++", "int x;"},
		{"multi line body", "```python\na = 1\nb = 2\n```", "python", "a = 1\nb = 2"},
		{"lone fence marker", "```", "python", "```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.raw, tt.language))
		})
	}
}
