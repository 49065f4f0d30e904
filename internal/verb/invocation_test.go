package verb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInvocation(t *testing.T) {
	tests := []struct {
		raw  string
		want Invocation
	}{
		{"mv", Invocation{Name: "mv"}},
		{"rn newname", Invocation{Name: "rn", Args: "newname"}},
		{"  cp   ../backup/file.txt  ", Invocation{Name: "cp", Args: "../backup/file.txt"}},
		{":quit", Invocation{Name: "quit"}},
		{": focus", Invocation{Name: "focus"}},
		{"echo a  b", Invocation{Name: "echo", Args: "a  b"}},
		{"mv\tdest", Invocation{Name: "mv", Args: "dest"}},
		{"", Invocation{}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseInvocation(tt.raw))
		})
	}
}

func TestInvocationStrings(t *testing.T) {
	inv := ParseInvocation("mkdir {subpath}")
	assert.Equal(t, "mkdir {subpath}", inv.String())
	assert.Equal(t, "md {subpath}", inv.StringForName("md"))
	assert.Equal(t, "quit", ParseInvocation("quit").String())

	assert.True(t, ParseInvocation("   ").IsEmpty())
	assert.False(t, inv.IsEmpty())
}
