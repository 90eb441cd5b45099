package typeid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDsCarryPrefix(t *testing.T) {
	tests := []struct {
		prefix string
		gen    func() string
	}{
		{PrefixNode, NewNodeID},
		{PrefixOp, NewOpID},
		{PrefixSession, NewSessionID},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			id := tt.gen()
			assert.True(t, strings.HasPrefix(id, tt.prefix+"_"), id)
			require.NoError(t, Validate(id, tt.prefix))
		})
	}
}

func TestNewIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, NewNodeID(), NewNodeID())
}

func TestValidateRejects(t *testing.T) {
	assert.Error(t, Validate("not-a-typeid", PrefixNode))
	assert.Error(t, Validate(NewOpID(), PrefixNode))
}
