package ul_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ugparu/mxfheader/ul"
)

func TestClassifyStructuralSetMasksRegistryVersionByte(t *testing.T) {
	t.Parallel()

	key, ok := ul.KeyForClass(ul.SetClassPreface)
	require.True(t, ok)

	mutated := key
	mutated[7] = 0x09 // registry version byte, must be don't-care

	require.Equal(t, ul.SetClassPreface, ul.ClassifyStructuralSet(mutated))
}

func TestClassifyStructuralSetRejectsUnknownKey(t *testing.T) {
	t.Parallel()

	var foreign ul.UL
	require.Equal(t, ul.SetClassUnknown, ul.ClassifyStructuralSet(foreign))
}

func TestIsHeaderPartitionPackKeyIgnoresStatusByte(t *testing.T) {
	t.Parallel()

	key := ul.PartitionPackKey
	key[14] = 0x01 // open incomplete instead of closed complete
	require.True(t, ul.IsHeaderPartitionPackKey(key))

	key[13] = 0x03 // body partition kind
	require.False(t, ul.IsHeaderPartitionPackKey(key))
}
