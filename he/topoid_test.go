package he_test

import (
	"testing"

	"github.com/flywave/halfedge/he"
	"github.com/stretchr/testify/assert"
)

func TestTopoIDEquality(t *testing.T) {
	a := he.NewTopoID(3)
	b := he.NewTopoID(3)
	c := he.NewTopoID(4)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, a.UID(), b.UID())
	assert.NotEqual(t, a.UID(), c.UID())
}

func TestTopoIDAppendTracksProvenance(t *testing.T) {
	parent := he.NewTopoID(1)
	child := parent.Append(2)

	assert.Equal(t, []uint32{1, 2}, child.Path())
	assert.False(t, parent.Equal(child))
}

func TestTopoIDPop(t *testing.T) {
	parent := he.NewTopoID(1)
	child := parent.Append(2)

	assert.True(t, child.Pop().Equal(parent))
	assert.False(t, parent.Pop().IsValid())
}

func TestTopoIDOffset(t *testing.T) {
	id := he.NewTopoID(5)
	shifted := id.Offset(10)

	assert.Equal(t, []uint32{15}, shifted.Path())
	assert.False(t, he.InvalidTopoID().Offset(10).IsValid())
}

func TestTopoIDReplace(t *testing.T) {
	id := he.NewTopoID(1).Append(2).Append(1)
	replaced := id.Replace(1, 99)

	assert.Equal(t, []uint32{99, 2, 99}, replaced.Path())
}

func TestTopoIDInvalidSentinel(t *testing.T) {
	inv := he.InvalidTopoID()

	assert.False(t, inv.IsValid())
	assert.True(t, inv.Equal(inv.MakeInvalid()))
	assert.True(t, he.NewTopoID(0).IsValid())
}

func TestTopoIDIsEmpty(t *testing.T) {
	var zero he.TopoID
	assert.True(t, zero.IsEmpty())
	assert.False(t, he.NewTopoID(0).IsEmpty())
}
