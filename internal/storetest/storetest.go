// Package storetest provides a conformance suite run against every
// types.Store backend.
package storetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Factory returns a fresh, empty store. The suite closes it when the
// subtest ends.
type Factory func(t *testing.T) types.Store

// Run exercises the Store contract against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, s types.Store)
	}{
		{"empty store", testEmpty},
		{"count tracks adds", testCountTracksAdds},
		{"add assigns unique ids", testAddAssignsIDs},
		{"scenario ann lee", testScenario},
		{"edit replaces only target", testEditReplacesOnlyTarget},
		{"edit out of range leaves store unchanged", testEditOutOfRange},
		{"delete shifts later elements", testDeleteShifts},
		{"delete out of range leaves store unchanged", testDeleteOutOfRange},
		{"delete until empty", testDeleteUntilEmpty},
		{"invalid kind rejected", testInvalidKind},
		{"components returns a copy", testComponentsCopy},
		{"closed store", testClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t)
			t.Cleanup(func() { _ = s.Close() })
			tt.fn(t, s)
		})
	}
}

func listing(t *testing.T, s types.Store) []string {
	t.Helper()
	entries, err := s.ShowAll()
	require.NoError(t, err)
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.String()
	}
	return out
}

func components(t *testing.T, s types.Store) []types.Component {
	t.Helper()
	cs, err := s.Components()
	require.NoError(t, err)
	return cs
}

func testEmpty(t *testing.T, s types.Store) {
	assert.Equal(t, 0, s.Count())
	entries, err := s.ShowAll()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func testCountTracksAdds(t *testing.T, s types.Store) {
	for i := 1; i <= 7; i++ {
		var c types.Component
		if i%2 == 0 {
			c = types.NewPhone("555")
		} else {
			c = types.NewUser("a", "b", "555")
		}
		require.NoError(t, s.Add(c))
		assert.Equal(t, i, s.Count())
	}

	entries, err := s.ShowAll()
	require.NoError(t, err)
	require.Len(t, entries, 7)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Ordinal)
	}
}

func testAddAssignsIDs(t *testing.T, s types.Store) {
	c := types.NewPhone("1")
	c.ComponentID = "caller-supplied"
	require.NoError(t, s.Add(c))
	require.NoError(t, s.Add(types.NewPhone("2")))

	cs := components(t, s)
	require.Len(t, cs, 2)
	assert.NotEqual(t, "caller-supplied", cs[0].ComponentID)
	assert.NotEmpty(t, cs[0].ComponentID)
	assert.NotEqual(t, cs[0].ComponentID, cs[1].ComponentID)
}

func testScenario(t *testing.T, s types.Store) {
	require.NoError(t, s.Add(types.NewUser("Ann", "Lee", "555-1")))
	require.NoError(t, s.Add(types.NewPhone("555-2")))
	assert.Equal(t, 2, s.Count())
	assert.Equal(t, []string{
		"1: Ann Lee, Phone Number: 555-1",
		"2: Phone Number: 555-2",
	}, listing(t, s))

	require.NoError(t, s.EditByIndex(0, types.NewPhone("999")))
	assert.Equal(t, []string{
		"1: Phone Number: 999",
		"2: Phone Number: 555-2",
	}, listing(t, s))

	assert.ErrorIs(t, s.DeleteByIndex(5), types.ErrInvalidIndex)
	assert.Equal(t, 2, s.Count())
	assert.Equal(t, []string{
		"1: Phone Number: 999",
		"2: Phone Number: 555-2",
	}, listing(t, s))
}

func testEditReplacesOnlyTarget(t *testing.T, s types.Store) {
	require.NoError(t, s.Add(types.NewUser("Ann", "Lee", "1")))
	require.NoError(t, s.Add(types.NewUser("Bob", "Ray", "2")))
	require.NoError(t, s.Add(types.NewPhone("3")))
	before := components(t, s)

	require.NoError(t, s.EditByIndex(1, types.NewPhone("20")))
	after := components(t, s)

	require.Len(t, after, 3)
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])
	assert.NotEqual(t, before[1].ComponentID, after[1].ComponentID)
	assert.Equal(t, types.KindPhone, after[1].Kind)
	assert.Equal(t, "20", after[1].PhoneNumber)
	// Wholesale replacement: no name fields survive from the old user.
	assert.Empty(t, after[1].FirstName)
	assert.Empty(t, after[1].LastName)
}

func testEditOutOfRange(t *testing.T, s types.Store) {
	assert.ErrorIs(t, s.EditByIndex(0, types.NewPhone("x")), types.ErrInvalidIndex)

	require.NoError(t, s.Add(types.NewUser("Ann", "Lee", "1")))
	require.NoError(t, s.Add(types.NewPhone("2")))
	before := components(t, s)

	for _, idx := range []int{-1, -100, 2, 3, 1 << 20} {
		assert.ErrorIs(t, s.EditByIndex(idx, types.NewPhone("x")), types.ErrInvalidIndex, "index %d", idx)
	}
	assert.Equal(t, before, components(t, s))
}

func testDeleteShifts(t *testing.T, s types.Store) {
	for _, p := range []string{"a", "b", "c", "d"} {
		require.NoError(t, s.Add(types.NewPhone(p)))
	}
	before := components(t, s)

	require.NoError(t, s.DeleteByIndex(1))
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, []types.Component{before[0], before[2], before[3]}, components(t, s))
	assert.Equal(t, []string{
		"1: Phone Number: a",
		"2: Phone Number: c",
		"3: Phone Number: d",
	}, listing(t, s))

	require.NoError(t, s.DeleteByIndex(2))
	assert.Equal(t, []types.Component{before[0], before[2]}, components(t, s))

	require.NoError(t, s.Add(types.NewPhone("e")))
	assert.Equal(t, []string{
		"1: Phone Number: a",
		"2: Phone Number: c",
		"3: Phone Number: e",
	}, listing(t, s))
}

func testDeleteOutOfRange(t *testing.T, s types.Store) {
	assert.ErrorIs(t, s.DeleteByIndex(0), types.ErrInvalidIndex)

	require.NoError(t, s.Add(types.NewPhone("1")))
	before := components(t, s)
	assert.ErrorIs(t, s.DeleteByIndex(-1), types.ErrInvalidIndex)
	assert.ErrorIs(t, s.DeleteByIndex(1), types.ErrInvalidIndex)
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, before, components(t, s))
}

func testDeleteUntilEmpty(t *testing.T, s types.Store) {
	require.NoError(t, s.Add(types.NewPhone("1")))
	require.NoError(t, s.Add(types.NewPhone("2")))
	require.NoError(t, s.DeleteByIndex(0))
	require.NoError(t, s.DeleteByIndex(0))
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, listing(t, s))
}

func testInvalidKind(t *testing.T, s types.Store) {
	assert.ErrorIs(t, s.Add(types.Component{PhoneNumber: "1"}), types.ErrInvalidKind)
	assert.Equal(t, 0, s.Count())

	require.NoError(t, s.Add(types.NewPhone("1")))
	assert.ErrorIs(t, s.EditByIndex(0, types.Component{Kind: 5}), types.ErrInvalidKind)
	assert.Equal(t, []string{"1: Phone Number: 1"}, listing(t, s))
}

func testComponentsCopy(t *testing.T, s types.Store) {
	require.NoError(t, s.Add(types.NewPhone("1")))
	cs := components(t, s)
	cs[0].PhoneNumber = "mutated"
	assert.Equal(t, []string{"1: Phone Number: 1"}, listing(t, s))
}

func testClosed(t *testing.T, s types.Store) {
	require.NoError(t, s.Add(types.NewPhone("1")))
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Add(types.NewPhone("2")), types.ErrStoreClosed)
	assert.ErrorIs(t, s.EditByIndex(0, types.NewPhone("2")), types.ErrStoreClosed)
	assert.ErrorIs(t, s.DeleteByIndex(0), types.ErrStoreClosed)
	_, err := s.ShowAll()
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	_, err = s.Components()
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	assert.Equal(t, 0, s.Count())
}
