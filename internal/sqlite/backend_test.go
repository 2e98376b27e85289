package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/contacts/internal/storetest"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	b, err := Open(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestBackendConformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) types.Store {
		return newTestBackend(t)
	})
}

// positions returns the stored position column in order.
func positions(t *testing.T, b *Backend) []int {
	t.Helper()
	rows, err := b.db.Query("SELECT position FROM components ORDER BY position")
	require.NoError(t, err)
	defer rows.Close()

	var out []int
	for rows.Next() {
		var p int
		require.NoError(t, rows.Scan(&p))
		out = append(out, p)
	}
	require.NoError(t, rows.Err())
	return out
}

func TestDeleteKeepsPositionsContiguous(t *testing.T) {
	b := newTestBackend(t)
	for _, p := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, b.Add(types.NewPhone(p)))
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, positions(t, b))

	require.NoError(t, b.DeleteByIndex(0))
	assert.Equal(t, []int{0, 1, 2, 3}, positions(t, b))

	require.NoError(t, b.DeleteByIndex(2))
	assert.Equal(t, []int{0, 1, 2}, positions(t, b))

	require.NoError(t, b.Add(types.NewPhone("f")))
	assert.Equal(t, []int{0, 1, 2, 3}, positions(t, b))

	entries, err := b.ShowAll()
	require.NoError(t, err)
	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = e.String()
	}
	assert.Equal(t, []string{
		"1: Phone Number: b",
		"2: Phone Number: c",
		"3: Phone Number: e",
		"4: Phone Number: f",
	}, got)
}

func TestEditRoundTripsUserFields(t *testing.T) {
	b := newTestBackend(t)
	require.NoError(t, b.Add(types.NewPhone("1")))
	require.NoError(t, b.EditByIndex(0, types.NewUser("Ann", "Lee", "555-1")))

	cs, err := b.Components()
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, types.KindUser, cs[0].Kind)
	assert.Equal(t, "Ann", cs[0].FirstName)
	assert.Equal(t, "Lee", cs[0].LastName)
	assert.Equal(t, "555-1", cs[0].PhoneNumber)
	assert.Equal(t, []int{0}, positions(t, b))
}

func TestSeparateBackendsDoNotShareData(t *testing.T) {
	a := newTestBackend(t)
	b := newTestBackend(t)

	require.NoError(t, a.Add(types.NewPhone("1")))
	assert.Equal(t, 1, a.Count())
	assert.Equal(t, 0, b.Count())
}
