package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mesh-intelligence/contacts/internal/memory"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// runScript runs a shell over input against store and returns its output.
func runScript(t *testing.T, store types.Store, input string, opts ...Option) string {
	t.Helper()
	var out bytes.Buffer
	sh := New(store, strings.NewReader(input), &out, opts...)
	require.NoError(t, sh.Run(context.Background()))
	return out.String()
}

func details(t *testing.T, store types.Store) []string {
	t.Helper()
	entries, err := store.ShowAll()
	require.NoError(t, err)
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Details
	}
	return out
}

func TestRunListEmptyThenExit(t *testing.T) {
	store := memory.NewStore(nil)
	got := runScript(t, store, "4\n5\n")

	want := menuText + promptChoice +
		msgListHeader + "\n" +
		menuText + promptChoice
	assert.Equal(t, want, got)
}

func TestRunScenario(t *testing.T) {
	store := memory.NewStore(nil)
	input := strings.Join([]string{
		"1", "1", "Ann", "Lee", "555-1", // add user
		"1", "2", "555-2", // add phone
		"4",                   // list
		"2", "1", "2", "999", // edit #1 to phone
		"3", "5", // delete #5
		"4", // list
		"5",
	}, "\n") + "\n"

	got := runScript(t, store, input)

	assert.Equal(t, []string{"Phone Number: 999", "Phone Number: 555-2"}, details(t, store))
	assert.Equal(t, 2, strings.Count(got, msgAdded))
	assert.Contains(t, got, "Component 1: Ann Lee, Phone Number: 555-1\n"+types.DefaultSeparator+"\n")
	assert.Contains(t, got, "Component 2: Phone Number: 555-2\n")
	assert.Contains(t, got, msgEdited)
	assert.Contains(t, got, "Component 1: Phone Number: 999\n")
	assert.Contains(t, got, msgIndexNotFound)
	assert.NotContains(t, got, msgDeleted)
}

func TestRunAddUserTranscript(t *testing.T) {
	store := memory.NewStore(nil)
	got := runScript(t, store, "1\n1\nAnn\nLee\n555-1\n5\n")

	want := menuText + promptChoice +
		msgEnterDetails + "\n" +
		typeMenuText + promptChoice +
		promptFirstName + promptLastName + promptPhoneNumber +
		msgAdded + "\n" + types.DefaultSeparator + "\n" +
		menuText + promptChoice
	assert.Equal(t, want, got)
}

func TestRunInvalidMenuInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"non-numeric", "abc\n5\n"},
		{"empty line", "\n5\n"},
		{"zero", "0\n5\n"},
		{"above range", "6\n5\n"},
		{"negative", "-1\n5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewStore(nil)
			require.NoError(t, store.Add(types.NewPhone("1")))

			got := runScript(t, store, tt.input)

			assert.Equal(t, 1, strings.Count(got, msgInvalidMenu))
			assert.Equal(t, 2, strings.Count(got, menuText))
			assert.Equal(t, []string{"Phone Number: 1"}, details(t, store))
		})
	}
}

func TestRunComponentTypeDefaultsToUser(t *testing.T) {
	for _, answer := range []string{"9", "x", "", "0"} {
		t.Run("answer "+answer, func(t *testing.T) {
			store := memory.NewStore(nil)
			got := runScript(t, store, "1\n"+answer+"\nA\nB\nC\n5\n")

			assert.Contains(t, got, msgDefaultUser)
			assert.Equal(t, []string{"A B, Phone Number: C"}, details(t, store))
		})
	}
}

func TestRunPhoneSkipsNamePrompts(t *testing.T) {
	store := memory.NewStore(nil)
	got := runScript(t, store, "1\n2\n555\n5\n")

	assert.NotContains(t, got, promptFirstName)
	assert.NotContains(t, got, msgDefaultUser)
	assert.Equal(t, []string{"Phone Number: 555"}, details(t, store))
}

func TestRunEdit(t *testing.T) {
	t.Run("non-integer index skips component prompts", func(t *testing.T) {
		store := memory.NewStore(nil)
		require.NoError(t, store.Add(types.NewPhone("1")))

		got := runScript(t, store, "2\nfoo\n5\n")

		assert.Contains(t, got, msgInvalidIndexText)
		assert.NotContains(t, got, typeMenuText)
		assert.Equal(t, []string{"Phone Number: 1"}, details(t, store))
	})

	t.Run("out of range index reports not found", func(t *testing.T) {
		store := memory.NewStore(nil)
		require.NoError(t, store.Add(types.NewPhone("1")))

		got := runScript(t, store, "2\n2\n2\n9\n5\n")

		assert.Contains(t, got, msgIndexNotFound)
		assert.NotContains(t, got, msgEdited)
		assert.Equal(t, []string{"Phone Number: 1"}, details(t, store))
	})

	t.Run("zero index is out of range", func(t *testing.T) {
		store := memory.NewStore(nil)
		require.NoError(t, store.Add(types.NewPhone("1")))

		got := runScript(t, store, "2\n0\n2\n9\n5\n")

		assert.Contains(t, got, msgIndexNotFound)
		assert.Equal(t, []string{"Phone Number: 1"}, details(t, store))
	})

	t.Run("valid index replaces wholesale", func(t *testing.T) {
		store := memory.NewStore(nil)
		require.NoError(t, store.Add(types.NewPhone("1")))
		require.NoError(t, store.Add(types.NewUser("Ann", "Lee", "2")))

		got := runScript(t, store, "2\n2\n2\n77\n5\n")

		assert.Contains(t, got, msgEdited)
		assert.Equal(t, []string{"Phone Number: 1", "Phone Number: 77"}, details(t, store))
	})
}

func TestRunDelete(t *testing.T) {
	t.Run("non-integer index", func(t *testing.T) {
		store := memory.NewStore(nil)
		require.NoError(t, store.Add(types.NewPhone("1")))

		got := runScript(t, store, "3\n1.5\n5\n")

		assert.Contains(t, got, msgInvalidIndexText)
		assert.Equal(t, 1, store.Count())
	})

	t.Run("out of range", func(t *testing.T) {
		store := memory.NewStore(nil)
		got := runScript(t, store, "3\n1\n5\n")

		assert.Contains(t, got, msgIndexNotFound)
		assert.Equal(t, 0, store.Count())
	})

	t.Run("shifts later components", func(t *testing.T) {
		store := memory.NewStore(nil)
		for _, p := range []string{"a", "b", "c"} {
			require.NoError(t, store.Add(types.NewPhone(p)))
		}

		got := runScript(t, store, "3\n2\n4\n5\n")

		assert.Contains(t, got, msgDeleted)
		assert.Contains(t, got, "Component 2: Phone Number: c\n")
		assert.Equal(t, []string{"Phone Number: a", "Phone Number: c"}, details(t, store))
	})
}

func TestRunInputTolerance(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"crlf line endings", "1\r\n2\r\n555\r\n5\r\n"},
		{"padded numbers", " 1 \n 2\n555\n5 \n"},
		{"last line without newline", "1\n2\n555\n5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewStore(nil)
			runScript(t, store, tt.input)
			assert.Equal(t, []string{"Phone Number: 555"}, details(t, store))
		})
	}
}

func TestRunEndOfInput(t *testing.T) {
	t.Run("at menu", func(t *testing.T) {
		store := memory.NewStore(nil)
		got := runScript(t, store, "")
		assert.Equal(t, menuText+promptChoice+"\n", got)
	})

	t.Run("mid component", func(t *testing.T) {
		store := memory.NewStore(nil)
		got := runScript(t, store, "1\n1\nAnn\n")
		assert.True(t, strings.HasSuffix(got, promptLastName+"\n"))
		assert.Equal(t, 0, store.Count())
	})
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	sh := New(memory.NewStore(nil), strings.NewReader("4\n5\n"), &out)
	err := sh.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestRunStoreFailureIsReportedAndLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	store := memory.NewStore(nil)
	require.NoError(t, store.Close())

	got := runScript(t, store, "1\n2\n555\n4\n5\n", WithLogger(zap.New(core).Sugar()))

	assert.Contains(t, got, "Error: "+types.ErrStoreClosed.Error())
	assert.NotContains(t, got, msgAdded)
	assert.NotContains(t, got, msgListHeader)
	assert.Equal(t, 2, logs.FilterMessage("store operation failed").Len())
}

func TestWithSeparator(t *testing.T) {
	store := memory.NewStore(nil)
	got := runScript(t, store, "x\n5\n", WithSeparator("---"))

	assert.Contains(t, got, msgInvalidMenu+"\n---\n")
	assert.NotContains(t, got, types.DefaultSeparator)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "menu", StateMenu.String())
	assert.Equal(t, "exit", StateExit.String())
	assert.Equal(t, "state(42)", State(42).String())
}
