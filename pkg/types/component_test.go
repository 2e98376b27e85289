package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComponentDetails(t *testing.T) {
	tests := []struct {
		name      string
		component Component
		want      string
	}{
		{
			name:      "user",
			component: NewUser("Ann", "Lee", "555-1"),
			want:      "Ann Lee, Phone Number: 555-1",
		},
		{
			name:      "phone",
			component: NewPhone("555-2"),
			want:      "Phone Number: 555-2",
		},
		{
			name:      "user with empty fields",
			component: NewUser("", "", ""),
			want:      " , Phone Number: ",
		},
		{
			name:      "phone ignores name fields",
			component: Component{Kind: KindPhone, FirstName: "x", LastName: "y", PhoneNumber: "1"},
			want:      "Phone Number: 1",
		},
		{
			name:      "unknown kind renders empty",
			component: Component{Kind: Kind(9), PhoneNumber: "1"},
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.component.Details())
		})
	}
}

func TestNewUserAndNewPhone(t *testing.T) {
	u := NewUser("Ann", "Lee", "555-1")
	assert.Equal(t, KindUser, u.Kind)
	assert.Empty(t, u.ComponentID)
	assert.Equal(t, "Ann", u.FirstName)
	assert.Equal(t, "Lee", u.LastName)
	assert.Equal(t, "555-1", u.PhoneNumber)

	p := NewPhone("555-2")
	assert.Equal(t, KindPhone, p.Kind)
	assert.Empty(t, p.FirstName)
	assert.Empty(t, p.LastName)
	assert.Equal(t, "555-2", p.PhoneNumber)
}

func TestComponentValidate(t *testing.T) {
	assert.NoError(t, NewUser("a", "b", "c").Validate())
	assert.NoError(t, NewPhone("c").Validate())
	assert.ErrorIs(t, Component{}.Validate(), ErrInvalidKind)
	assert.ErrorIs(t, Component{Kind: 3}.Validate(), ErrInvalidKind)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "user", KindUser.String())
	assert.Equal(t, "phone", KindPhone.String())
	assert.Equal(t, "kind(7)", Kind(7).String())
}

func TestEntryString(t *testing.T) {
	e := Entry{Ordinal: 2, Details: "Phone Number: 555-2"}
	assert.Equal(t, "2: Phone Number: 555-2", e.String())
}

func TestInRange(t *testing.T) {
	tests := []struct {
		index, count int
		want         bool
	}{
		{0, 0, false},
		{-1, 3, false},
		{0, 3, true},
		{2, 3, true},
		{3, 3, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InRange(tt.index, tt.count), "InRange(%d, %d)", tt.index, tt.count)
	}
}
