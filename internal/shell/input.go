package shell

import (
	"strconv"
	"strings"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// ComponentInput holds the raw field values gathered from the user for one
// component. Build turns it into a types.Component without further I/O.
type ComponentInput struct {
	Kind        types.Kind
	FirstName   string
	LastName    string
	PhoneNumber string
}

// Build constructs the component variant selected by in.Kind. Any kind other
// than KindPhone builds a user.
func (in ComponentInput) Build() types.Component {
	if in.Kind == types.KindPhone {
		return types.NewPhone(in.PhoneNumber)
	}
	return types.NewUser(in.FirstName, in.LastName, in.PhoneNumber)
}

// parseInt parses a line of user input as a base-10 integer, ignoring
// surrounding whitespace.
func parseInt(line string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseKind maps a type-menu answer to a component kind. Unparseable or
// unrecognized answers report ok=false and default to KindUser.
func parseKind(line string) (kind types.Kind, ok bool) {
	n, parsed := parseInt(line)
	if !parsed || !types.Kind(n).Valid() {
		return types.KindUser, false
	}
	return types.Kind(n), true
}
