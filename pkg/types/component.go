package types

import "fmt"

// Kind tags the variant held by a Component.
type Kind int

// Component kinds. The numeric values match the type menu shown to users.
const (
	KindUser  Kind = 1
	KindPhone Kind = 2
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindPhone:
		return "phone"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindUser || k == KindPhone
}

// Component is a contact component: either a user record or a bare phone
// record. Fields that do not belong to Kind are left empty.
type Component struct {
	ComponentID string // UUID v7, assigned by the store on Add and Edit.
	Kind        Kind   // Variant tag.
	FirstName   string // User only.
	LastName    string // User only.
	PhoneNumber string // Both variants.
}

// NewUser builds a user component.
func NewUser(firstName, lastName, phoneNumber string) Component {
	return Component{
		Kind:        KindUser,
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: phoneNumber,
	}
}

// NewPhone builds a phone component.
func NewPhone(phoneNumber string) Component {
	return Component{
		Kind:        KindPhone,
		PhoneNumber: phoneNumber,
	}
}

// Details returns the display string for the component.
//
//	user:  "<first> <last>, Phone Number: <phone>"
//	phone: "Phone Number: <phone>"
func (c Component) Details() string {
	switch c.Kind {
	case KindUser:
		return fmt.Sprintf("%s %s, Phone Number: %s", c.FirstName, c.LastName, c.PhoneNumber)
	case KindPhone:
		return fmt.Sprintf("Phone Number: %s", c.PhoneNumber)
	default:
		return ""
	}
}

// Validate returns ErrInvalidKind if the component carries an unknown tag.
func (c Component) Validate() error {
	if !c.Kind.Valid() {
		return ErrInvalidKind
	}
	return nil
}
