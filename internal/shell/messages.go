package shell

// Menu and prompt text.
const (
	menuText = "1. Add Contact Component\n" +
		"2. Edit Contact Component\n" +
		"3. Delete Contact Component\n" +
		"4. Show All Contact Components\n" +
		"5. Exit\n"
	typeMenuText = "Choose Component Type:\n" +
		"1. User\n" +
		"2. Phone\n"

	promptChoice      = "Enter your choice: "
	promptEditIndex   = "Enter the index to edit the component: "
	promptDeleteIndex = "Enter the index to delete the component: "
	promptFirstName   = "First Name: "
	promptLastName    = "Last Name: "
	promptPhoneNumber = "Enter Phone Number: "
)

// Outcome messages. Each is followed by the separator line.
const (
	msgEnterDetails     = "Enter component details:"
	msgAdded            = "Component added successfully!"
	msgEdited           = "Component edited successfully!"
	msgDeleted          = "Component deleted successfully!"
	msgListHeader       = "All Contact Components:"
	msgInvalidMenu      = "Invalid input. Please enter a valid menu option."
	msgInvalidIndexText = "Invalid index. Please enter a valid integer index."
	msgIndexNotFound    = "Invalid index. Component not found."
	msgDefaultUser      = "Invalid choice. Defaulting to User."
)
