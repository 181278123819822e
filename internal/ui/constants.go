package ui

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 80

	// MinScreenWidth is the narrowest terminal the modal is laid out for;
	// below it the modal is rendered unplaced.
	MinScreenWidth = 40
)
