package editor

// ViewMode determines which view is currently displayed
type ViewMode int

const (
	// ViewSections shows the ordered section list
	ViewSections ViewMode = iota
	// ViewEdit shows the field inputs for an open draft
	ViewEdit
	// ViewConfirm shows a delete confirmation prompt
	ViewConfirm
	// ViewHelp shows the key binding reference
	ViewHelp
)

// SaveResultMsg reports the outcome of an async project save
type SaveResultMsg struct {
	Err error
}
