package form

// SubmittedMsg is emitted when the form passes validation and the user
// confirms. The embedder owns persistence.
type SubmittedMsg struct {
	Fields    map[string]string
	SlotCount int
	ReplaceID string
	DraftKey  string
}

// CancelledMsg is emitted when the user abandons the form. The embedder
// saves the fields as a draft so typed input survives.
type CancelledMsg struct {
	Fields    map[string]string
	SlotCount int
	DraftKey  string
}
