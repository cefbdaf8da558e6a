package browser

// ViewMode determines which screen to render.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
	ViewForm
	ViewConfirm
	ViewHelp
)

// clearStatusMsg requests dismissal of the transient status line.
type clearStatusMsg struct{}
