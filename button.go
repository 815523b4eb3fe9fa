package inputbar

// Button is a widget placed by the View. Only its label size takes part in
// the layout. Implementations must be comparable, since buttons are told
// apart by identity; pointer types are the usual choice.
type Button interface {
	LabelSize() Size
}

// Label is the stock Button: a title and its measured label size.
type Label struct {
	Title string
	Size  Size
}

var _ Button = (*Label)(nil)

// NewLabel returns a button with the given title and label size.
func NewLabel(title string, size Size) *Label {
	return &Label{Title: title, Size: size}
}

// LabelSize implements Button.
func (l *Label) LabelSize() Size {
	return l.Size
}

func (l *Label) String() string {
	return l.Title
}

// ExpandTitle is the title of the synthesized expand control.
const ExpandTitle = "…"

// Title returns the title of b if it has one.
func Title(b Button) string {
	switch b := b.(type) {
	case *Label:
		return b.Title
	case interface{ Title() string }:
		return b.Title()
	case interface{ String() string }:
		return b.String()
	}
	return ""
}
