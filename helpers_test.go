package inputbar

import "fmt"

// labels returns n buttons with distinct titles and a 30x13 label.
func labels(n int) []Button {
	buttons := make([]Button, n)
	for i := range n {
		buttons[i] = NewLabel(fmt.Sprintf("b%d", i), Size{W: 30, H: 13})
	}
	return buttons
}

// flatten returns the buttons of every row, minus the expand control.
func flatten(p Packing, expand Button) []Button {
	var out []Button
	for _, row := range p.Rows {
		for _, b := range row.Buttons {
			if b != expand {
				out = append(out, b)
			}
		}
	}
	return out
}
