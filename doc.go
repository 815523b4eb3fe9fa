/*
Package inputbar lays out the button bar of a conversation input field. The
buttons are packed into one row when the container is wide enough, otherwise
into two rows with an expand control at the end of the first one. The
control is pinned to the bar and toggles, with an animated scroll, which row
is visible.

The package provides a command line interface, which can render the bar at a
given width, sweep a range of widths, or preview it live. To check the
supported commands type:

	$ inputbar --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/esimov/inputbar"
	)

	func main() {
		v, _, err := inputbar.DefaultConfig().View()
		if err != nil {
			panic(err)
		}
		if _, err := v.Layout(320); err != nil {
			panic(err)
		}
		for _, p := range v.Placements() {
			fmt.Println(inputbar.Title(p.Button), p.Frame.Rect)
		}
	}
*/
package inputbar
