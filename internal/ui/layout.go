package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// isMobileDevice checks if the app is running on a mobile device
func isMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// newURLInput creates the multi-line input sized for the current device
func newURLInput(placeholder string) *widget.Entry {
	entry := widget.NewMultiLineEntry()
	entry.SetPlaceHolder(placeholder)
	entry.Wrapping = fyne.TextWrapOff
	if isMobileDevice() {
		entry.SetMinRowsVisible(MobileInputRows)
	} else {
		entry.SetMinRowsVisible(InputRows)
	}
	return entry
}

// newActionRow lays out buttons side by side on desktop and stacked
// in an adaptive grid on mobile
func newActionRow(objects ...fyne.CanvasObject) *fyne.Container {
	if isMobileDevice() {
		return container.NewAdaptiveGrid(2, objects...)
	}
	return container.NewHBox(objects...)
}
