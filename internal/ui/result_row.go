package ui

import (
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-playlist-maker/internal/model"
)

// ResultRow shows one generated playlist as a link with a copy action
type ResultRow struct {
	widget.BaseWidget

	result       model.PlaylistResult
	localization *Localization

	// UI components
	link      *widget.Hyperlink
	urlLabel  *widget.Label
	copyBtn   *widget.Button
	container *fyne.Container

	// Callbacks
	onCopy func(playlistURL string)
}

// NewResultRow creates a new result row widget
func NewResultRow(result model.PlaylistResult, localization *Localization) *ResultRow {
	rr := &ResultRow{
		result:       result,
		localization: localization,
	}
	rr.ExtendBaseWidget(rr)
	rr.createUI()
	rr.updateFromResult()
	return rr
}

// SetCopyCallback sets the callback for the copy button
func (rr *ResultRow) SetCopyCallback(onCopy func(playlistURL string)) {
	rr.onCopy = onCopy
}

// UpdateResult updates the row with new result data
func (rr *ResultRow) UpdateResult(result model.PlaylistResult) {
	rr.result = result
	rr.updateFromResult()
	rr.Refresh()
}

// Result returns the displayed result
func (rr *ResultRow) Result() model.PlaylistResult {
	return rr.result
}

func (rr *ResultRow) createUI() {
	rr.link = widget.NewHyperlink("", nil)
	rr.link.TextStyle = fyne.TextStyle{Bold: true}

	rr.urlLabel = widget.NewLabel("")
	rr.urlLabel.TextStyle = fyne.TextStyle{Monospace: true}
	rr.urlLabel.Truncation = fyne.TextTruncateEllipsis

	rr.copyBtn = widget.NewButton(IconCopy, func() {
		if rr.onCopy != nil && rr.result.URL != "" {
			rr.onCopy(rr.result.URL)
		}
	})
	rr.copyBtn.Importance = widget.LowImportance

	rr.container = container.NewBorder(nil, nil, nil, rr.copyBtn,
		container.NewVBox(rr.link, rr.urlLabel))
}

// updateFromResult updates UI components based on the result
func (rr *ResultRow) updateFromResult() {
	rr.link.SetText(IconLink + " " + rr.localization.ResultLabel(rr.result))
	if u, err := url.Parse(rr.result.URL); err == nil && rr.result.URL != "" {
		rr.link.SetURL(u)
	}
	rr.urlLabel.SetText(rr.result.URL)
}

// CreateRenderer creates the widget renderer
func (rr *ResultRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(rr.container)
}

// MinSize keeps rows readable in narrow windows
func (rr *ResultRow) MinSize() fyne.Size {
	min := rr.BaseWidget.MinSize()
	if min.Width < RowMinWidth {
		min.Width = RowMinWidth
	}
	if min.Height < RowMinHeight {
		min.Height = RowMinHeight
	}
	return min
}
