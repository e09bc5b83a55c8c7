package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-playlist-maker/internal/model"
)

// ResultsPanel lists the playlists of the last completed run
type ResultsPanel struct {
	localization *Localization

	mu        sync.RWMutex
	results   []model.PlaylistResult
	completed bool // a run finished and its outcome is displayed

	// UI components
	container    *fyne.Container
	list         *widget.List
	summaryLabel *widget.Label

	onCopy func(playlistURL string)
}

// NewResultsPanel creates a new results panel
func NewResultsPanel(localization *Localization) *ResultsPanel {
	rp := &ResultsPanel{localization: localization}
	rp.createUI()
	return rp
}

func (rp *ResultsPanel) createUI() {
	rp.list = widget.NewList(
		func() int {
			rp.mu.RLock()
			defer rp.mu.RUnlock()
			return len(rp.results)
		},
		func() fyne.CanvasObject {
			row := NewResultRow(model.PlaylistResult{TotalChunks: 1}, rp.localization)
			row.SetCopyCallback(func(u string) {
				if rp.onCopy != nil {
					rp.onCopy(u)
				}
			})
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			rp.mu.RLock()
			if id < 0 || id >= len(rp.results) {
				rp.mu.RUnlock()
				return
			}
			result := rp.results[id]
			rp.mu.RUnlock()

			if row, ok := obj.(*ResultRow); ok {
				row.UpdateResult(result)
			}
		},
	)

	rp.summaryLabel = widget.NewLabel("")
	rp.summaryLabel.TextStyle = fyne.TextStyle{Bold: true}

	rp.container = container.NewBorder(rp.summaryLabel, nil, nil, nil, rp.list)
}

// Container returns the panel's root object
func (rp *ResultsPanel) Container() *fyne.Container {
	return rp.container
}

// SetCopyCallback sets the callback used by every row's copy button
func (rp *ResultsPanel) SetCopyCallback(onCopy func(playlistURL string)) {
	rp.onCopy = onCopy
}

// SetResults shows the playlists of a completed run; an empty list shows a
// "no playlists" notice. Call on the UI goroutine.
func (rp *ResultsPanel) SetResults(results []model.PlaylistResult) {
	rp.set(results, true)
}

// Clear removes all playlists and hides the summary
func (rp *ResultsPanel) Clear() {
	rp.set(nil, false)
}

func (rp *ResultsPanel) set(results []model.PlaylistResult, completed bool) {
	rp.mu.Lock()
	rp.results = append([]model.PlaylistResult(nil), results...)
	rp.completed = completed
	rp.mu.Unlock()

	rp.refreshSummary()
	rp.list.Refresh()
}

// Results returns the displayed playlists
func (rp *ResultsPanel) Results() []model.PlaylistResult {
	rp.mu.RLock()
	defer rp.mu.RUnlock()
	return append([]model.PlaylistResult(nil), rp.results...)
}

// RefreshTexts re-renders labels after a language change
func (rp *ResultsPanel) RefreshTexts() {
	rp.refreshSummary()
	rp.list.Refresh()
}

func (rp *ResultsPanel) refreshSummary() {
	rp.mu.RLock()
	n := len(rp.results)
	completed := rp.completed
	rp.mu.RUnlock()

	switch {
	case !completed:
		rp.summaryLabel.SetText("")
		rp.summaryLabel.Hide()
		return
	case n == 0:
		rp.summaryLabel.Importance = widget.WarningImportance
		rp.summaryLabel.SetText(IconWarning + " " + rp.localization.GetText(KeyNoPlaylists))
	default:
		rp.summaryLabel.Importance = widget.MediumImportance
		rp.summaryLabel.SetText(rp.localization.GetText(KeyResults))
	}
	rp.summaryLabel.Show()
}
