package ui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/ytget/yt-playlist-maker/internal/config"
	"github.com/ytget/yt-playlist-maker/internal/export"
	"github.com/ytget/yt-playlist-maker/internal/generate"
	"github.com/ytget/yt-playlist-maker/internal/model"
	"github.com/ytget/yt-playlist-maker/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	generator    generate.Generator
	exporter     export.Exporter
	settings     *config.Settings
	localization *Localization
	logger       *log.Logger

	// Input
	inputEntry      *widget.Entry
	chunkLabel      *widget.Label
	chunkSelect     *widget.Select
	chunkByLabel    map[string]model.ChunkSize
	unlimitedNotice *widget.Label
	noticeLabel     *widget.Label
	openExportBtn   *widget.Button

	// Actions
	generateBtn *widget.Button
	cancelBtn   *widget.Button
	exportBtn   *widget.Button
	clearBtn    *widget.Button

	// Progress
	progressSection *fyne.Container
	progressBar     *widget.ProgressBar
	percentLabel    *widget.Label
	statusLabel     *widget.Label
	statsLabel      *widget.Label
	elapsedLabel    *widget.Label

	resultsPanel *ResultsPanel

	// Run tracking, guarded by runMutex
	runMutex     sync.Mutex
	lastProgress model.Progress
	lastStats    model.RunStats
	runStarted   time.Time
	stopTicker   chan struct{}

	// Last exported file, offered for opening next to the notice
	lastExportPath string
	openFile       func(path string) error
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, generator generate.Generator, exporter export.Exporter) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		generator:    generator,
		exporter:     exporter,
		settings:     settings,
		localization: localization,
		logger:       log.Default().WithPrefix("ui"),
		openFile:     platform.OpenFileWithDefaultApp,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.generator.SetProgressCallback(ui.onProgress)
	ui.generator.SetStatsCallback(ui.onStats)
	ui.generator.SetCompletedCallback(ui.onCompleted)
	ui.generator.SetCancelledCallback(ui.onCancelled)

	ui.setupUI()
	ui.logger.Debug("UI setup completed", "lang", localization.GetCurrentLanguage())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	l := ui.localization
	ui.createMenu()

	ui.inputEntry = newURLInput(l.GetText(KeyEnterURLs))

	// Chunk size selection
	ui.chunkLabel = widget.NewLabel(l.GetText(KeyChunkSize))
	ui.chunkSelect = widget.NewSelect(nil, ui.onChunkSizeChanged)
	ui.unlimitedNotice = widget.NewLabel(IconWarning + " " + l.GetText(KeyUnlimitedWarning))
	ui.unlimitedNotice.Importance = widget.WarningImportance
	ui.unlimitedNotice.Hide()
	ui.populateChunkOptions()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.generateBtn = widget.NewButton(IconPlay+" "+l.GetText(KeyGenerate), ui.onGenerateClick)
	ui.generateBtn.Importance = widget.HighImportance
	ui.cancelBtn = widget.NewButton(IconStop+" "+l.GetText(KeyCancel), ui.onCancelClick)
	ui.cancelBtn.Hide()
	ui.exportBtn = widget.NewButton(l.GetText(KeyExportCSV), ui.onExportClick)
	ui.exportBtn.Disable()
	ui.clearBtn = widget.NewButton(l.GetText(KeyClear), ui.onClearClick)

	ui.noticeLabel = widget.NewLabel("")
	ui.noticeLabel.Wrapping = fyne.TextWrapWord
	ui.noticeLabel.Hide()
	ui.openExportBtn = widget.NewButton(IconFile+" "+l.GetText(KeyOpen), ui.onOpenExportClick)
	ui.openExportBtn.Importance = widget.LowImportance
	ui.openExportBtn.Hide()

	// Logo, if present next to the binary
	var header fyne.CanvasObject = settingsBtn
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewHBox(logoImage, settingsBtn)
	}

	chunkRow := container.NewHBox(ui.chunkLabel, ui.chunkSelect, ui.unlimitedNotice)
	actions := newActionRow(ui.generateBtn, ui.cancelBtn, ui.exportBtn, ui.clearBtn)
	top := container.NewVBox(
		container.NewBorder(nil, nil, header, nil, chunkRow),
		ui.inputEntry,
		actions,
		container.NewBorder(nil, nil, nil, ui.openExportBtn, ui.noticeLabel),
	)

	// Progress section, hidden until the first run
	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Max = 1
	ui.progressBar.TextFormatter = func() string { return "" }
	ui.percentLabel = widget.NewLabel(fmt.Sprintf(ProgressLabelFormat, 0))
	ui.percentLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ui.statusLabel = widget.NewLabel("")
	ui.statsLabel = widget.NewLabel("")
	ui.elapsedLabel = widget.NewLabel("")
	ui.progressSection = container.NewVBox(
		container.NewBorder(nil, nil, nil, ui.percentLabel, ui.progressBar),
		ui.statusLabel,
		container.NewHBox(ui.statsLabel, widget.NewLabel(MiddleDotSeparator), ui.elapsedLabel),
	)
	ui.progressSection.Hide()

	ui.resultsPanel = NewResultsPanel(l)
	ui.resultsPanel.SetCopyCallback(ui.onCopyURL)

	content := container.NewBorder(
		container.NewVBox(top, ui.progressSection),
		nil, nil, nil,
		ui.resultsPanel.Container(),
	)
	ui.window.SetContent(content)

	// Ctrl/Cmd+Enter starts a run from the input
	ui.window.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyReturn,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) { ui.onGenerateClick() })
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	l := ui.localization

	settingsItem := fyne.NewMenuItem(l.GetText(KeySettings), ui.onShowSettings)
	exportItem := fyne.NewMenuItem(l.GetText(KeyExportCSV), ui.onExportClick)

	languages := l.GetAvailableLanguages()
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	languageMenu := fyne.NewMenu(IconLanguage + " " + l.GetText(KeyLanguage))
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(languages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = l.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(l.GetText(KeyFile), exportItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	))
}

// populateChunkOptions fills the chunk size select with localized labels
func (ui *RootUI) populateChunkOptions() {
	ui.chunkByLabel = make(map[string]model.ChunkSize)
	options := make([]string, 0, len(ui.settings.GetChunkSizeOptions()))
	for _, size := range ui.settings.GetChunkSizeOptions() {
		label := ui.localization.ChunkSizeLabel(size)
		ui.chunkByLabel[label] = size
		options = append(options, label)
	}
	ui.chunkSelect.Options = options
	ui.chunkSelect.SetSelected(ui.localization.ChunkSizeLabel(ui.settings.GetChunkSize()))
}

// selectedChunkSize returns the chunk size chosen in the select
func (ui *RootUI) selectedChunkSize() model.ChunkSize {
	if size, ok := ui.chunkByLabel[ui.chunkSelect.Selected]; ok {
		return size
	}
	return ui.settings.GetChunkSize()
}

func (ui *RootUI) onChunkSizeChanged(label string) {
	size, ok := ui.chunkByLabel[label]
	if !ok {
		return
	}
	ui.settings.SetChunkSize(size)
	if size.IsUnlimited() {
		ui.unlimitedNotice.Show()
	} else {
		ui.unlimitedNotice.Hide()
	}
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))

	ui.inputEntry.SetPlaceHolder(l.GetText(KeyEnterURLs))
	ui.chunkLabel.SetText(l.GetText(KeyChunkSize))
	ui.unlimitedNotice.SetText(IconWarning + " " + l.GetText(KeyUnlimitedWarning))
	ui.populateChunkOptions()

	ui.generateBtn.SetText(IconPlay + " " + l.GetText(KeyGenerate))
	ui.cancelBtn.SetText(IconStop + " " + l.GetText(KeyCancel))
	ui.exportBtn.SetText(l.GetText(KeyExportCSV))
	ui.clearBtn.SetText(l.GetText(KeyClear))
	ui.openExportBtn.SetText(IconFile + " " + l.GetText(KeyOpen))

	ui.runMutex.Lock()
	p, stats := ui.lastProgress, ui.lastStats
	ui.runMutex.Unlock()
	if p.Phase != "" {
		ui.statusLabel.SetText(l.ProgressMessage(p))
	}
	ui.statsLabel.SetText(l.Format(KeyStatsFormat, stats.Total, stats.Valid, stats.Invalid))

	ui.resultsPanel.RefreshTexts()
}

// showNotification displays a message under the input
func (ui *RootUI) showNotification(message string) {
	ui.openExportBtn.Hide()
	ui.noticeLabel.SetText(message)
	ui.noticeLabel.Show()
}

func (ui *RootUI) hideNotification() {
	ui.openExportBtn.Hide()
	ui.noticeLabel.Hide()
}

// onGenerateClick starts a run on a background goroutine
func (ui *RootUI) onGenerateClick() {
	input := ui.inputEntry.Text
	if platform.IsBlank(input) {
		ui.showNotification(ui.localization.GetText(KeyPleaseEnterURLs))
		return
	}
	if ui.generator.IsRunning() {
		ui.showNotification(ui.localization.GetText(KeyAlreadyRunning))
		return
	}

	ui.hideNotification()
	ui.resultsPanel.Clear()
	ui.setRunning(true)

	chunkSize := ui.selectedChunkSize()
	go func() {
		state, err := ui.generator.Start(context.Background(), input, chunkSize)
		fyne.Do(func() {
			ui.onRunFinished(state, err)
		})
	}()
}

// onCancelClick requests cancellation of the active run
func (ui *RootUI) onCancelClick() {
	if err := ui.generator.Cancel(); err != nil {
		ui.logger.Debug("cancel ignored", "err", err)
	}
}

// onClearClick resets input, progress and results
func (ui *RootUI) onClearClick() {
	if ui.generator.IsRunning() {
		ui.showNotification(ui.localization.GetText(KeyAlreadyRunning))
		return
	}
	ui.inputEntry.SetText("")
	ui.resultsPanel.Clear()
	ui.progressSection.Hide()
	ui.hideNotification()
}

// setRunning toggles controls between idle and running. Call on the UI goroutine.
func (ui *RootUI) setRunning(running bool) {
	if running {
		ui.generateBtn.Disable()
		ui.clearBtn.Disable()
		ui.exportBtn.Disable()
		ui.chunkSelect.Disable()
		ui.cancelBtn.Show()

		ui.progressBar.SetValue(0)
		ui.percentLabel.SetText(fmt.Sprintf(ProgressLabelFormat, 0))
		ui.statusLabel.SetText(ui.localization.GetText(KeyPhaseStarting))
		ui.statsLabel.SetText(ui.localization.Format(KeyStatsFormat, 0, 0, 0))
		ui.elapsedLabel.SetText(ui.localization.Format(KeyElapsedFormat, model.FormatElapsed(0)))
		ui.progressSection.Show()
		ui.startElapsedTicker()
		return
	}

	ui.stopElapsedTicker()
	ui.generateBtn.Enable()
	ui.clearBtn.Enable()
	ui.chunkSelect.Enable()
	ui.cancelBtn.Hide()
	if len(ui.generator.Results()) > 0 {
		ui.exportBtn.Enable()
	} else {
		ui.exportBtn.Disable()
	}
}

// startElapsedTicker refreshes the elapsed label once per second while a run is active
func (ui *RootUI) startElapsedTicker() {
	ui.runMutex.Lock()
	ui.runStarted = time.Now()
	stop := make(chan struct{})
	ui.stopTicker = stop
	started := ui.runStarted
	ui.runMutex.Unlock()

	go func() {
		ticker := time.NewTicker(ElapsedTickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				elapsed := model.FormatElapsed(time.Since(started))
				fyne.Do(func() {
					ui.elapsedLabel.SetText(ui.localization.Format(KeyElapsedFormat, elapsed))
				})
			}
		}
	}()
}

func (ui *RootUI) stopElapsedTicker() {
	ui.runMutex.Lock()
	defer ui.runMutex.Unlock()
	if ui.stopTicker != nil {
		close(ui.stopTicker)
		ui.stopTicker = nil
	}
}

// onProgress handles progress reports from the generator
func (ui *RootUI) onProgress(p model.Progress) {
	ui.runMutex.Lock()
	ui.lastProgress = p
	ui.runMutex.Unlock()

	fyne.Do(func() {
		ui.progressBar.SetValue(p.Fraction())
		ui.percentLabel.SetText(fmt.Sprintf(ProgressLabelFormat, p.Rounded))
		ui.statusLabel.SetText(ui.localization.ProgressMessage(p))
		ui.elapsedLabel.SetText(ui.localization.Format(KeyElapsedFormat, p.GetElapsedString()))
	})
}

// onStats handles parsed input statistics
func (ui *RootUI) onStats(stats model.RunStats) {
	ui.runMutex.Lock()
	ui.lastStats = stats
	ui.runMutex.Unlock()

	fyne.Do(func() {
		ui.statsLabel.SetText(ui.localization.Format(KeyStatsFormat, stats.Total, stats.Valid, stats.Invalid))
	})
}

// onCompleted sends a system notification when playlists are ready
func (ui *RootUI) onCompleted(results []model.PlaylistResult) {
	first := results[0]
	fyne.Do(func() {
		ui.app.SendNotification(&fyne.Notification{
			Title:   ui.localization.GetText(KeyAppTitle),
			Content: ui.localization.GetText(KeyPhaseDone) + " " + ui.localization.ResultLabel(first),
		})
	})
}

func (ui *RootUI) onCancelled() {
	ui.logger.Info("generation cancelled by user")
}

// onRunFinished renders the outcome of a run. Runs on the UI goroutine.
func (ui *RootUI) onRunFinished(state model.RunState, err error) {
	ui.setRunning(false)

	switch {
	case errors.Is(err, generate.ErrRunInProgress):
		ui.showNotification(ui.localization.GetText(KeyAlreadyRunning))
		return
	case errors.Is(err, generate.ErrEmptyInput):
		ui.progressSection.Hide()
		ui.showNotification(ui.localization.GetText(KeyPleaseEnterURLs))
		return
	case err != nil:
		ui.logger.Error("generation failed", "run", state.ID, "err", err)
		ui.statusLabel.SetText(IconError + " " + ui.localization.GetText(KeyPhaseFailed))
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorGenerating), err), ui.window)
		return
	}

	if state.Status == model.RunStatusCompleted {
		ui.resultsPanel.SetResults(state.Results)
	}
}

// onExportClick writes the last completed results to a CSV file
func (ui *RootUI) onExportClick() {
	results := ui.generator.Results()
	ui.exporter.SetHeader(export.HeaderFor(ui.localization.GetCurrentLanguage()))

	path, err := ui.exporter.Export(ui.settings.GetExportDirectory(), results)
	if errors.Is(err, export.ErrNoResults) {
		dialog.ShowInformation(ui.localization.GetText(KeyExportCSV), ui.localization.GetText(KeyNoResultsToExport), ui.window)
		return
	}
	if err != nil {
		ui.logger.Error("export failed", "err", err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorExporting), err), ui.window)
		return
	}

	ui.showNotification(IconFile + " " + ui.localization.GetText(KeyExported) + " " + path)
	ui.lastExportPath = path
	ui.openExportBtn.Show()
	if ui.settings.GetAutoRevealOnExport() {
		ui.onRevealFile(path)
	}
}

// onOpenExportClick opens the last exported CSV with the default application
func (ui *RootUI) onOpenExportClick() {
	if ui.lastExportPath == "" {
		return
	}
	if err := ui.openFile(ui.lastExportPath); err != nil {
		ui.logger.Warn("open failed", "path", ui.lastExportPath, "err", err)
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		ui.logger.Warn("reveal failed", "path", filePath, "err", err)
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// onCopyURL copies a playlist URL to the clipboard
func (ui *RootUI) onCopyURL(playlistURL string) {
	ui.app.Clipboard().SetContent(playlistURL)
	ui.showNotification(ui.localization.GetText(KeyCopied))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
}
