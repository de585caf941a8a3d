package ui

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/visitors-counter/internal/config"
	"github.com/ytget/visitors-counter/internal/control"
	"github.com/ytget/visitors-counter/internal/model"
	"github.com/ytget/visitors-counter/internal/platform"
)

// Options describe what RootUI shows
type Options struct {
	LogPath   string
	ChartPath string
	Capacity  int
	Controls  []*control.Control
}

// RootUI is the counter window. It implements the frame loop's view: every
// Show call records changes, and Present refreshes only what changed.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	opts         Options

	surface     *InputSurface
	chart       *ChartView
	countText   *canvas.Text
	presentText *canvas.Text
	clockText   *canvas.Text
	alertText   *canvas.Text
	buttons     []*counterButton

	count     int
	indicator model.Indicator
	clock     string
	pending   []fyne.CanvasObject
}

// NewRootUI builds the window content and menu
func NewRootUI(window fyne.Window, app fyne.App, opts Options) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())
	platform.SetLogLevel(settings.GetLogLevel())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		opts:         opts,
		count:        -1,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components at fixed positions
func (ui *RootUI) setupUI() {
	ui.createMenu()

	background := canvas.NewVerticalGradient(ColorBGTop, ColorBGBottom)
	background.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	countCard := newCard(CountCardPos, CountCardSize)
	chartCard := newCard(ChartCardPos, ChartCardSize)

	ui.presentText = canvas.NewText(ui.localization.GetText(KeyPresent), ColorDarkGrey)
	ui.presentText.TextSize = PresentTextSize
	ui.presentText.Move(PresentPos)

	ui.countText = canvas.NewText("0", ColorBlack)
	ui.countText.TextSize = CountTextSize
	ui.countText.TextStyle = fyne.TextStyle{Bold: true}
	ui.countText.Move(CountPos)

	ui.clockText = canvas.NewText("00:00:00", ColorDarkGrey)
	ui.clockText.TextSize = ClockTextSize
	ui.clockText.TextStyle = fyne.TextStyle{Monospace: true}
	ui.clockText.Move(ClockPos)

	ui.alertText = canvas.NewText(ui.localization.GetText(KeyCapacityReached), ColorRed)
	ui.alertText.TextSize = PresentTextSize
	ui.alertText.TextStyle = fyne.TextStyle{Bold: true}
	ui.alertText.Move(AlertPos)
	ui.alertText.Hide()

	ui.chart = NewChartView(ui.opts.ChartPath, ChartViewSize)
	ui.chart.Object().Move(ChartViewPos)

	objects := []fyne.CanvasObject{background, countCard, chartCard, ui.presentText, ui.countText, ui.clockText, ui.alertText, ui.chart.Object()}

	for i, c := range ui.opts.Controls {
		pos, size := c.Bounds()
		palette := IncrementPalette
		if i%2 == 1 {
			palette = DecrementPalette
		}
		btn := newCounterButton(c.Label(), pos, size, palette)
		ui.buttons = append(ui.buttons, btn)
		objects = append(objects, btn.objects()...)
	}

	// The input surface goes last so it sits on top and gets every event
	ui.surface = NewInputSurface()
	ui.surface.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	objects = append(objects, ui.surface)

	content := container.NewWithoutLayout(objects...)
	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	ui.surface.AttachKeys(ui.window.Canvas())
}

func newCard(pos fyne.Position, size fyne.Size) *canvas.Rectangle {
	card := canvas.NewRectangle(ColorCard)
	card.StrokeColor = ColorCardBorder
	card.StrokeWidth = CardBorderWidth
	card.CornerRadius = CardRadius
	card.Move(pos)
	card.Resize(size)
	return card
}

// Input returns the surface the frame loop samples
func (ui *RootUI) Input() *InputSurface {
	return ui.surface
}

// ShowCount draws the count in the indicator's color
func (ui *RootUI) ShowCount(count int, indicator model.Indicator) {
	if count == ui.count && indicator == ui.indicator {
		return
	}
	crossed := indicator == model.IndicatorAlert && ui.indicator == model.IndicatorNeutral

	ui.count, ui.indicator = count, indicator
	ui.countText.Text = strconv.Itoa(count)
	ui.countText.Color = ColorBlack
	if indicator == model.IndicatorAlert {
		ui.countText.Color = ColorRed
	}
	ui.pending = append(ui.pending, ui.countText)

	if indicator == model.IndicatorAlert {
		ui.alertText.Text = fmt.Sprintf(ui.localization.GetText(KeyCapacityReachedAt), count, ui.opts.Capacity)
		ui.alertText.Show()
	} else {
		ui.alertText.Hide()
	}
	ui.pending = append(ui.pending, ui.alertText)

	if crossed {
		platform.Warnf("capacity reached: %d visitors present", count)
	}
}

// ShowClock draws the live clock
func (ui *RootUI) ShowClock(now time.Time) {
	clock := now.Format(ClockLayout)
	if clock == ui.clock {
		return
	}
	ui.clock = clock
	ui.clockText.Text = clock
	ui.pending = append(ui.pending, ui.clockText)
}

// ShowControl colors button i for state
func (ui *RootUI) ShowControl(i int, state model.ControlState) {
	if i < 0 || i >= len(ui.buttons) {
		return
	}
	if ui.buttons[i].setState(state) {
		ui.pending = append(ui.pending, ui.buttons[i].bg)
	}
}

// ReloadChart swaps in the chart image from disk
func (ui *RootUI) ReloadChart() error {
	if err := ui.chart.Reload(); err != nil {
		return err
	}
	ui.pending = append(ui.pending, ui.chart.Object())
	return nil
}

// Present refreshes everything changed since the last frame
func (ui *RootUI) Present() {
	for _, o := range ui.pending {
		o.Refresh()
	}
	ui.pending = ui.pending[:0]
}

// createMenu builds the main menu
func (ui *RootUI) createMenu() {
	openLogItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenLog), ui.onOpenLog)
	revealChartItem := fyne.NewMenuItem(ui.localization.GetText(KeyRevealChart), ui.onRevealChart)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), openLogItem, revealChartItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.presentText.Text = ui.localization.GetText(KeyPresent)
	ui.presentText.Refresh()
	if ui.indicator == model.IndicatorAlert {
		ui.alertText.Text = fmt.Sprintf(ui.localization.GetText(KeyCapacityReachedAt), ui.count, ui.opts.Capacity)
		ui.alertText.Refresh()
	}
}

func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.onSettingsSaved).Show()
}

func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	platform.SetLogLevel(ui.settings.GetLogLevel())
	ui.refreshUITexts()
	ui.createMenu()
}

// onOpenLog opens the visitor log with the default application
func (ui *RootUI) onOpenLog() {
	ui.openWith(ui.opts.LogPath, platform.OpenFileWithDefaultApp)
}

// onRevealChart shows the chart image in the file manager
func (ui *RootUI) onRevealChart() {
	ui.openWith(ui.opts.ChartPath, platform.OpenFileInManager)
}

func (ui *RootUI) openWith(path string, open func(string) error) {
	if err := open(path); err != nil {
		platform.Errorf("open %s: %v", path, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
		return
	}
	platform.Debugf("opened %s", path)
}
