// Package splash owns the transient progress surface shown while the
// application bootstraps.
package splash

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"xfb/internal/logger"
)

// Status message colors.
var (
	MessageColor color.Color = color.NRGBA{R: 0x1e, G: 0x66, B: 0xf5, A: 0xff}
	WarningColor color.Color = color.NRGBA{R: 0xd2, G: 0x0f, B: 0x39, A: 0xff}
)

// Reporter renders sequential bootstrap status messages on a splash window.
// All methods marshal onto the toolkit thread and wait for the frame, so a
// message is visible before the next blocking stage starts.
type Reporter struct {
	app    fyne.App
	log    logger.Logger
	window fyne.Window
	status *canvas.Text
}

func NewReporter(a fyne.App, log logger.Logger) *Reporter {
	return &Reporter{app: a, log: log}
}

// Show displays the splash surface. Must run before any blocking bootstrap
// work so the user never stares at nothing.
func (r *Reporter) Show() {
	fyne.DoAndWait(func() {
		r.window = r.newSplashWindow()
		r.window.SetContent(r.buildContent())
		r.window.Resize(fyne.NewSize(420, 240))
		r.window.CenterOnScreen()
		r.window.Show()
	})
}

func (r *Reporter) newSplashWindow() fyne.Window {
	if drv, ok := r.app.Driver().(desktop.Driver); ok {
		return drv.CreateSplashWindow()
	}
	// Drivers without splash support (mobile, tests) get a plain window.
	return r.app.NewWindow("XFB")
}

func (r *Reporter) buildContent() fyne.CanvasObject {
	background := canvas.NewRectangle(color.NRGBA{R: 0x18, G: 0x18, B: 0x25, A: 0xff})

	title := canvas.NewText("XFB", color.NRGBA{R: 0xcd, G: 0xd6, B: 0xf4, A: 0xff})
	title.TextSize = 48
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	r.status = canvas.NewText("", MessageColor)
	r.status.TextSize = 13
	r.status.Alignment = fyne.TextAlignCenter

	return container.NewStack(
		background,
		container.NewBorder(nil, r.status, nil, nil, container.NewCenter(title)),
	)
}

// Update replaces the bottom status line and flushes the redraw before
// returning. Bootstrap is single-threaded, so without the flush a blocking
// stage would leave the previous message on screen.
func (r *Reporter) Update(message string, c color.Color) {
	if r.status == nil {
		return
	}
	fyne.DoAndWait(func() {
		r.status.Text = message
		r.status.Color = c
		r.status.Refresh()
	})
	r.log.Debug("Splash", "status updated", map[string]interface{}{
		"message": message,
	})
}

// Message reports the currently displayed status line.
func (r *Reporter) Message() string {
	if r.status == nil {
		return ""
	}
	return r.status.Text
}

// Finish shows the main window and closes the splash in the same toolkit
// pass: the splash never disappears before the session surface is paintable,
// and never outlives it.
func (r *Reporter) Finish(main fyne.Window) {
	fyne.DoAndWait(func() {
		main.Show()
		if r.window != nil {
			r.window.Close()
		}
	})
}

// Hide removes the splash with no successor window. Used on the fatal path
// before the error dialog appears.
func (r *Reporter) Hide() {
	fyne.DoAndWait(func() {
		if r.window != nil {
			r.window.Hide()
		}
	})
}
