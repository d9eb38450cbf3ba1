// Package player holds the interactive session surface the bootstrap hands
// control to. Playback and library logic live behind this window and are not
// part of the startup path.
package player

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/widget"

	"xfb/internal/bootstrap"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640
)

type Player struct {
	window fyne.Window
	boot   *bootstrap.Result
}

// New constructs the main window from the finished bootstrap result. The
// theme and locale are already in effect; only the FullScreen preference
// decides the display mode.
func New(a fyne.App, boot *bootstrap.Result) *Player {
	w := a.NewWindow("XFB")
	w.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	w.CenterOnScreen()
	w.SetMaster()
	if boot.Settings.FullScreen {
		w.SetFullScreen(true)
	}

	p := &Player{window: w, boot: boot}
	w.SetContent(p.buildContent())
	return p
}

func (p *Player) Window() fyne.Window {
	return p.window
}

func (p *Player) buildContent() fyne.CanvasObject {
	statusLabel := widget.NewLabel(lang.L("Ready"))
	sessionLabel := widget.NewLabel(fmt.Sprintf("%s · %s", p.boot.Locale.Code, p.boot.Theme.Variant))
	statusBar := container.NewBorder(nil, nil, statusLabel, sessionLabel)

	library := widget.NewLabel(lang.L("Media library is empty"))

	return container.NewBorder(
		nil, statusBar, nil, nil,
		container.NewCenter(library),
	)
}
