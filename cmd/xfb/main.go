package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/lang"
	fynetheme "fyne.io/fyne/v2/theme"
	"github.com/rs/zerolog"

	"xfb/assets"
	"xfb/internal/bootstrap"
	"xfb/internal/config"
	"xfb/internal/locale"
	"xfb/internal/logger"
	"xfb/internal/player"
	"xfb/internal/splash"
	"xfb/internal/theme"
)

const (
	appID = "com.netpack.xfb"

	// Process-level flags the media layer reads at initialization. They
	// must be set before any toolkit state exists; later changes have no
	// effect.
	mediaBackendEnv  = "XFB_MEDIA_BACKEND"
	accessibilityEnv = "FYNE_ACCESSIBILITY"
)

func main() {
	os.Setenv(mediaBackendEnv, "gstreamer")
	os.Setenv(accessibilityEnv, "1")

	log := logger.NewConsole(determineLogLevel())

	a := app.NewWithID(appID)
	a.SetIcon(fynetheme.MediaPlayIcon())

	reporter := splash.NewReporter(a, log)
	orchestrator := bootstrap.New(bootstrap.Deps{
		Log:         log,
		Reporter:    reporter,
		Delay:       bootstrap.Sleeper(),
		Provisioner: config.NewProvisioner(log, assets.DefaultConfig),
		Locale:      locale.NewResolver(log, assets.Translations),
		Theme:       theme.NewApplier(log, assets.Themes, a.Settings().SetTheme),
		NewSession: func(res *bootstrap.Result) fyne.Window {
			return player.New(a, res).Window()
		},
	})

	a.Lifecycle().SetOnStarted(func() {
		go func() {
			if _, stageErr := orchestrator.Run(); stageErr != nil {
				showFatal(a, log, stageErr)
			}
		}()
	})

	a.Run()
}

// showFatal surfaces a blocking error naming the failed stage, then ends the
// process with a non-zero status. No window or theme state is left behind.
func showFatal(a fyne.App, log logger.Logger, stageErr *bootstrap.StageError) {
	log.Error("Main", stageErr, map[string]interface{}{
		"stage": stageErr.Stage,
	})
	fyne.Do(func() {
		w := a.NewWindow(lang.L("Configuration Error"))
		w.Resize(fyne.NewSize(420, 160))
		w.CenterOnScreen()

		d := dialog.NewError(stageErr, w)
		d.SetOnClosed(func() {
			os.Exit(1)
		})
		w.Show()
		d.Show()
	})
}

func determineLogLevel() zerolog.Level {
	switch os.Getenv("XFB_LOG_LEVEL") {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		if os.Getenv("DEBUG") == "1" {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	}
}
