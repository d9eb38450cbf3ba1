// Package bootstrap drives the startup sequence: provision configuration,
// load settings, resolve the locale, apply the theme, construct the session
// window. Stages run strictly forward on a single goroutine; each reports
// through the splash and yields an explicit outcome.
package bootstrap

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/lang"

	"xfb/internal/config"
	"xfb/internal/locale"
	"xfb/internal/logger"
	"xfb/internal/splash"
	"xfb/internal/theme"
)

// Perceptibility pauses, matching the original player's timings.
const (
	warningNoticeDelay = 1500 * time.Millisecond
	readyDelay         = 300 * time.Millisecond
)

// Result is the immutable outcome of a successful bootstrap, constructed
// once and handed to the interactive session. Nothing reads these values
// from globals.
type Result struct {
	ConfigPath string
	Settings   config.Settings
	Locale     locale.Result
	Theme      theme.Applied
}

// Deps wires the orchestrator's collaborators.
type Deps struct {
	Log         logger.Logger
	Reporter    *splash.Reporter
	Delay       Delayer
	Provisioner *config.Provisioner
	Locale      *locale.Resolver
	Theme       *theme.Applier
	NewSession  func(*Result) fyne.Window
}

type Orchestrator struct {
	log         logger.Logger
	reporter    *splash.Reporter
	delay       Delayer
	provisioner *config.Provisioner
	locale      *locale.Resolver
	theme       *theme.Applier
	newSession  func(*Result) fyne.Window
}

func New(deps Deps) *Orchestrator {
	return &Orchestrator{
		log:         deps.Log,
		reporter:    deps.Reporter,
		delay:       deps.Delay,
		provisioner: deps.Provisioner,
		locale:      deps.Locale,
		theme:       deps.Theme,
		newSession:  deps.NewSession,
	}
}

// state accumulates stage products; a Result snapshot is taken once all
// stages have run.
type state struct {
	configPath string
	settings   config.Settings
	locale     locale.Result
	theme      theme.Applied
	result     *Result
	window     fyne.Window
}

type stage struct {
	name    string
	message func(st *state) string
	run     func(st *state) Outcome
}

func (o *Orchestrator) stages() []stage {
	return []stage{
		{
			name:    "configuration",
			message: staticMessage("Initializing..."),
			run:     o.ensureConfig,
		},
		{
			name:    "settings",
			message: staticMessage("Loading settings..."),
			run:     o.loadSettings,
		},
		{
			name:    "locale",
			message: localeMessage,
			run:     o.resolveLocale,
		},
		{
			name:    "theme",
			message: staticMessage("Applying theme..."),
			run:     o.applyTheme,
		},
		{
			name:    "window",
			message: staticMessage("Loading main window..."),
			run:     o.buildWindow,
		},
	}
}

// Run executes the whole sequence. On success the main window is visible,
// the splash is gone and the returned Result describes the session. On
// fatal failure the splash is hidden and the StageError names the stage;
// no window was constructed.
func (o *Orchestrator) Run() (*Result, *StageError) {
	o.reporter.Show()
	o.reporter.Update(lang.L("Initializing..."), splash.MessageColor)

	st := &state{}
	if stageErr := o.drive(o.stages(), st); stageErr != nil {
		o.reporter.Hide()
		return nil, stageErr
	}

	o.reporter.Update(lang.L("XFB is Ready!"), splash.MessageColor)
	o.delay.Pause(readyDelay)
	o.reporter.Finish(st.window)

	o.log.Info("Bootstrap", "entering event loop", map[string]interface{}{
		"language":    st.result.Locale.Code,
		"variant":     st.result.Theme.Variant,
		"full_screen": st.result.Settings.FullScreen,
	})
	return st.result, nil
}

func (o *Orchestrator) drive(stages []stage, st *state) *StageError {
	for _, s := range stages {
		o.reporter.Update(s.message(st), splash.MessageColor)
		out := s.run(st)

		switch out.Class {
		case ClassFatal:
			o.log.Error("Bootstrap", out.Err, map[string]interface{}{
				"stage": s.name,
			})
			return &StageError{Stage: s.name, Err: out.Err}
		case ClassDegraded:
			o.log.Warning("Bootstrap", out.Warning, map[string]interface{}{
				"stage": s.name,
			})
			if out.Notify {
				o.reporter.Update(out.Warning, splash.WarningColor)
				o.delay.Pause(warningNoticeDelay)
			}
		}
	}
	return nil
}

func (o *Orchestrator) ensureConfig(st *state) Outcome {
	// First-run setup is announced only when a copy actually happens; an
	// existing configuration stays quiet.
	o.provisioner.OnFirstRun = func() {
		o.reporter.Update(lang.L("Setting up default configuration..."), splash.MessageColor)
	}
	prov, err := o.provisioner.Ensure()
	if err != nil {
		return Fail(err)
	}
	st.configPath = prov.Path
	if prov.Warning != "" {
		return Degrade(prov.Warning)
	}
	return Succeed()
}

func (o *Orchestrator) loadSettings(st *state) Outcome {
	st.settings = config.LoadSettings(st.configPath, o.log)
	return Succeed()
}

func (o *Orchestrator) resolveLocale(st *state) Outcome {
	st.locale = o.locale.Resolve(st.settings.Language)
	if st.locale.Warned {
		return DegradeVisible(lang.L("Failed to load translation!"))
	}
	return Succeed()
}

func (o *Orchestrator) applyTheme(st *state) Outcome {
	st.theme = o.theme.Apply(st.settings.DarkMode)
	if !st.theme.StylesheetLoaded {
		return Degrade("stylesheet missing, palette-only theme")
	}
	return Succeed()
}

func (o *Orchestrator) buildWindow(st *state) Outcome {
	res := &Result{
		ConfigPath: st.configPath,
		Settings:   st.settings,
		Locale:     st.locale,
		Theme:      st.theme,
	}
	fyne.DoAndWait(func() {
		st.window = o.newSession(res)
	})
	st.result = res
	return Succeed()
}

func staticMessage(key string) func(*state) string {
	return func(*state) string { return lang.L(key) }
}

func localeMessage(st *state) string {
	switch st.settings.Language {
	case "pt":
		return lang.L("Loading Portuguese GUI...")
	case "fr":
		return lang.L("Loading French GUI...")
	default:
		return lang.L("Loading English GUI...")
	}
}
