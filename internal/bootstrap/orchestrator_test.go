package bootstrap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xfb/assets"
	"xfb/internal/config"
	"xfb/internal/locale"
	"xfb/internal/logger"
	"xfb/internal/splash"
	"xfb/internal/theme"
)

type recordingDelayer struct {
	pauses []time.Duration
}

func (r *recordingDelayer) Pause(d time.Duration) {
	r.pauses = append(r.pauses, d)
}

func staticStage(name string, out Outcome, ran *[]string) stage {
	return stage{
		name:    name,
		message: func(*state) string { return name },
		run: func(*state) Outcome {
			*ran = append(*ran, name)
			return out
		},
	}
}

func newDriverOrchestrator(t *testing.T) (*Orchestrator, *recordingDelayer) {
	t.Helper()
	a := test.NewApp()
	reporter := splash.NewReporter(a, logger.Nop{})
	reporter.Show()
	delay := &recordingDelayer{}
	return &Orchestrator{log: logger.Nop{}, reporter: reporter, delay: delay}, delay
}

func TestDriveStopsAtFatal(t *testing.T) {
	o, delay := newDriverOrchestrator(t)

	var ran []string
	cause := errors.New("disk on fire")
	stages := []stage{
		staticStage("one", Succeed(), &ran),
		staticStage("two", Fail(cause), &ran),
		staticStage("three", Succeed(), &ran),
	}

	stageErr := o.drive(stages, &state{})
	require.NotNil(t, stageErr)
	assert.Equal(t, "two", stageErr.Stage)
	assert.ErrorIs(t, stageErr, cause)
	assert.Equal(t, []string{"one", "two"}, ran, "stages after a fatal outcome must not run")
	assert.Empty(t, delay.pauses)
}

func TestDriveVisibleDegradeContinues(t *testing.T) {
	o, delay := newDriverOrchestrator(t)

	var ran []string
	stages := []stage{
		staticStage("one", DegradeVisible("translation missing"), &ran),
		staticStage("two", Succeed(), &ran),
	}

	stageErr := o.drive(stages, &state{})
	assert.Nil(t, stageErr)
	assert.Equal(t, []string{"one", "two"}, ran)
	assert.Equal(t, []time.Duration{warningNoticeDelay}, delay.pauses)
}

func TestDriveQuietDegradeSkipsPause(t *testing.T) {
	o, delay := newDriverOrchestrator(t)

	var ran []string
	stages := []stage{
		staticStage("one", Degrade("stylesheet missing"), &ran),
		staticStage("two", Succeed(), &ran),
	}

	stageErr := o.drive(stages, &state{})
	assert.Nil(t, stageErr)
	assert.Equal(t, []string{"one", "two"}, ran)
	assert.Empty(t, delay.pauses, "quiet degradation must not stall bootstrap")
	assert.Equal(t, "two", o.reporter.Message())
}

type e2eHarness struct {
	orchestrator *Orchestrator
	delay        *recordingDelayer
	sessions     int
	fullScreen   bool
}

func newE2EHarness(t *testing.T, dir string) *e2eHarness {
	t.Helper()
	a := test.NewApp()

	provisioner := config.NewProvisioner(logger.Nop{}, assets.DefaultConfig)
	provisioner.ConfigDir = func() (string, error) { return dir, nil }

	h := &e2eHarness{delay: &recordingDelayer{}}
	h.orchestrator = New(Deps{
		Log:         logger.Nop{},
		Reporter:    splash.NewReporter(a, logger.Nop{}),
		Delay:       h.delay,
		Provisioner: provisioner,
		Locale:      locale.NewResolver(logger.Nop{}, assets.Translations),
		Theme:       theme.NewApplier(logger.Nop{}, assets.Themes, a.Settings().SetTheme),
		NewSession: func(res *Result) fyne.Window {
			h.sessions++
			w := a.NewWindow("main")
			if res.Settings.FullScreen {
				w.SetFullScreen(true)
			}
			h.fullScreen = res.Settings.FullScreen
			return w
		},
	})
	return h
}

func TestRunFreshInstall(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "xfb")
	h := newE2EHarness(t, dir)

	res, stageErr := h.orchestrator.Run()
	require.Nil(t, stageErr)
	require.NotNil(t, res)

	assert.Equal(t, config.Settings{Language: "en"}, res.Settings)
	assert.Equal(t, locale.Result{Code: "en"}, res.Locale)
	assert.Equal(t, theme.VariantLight, res.Theme.Variant)
	assert.True(t, res.Theme.StylesheetLoaded)
	assert.Equal(t, 1, h.sessions)
	assert.False(t, h.fullScreen)
	assert.FileExists(t, filepath.Join(dir, config.FileName))
	assert.Equal(t, []time.Duration{readyDelay}, h.delay.pauses)
}

func TestEnsureConfigAnnouncesFirstRunOnly(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "xfb")
	h := newE2EHarness(t, dir)
	o := h.orchestrator
	o.reporter.Show()

	out := o.ensureConfig(&state{})
	assert.Equal(t, ClassSuccess, out.Class)
	assert.Equal(t, "Setting up default configuration...", o.reporter.Message())

	o.reporter.Update("Initializing...", splash.MessageColor)
	out = o.ensureConfig(&state{})
	assert.Equal(t, ClassSuccess, out.Class)
	assert.Equal(t, "Initializing...", o.reporter.Message(),
		"an existing configuration must not announce first-run setup")
}

func TestRunFatalSkipsAllLaterStages(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	h := newE2EHarness(t, filepath.Join(blocker, "xfb"))

	res, stageErr := h.orchestrator.Run()
	assert.Nil(t, res)
	require.NotNil(t, stageErr)
	assert.Equal(t, "configuration", stageErr.Stage)
	assert.ErrorIs(t, stageErr, config.ErrDirectoryCreate)
	assert.Equal(t, 0, h.sessions, "no window may be constructed after a fatal stage")
	assert.Empty(t, h.delay.pauses)
}

func TestRunDarkFullScreenPreferences(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "xfb")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	conf := "Language=en\nFullScreen=true\nDarkMode=true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(conf), 0o644))

	h := newE2EHarness(t, dir)

	res, stageErr := h.orchestrator.Run()
	require.Nil(t, stageErr)
	assert.Equal(t, theme.VariantDark, res.Theme.Variant)
	assert.Equal(t, theme.DarkPalette, res.Theme.Palette)
	assert.True(t, h.fullScreen)
}

func TestRunUnsupportedLanguageWarns(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "xfb")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("Language=xx\n"), 0o644))

	h := newE2EHarness(t, dir)

	res, stageErr := h.orchestrator.Run()
	require.Nil(t, stageErr)
	assert.Equal(t, locale.Result{Code: "en", Installed: false, Warned: true}, res.Locale)
	assert.Equal(t, []time.Duration{warningNoticeDelay, readyDelay}, h.delay.pauses)
	assert.Equal(t, 1, h.sessions, "locale fallback must not stop bootstrap")
}
