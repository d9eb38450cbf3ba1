package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"xfb/internal/logger"
)

// FileName is the per-user configuration file, created under the platform
// config directory on first run.
const FileName = "xfb.conf"

const appDirName = "xfb"

// Fatal provisioning failures. Bootstrap cannot continue without a usable
// configuration file.
var (
	ErrLocationUnavailable = errors.New("cannot determine a writable configuration location")
	ErrDirectoryCreate     = errors.New("cannot create the configuration directory")
	ErrDefaultCopy         = errors.New("cannot copy the default configuration file")
)

// Provisioner materializes the per-user configuration file from the bundled
// default. Existing files are never touched.
type Provisioner struct {
	// ConfigDir resolves the writable configuration directory. Defaults to
	// the platform user config dir plus the application subdirectory.
	ConfigDir func() (string, error)

	// OnFirstRun, when set, is called right before the bundled default is
	// copied. Existing files never trigger it.
	OnFirstRun func()

	log     logger.Logger
	bundled []byte
}

// Provisioned describes the configuration file after Ensure.
type Provisioned struct {
	Path    string
	Created bool
	Warning string // non-fatal trouble, e.g. a failed permission adjustment
}

func NewProvisioner(log logger.Logger, bundled []byte) *Provisioner {
	return &Provisioner{
		ConfigDir: platformConfigDir,
		log:       log,
		bundled:   bundled,
	}
}

func platformConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDirName), nil
}

// Ensure makes sure the configuration file exists, seeding it from the
// bundled default on first run. Idempotent: a surviving file is returned
// untouched, whatever the user did to it.
func (p *Provisioner) Ensure() (Provisioned, error) {
	dir, err := p.ConfigDir()
	if err != nil || dir == "" {
		return Provisioned{}, ErrLocationUnavailable
	}

	if _, err := os.Stat(dir); err != nil {
		p.log.Info("ConfigProvisioner", "creating configuration directory", map[string]interface{}{
			"dir": dir,
		})
	}
	// MkdirAll is idempotent; any failure to establish the directory,
	// including a blocked path component, is a directory-create fatal.
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Provisioned{}, errors.Wrap(ErrDirectoryCreate, err.Error())
	}

	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		p.log.Debug("ConfigProvisioner", "using existing configuration file", map[string]interface{}{
			"path": path,
		})
		return Provisioned{Path: path}, nil
	}

	if p.OnFirstRun != nil {
		p.OnFirstRun()
	}
	if err := os.WriteFile(path, p.bundled, 0o644); err != nil {
		return Provisioned{}, errors.Wrap(ErrDefaultCopy, err.Error())
	}
	p.log.Info("ConfigProvisioner", "copied default configuration", map[string]interface{}{
		"path": path,
	})

	out := Provisioned{Path: path, Created: true}
	// Owner read/write, group/other read. Best effort only.
	if err := os.Chmod(path, 0o644); err != nil {
		out.Warning = "could not adjust configuration file permissions"
		p.log.Warning("ConfigProvisioner", out.Warning, map[string]interface{}{
			"path":   path,
			"reason": err.Error(),
		})
	}
	return out, nil
}
