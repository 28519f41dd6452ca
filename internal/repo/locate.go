package repo

import (
	"os"
	"path/filepath"

	"github.com/mmr-tortoise/rfcs/internal/config"
	"github.com/mmr-tortoise/rfcs/internal/gitrepo"
	"github.com/mmr-tortoise/rfcs/internal/model"
)

// cloneDirName is the directory under the config dir that holds the
// checkout cloned from git.url.
const cloneDirName = "rfcs"

// notConfiguredMessage tells the user how to get a working setup. It is
// the whole error body: there is nothing else the tool can do without a
// repository.
const notConfiguredMessage = "no local git repo configured, and no git URL given, can't do anything.\n" +
	"To configure, run `rfcs configure git.url <git URL>`, " +
	"or `rfcs configure git.repo /path/to/rfcs`"

// Locate returns the path of a usable local checkout for the given
// configuration.
//
// A configured git.repo path is returned as-is (after validating it
// exists). With only git.url set, the URL is cloned into the config
// directory on first use; the clone is detected and reused on later runs
// so the network is only touched once. With neither set, Locate fails
// with configuration instructions.
func Locate(cfg *config.Config) (string, error) {
	if cfg.Git.Repo != "" {
		if _, err := os.Stat(cfg.Git.Repo); err != nil {
			return "", model.WrapCLIError(model.ExitScanError,
				"configured git.repo path is not readable", err)
		}
		return cfg.Git.Repo, nil
	}

	if cfg.Git.URL != "" {
		return ensureClone(cfg.Git.URL)
	}

	return "", model.NewCLIError(model.ExitConfigError, notConfiguredMessage)
}

// ensureClone returns the path of the local clone of url, cloning it
// first if it does not exist yet.
func ensureClone(url string) (string, error) {
	dest := filepath.Join(config.ConfigDir(), cloneDirName)

	// A .git entry inside dest means a previous run already cloned.
	if _, err := os.Stat(filepath.Join(dest, ".git")); err == nil {
		return dest, nil
	}

	if err := os.MkdirAll(config.ConfigDir(), 0755); err != nil {
		return "", model.WrapCLIError(model.ExitConfigError,
			"failed to create config directory for clone", err)
	}

	if err := gitrepo.Clone(url, dest); err != nil {
		return "", err
	}
	return dest, nil
}
