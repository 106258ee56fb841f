// Package config resolves rowflow's file paths and user settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

// Version is the release version set at build time.
var Version = "dev"

var (
	configDir      = "rowflow"
	configFileName = "config.yml"
	dbFileName     = "rowflow.db"
	logFileName    = "rowflow.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func FilePath() string {
	return configFilePath
}

func LogFilePath() string {
	return logFilePath
}

// InitializePaths resolves the config and data file locations through XDG.
// Setting ROWFLOW_ENV suffixes the file names so tests and local
// experiments don't touch the real log.
func InitializePaths() {
	rowflowEnv := strings.TrimSpace(os.Getenv("ROWFLOW_ENV"))
	if rowflowEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", rowflowEnv)
		dbFileName = fmt.Sprintf("rowflow_%s.db", rowflowEnv)
		logFileName = fmt.Sprintf("rowflow_%s.log", rowflowEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath, err = xdg.DataFile(filepath.Join(configDir, dbFileName))
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	logFilePath, err = xdg.DataFile(filepath.Join(configDir, logFileName))
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
