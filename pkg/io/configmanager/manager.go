// Package configmanager loads the tfinfra settings from defaults, an optional
// tfinfra.yaml, TFINFRA_* environment variables and command-line flags, in increasing
// order of precedence.
package configmanager

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devantler-tech/tfinfra/pkg/client/terraform"
	"github.com/devantler-tech/tfinfra/pkg/fsutil"
	"github.com/devantler-tech/tfinfra/pkg/svc/discover"
	"github.com/devantler-tech/tfinfra/pkg/utils/logging"
	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config file lookup.
const (
	ConfigName = "tfinfra"
	ConfigType = "yaml"
	EnvPrefix  = "TFINFRA"
)

// Setting keys, also used as flag names.
const (
	KeyParametersFile  = "parameters-file"
	KeyOutputFile      = "output-file"
	KeyTerraformBinary = "terraform-binary"
	KeyTerraformDir    = "terraform-dir"
	KeyStateFile       = "state-file"
	KeyLogLevel        = "log-level"
	KeyTimeout         = "timeout"
	KeyTiming          = "timing"
)

// Settings configures one invocation.
type Settings struct {
	ParametersFile  string        `mapstructure:"parameters-file"`
	OutputFile      string        `mapstructure:"output-file"`
	TerraformBinary string        `mapstructure:"terraform-binary"`
	TerraformDir    string        `mapstructure:"terraform-dir"`
	StateFile       string        `mapstructure:"state-file"`
	LogLevel        string        `mapstructure:"log-level"`
	Timeout         time.Duration `mapstructure:"timeout"`
	Timing          bool          `mapstructure:"timing"`
}

// Manager resolves Settings with viper.
type Manager struct {
	Viper *viper.Viper
}

// NewManager creates a manager looking for tfinfra.yaml in searchPaths (the current
// directory when none are given).
func NewManager(searchPaths ...string) *Manager {
	if len(searchPaths) == 0 {
		searchPaths = []string{"."}
	}

	v := viper.New()
	v.SetConfigName(ConfigName)
	v.SetConfigType(ConfigType)

	for _, path := range searchPaths {
		v.AddConfigPath(path)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	return &Manager{Viper: v}
}

func defaults() map[string]any {
	return map[string]any{
		KeyParametersFile:  discover.ParameterFile,
		KeyOutputFile:      discover.ResultFile,
		KeyTerraformBinary: terraform.DefaultBinary,
		KeyTerraformDir:    terraform.DefaultDir,
		KeyStateFile:       terraform.DefaultStateFile,
		KeyLogLevel:        logging.DefaultLevel,
		KeyTimeout:         time.Duration(0),
		KeyTiming:          false,
	}
}

// AddFlags registers the settings as flags and binds them.
func (m *Manager) AddFlags(flags *pflag.FlagSet) error {
	flags.String(KeyParametersFile, discover.ParameterFile, "parameters document")
	flags.String(KeyOutputFile, discover.ResultFile, "cluster descriptor written after apply")
	flags.String(KeyTerraformBinary, terraform.DefaultBinary, "terraform executable")
	flags.String(KeyTerraformDir, terraform.DefaultDir, "directory holding one terraform configuration per cloud")
	flags.String(KeyStateFile, terraform.DefaultStateFile, "terraform state file, relative to the cloud directory")
	flags.String(KeyLogLevel, logging.DefaultLevel, "log level (debug, info, warn, error)")
	flags.Duration(KeyTimeout, 0, "abort the command after this duration (0 disables)")
	flags.Bool(KeyTiming, false, "show command timing")

	err := m.Viper.BindPFlags(flags)
	if err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	return nil
}

// Load reads the config file, if any, and returns the settings with the parameters,
// output and terraform paths made absolute.
func (m *Manager) Load() (*Settings, error) {
	err := m.Viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	settings := &Settings{}

	err = m.Viper.Unmarshal(settings, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	for _, path := range []*string{&settings.ParametersFile, &settings.OutputFile, &settings.TerraformDir} {
		expanded, err := fsutil.ExpandPath(*path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %q: %w", *path, err)
		}

		*path = expanded
	}

	return settings, nil
}

// ConfigFileUsed returns the config file read by Load, or "".
func (m *Manager) ConfigFileUsed() string {
	return m.Viper.ConfigFileUsed()
}
