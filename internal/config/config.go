package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jask/filetally/internal/selection"
)

// Config holds application configuration.
type Config struct {
	Display DisplayConfig
	Picker  PickerConfig
	UI      UIConfig
	Log     LogConfig
	// Print renders the paths in Args to stdout instead of starting the TUI.
	Print bool     `mapstructure:"print"`
	Args  []string `mapstructure:"-"`
}

// DisplayConfig mirrors selection.DisplayConfig in config-file form.
type DisplayConfig struct {
	PrependUserName bool   `mapstructure:"prepend_user_name"`
	Unit            string `mapstructure:"unit"`
	Class           string `mapstructure:"class"`
}

// PickerConfig holds directory scan settings.
type PickerConfig struct {
	Dir        string   `mapstructure:"dir"`
	ShowHidden bool     `mapstructure:"show_hidden"`
	Extensions []string `mapstructure:"extensions"`
}

type UIConfig struct {
	UserName string `mapstructure:"user_name"`
}

type LogConfig struct {
	Path string `mapstructure:"path"`
}

var ErrInvalidUnit = errors.New("invalid display unit")

// Selection converts the display section into renderer settings.
func (c Config) Selection() selection.DisplayConfig {
	unit, _ := selection.ParseUnit(c.Display.Unit)
	return selection.DisplayConfig{
		PrependUserName: c.Display.PrependUserName,
		Unit:            unit,
		Class:           c.Display.Class,
	}
}

// Validate rejects values the renderer cannot use.
func (c Config) Validate() error {
	if _, ok := selection.ParseUnit(c.Display.Unit); !ok {
		return fmt.Errorf("%w: %q (want kilobytes or bytes)", ErrInvalidUnit, c.Display.Unit)
	}
	return nil
}

// Load reads configuration from file, env and command-line args. Env var
// overrides use prefix FILETALLY_; flags win over both.
func Load(args []string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	flags := newFlagSet()
	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	bindFlags(v, flags)

	v.SetConfigType("toml")
	readFile := true
	if cfgPath, err := Path(); err == nil {
		v.SetConfigFile(cfgPath)
	} else {
		// no home directory: defaults, env and flags only
		readFile = false
	}

	v.SetEnvPrefix("FILETALLY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if readFile {
		if err := readConfigFile(v); err != nil {
			return Config{}, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Picker.Extensions = splitList(c.Picker.Extensions)
	c.Print = v.GetBool("print")
	c.Args = flags.Args()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Path is $FILETALLY_CONFIG, or config.toml under the user config dir.
func Path() (string, error) {
	if p := os.Getenv("FILETALLY_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "filetally", "config.toml"), nil
}

// Save writes the persistent settings to the config file, creating its
// directory if needed.
func Save(cfg Config) error {
	return update(func(v *viper.Viper) {
		v.Set("display.prepend_user_name", cfg.Display.PrependUserName)
		v.Set("display.unit", cfg.Display.Unit)
		v.Set("display.class", cfg.Display.Class)
		v.Set("picker.dir", cfg.Picker.Dir)
		v.Set("picker.show_hidden", cfg.Picker.ShowHidden)
		v.Set("picker.extensions", cfg.Picker.Extensions)
		v.Set("ui.user_name", cfg.UI.UserName)
		v.Set("log.path", cfg.Log.Path)
	})
}

// SavePrependUserName stores the prefix setting and leaves every other key
// in the file as it was. Flag and env overrides are never written.
func SavePrependUserName(on bool) error {
	return update(func(v *viper.Viper) {
		v.Set("display.prepend_user_name", on)
	})
}

// update reads only the file layer, applies set and writes it back.
func update(set func(v *viper.Viper)) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if err := readConfigFile(v); err != nil {
		return err
	}
	set(v)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// readConfigFile treats a missing file as empty.
func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("display.prepend_user_name", false)
	v.SetDefault("display.unit", string(selection.UnitKilobytes))
	v.SetDefault("display.class", "file")
	v.SetDefault("picker.dir", ".")
	v.SetDefault("picker.show_hidden", false)
	v.SetDefault("picker.extensions", []string{})
	v.SetDefault("ui.user_name", os.Getenv("USER"))
	v.SetDefault("log.path", "")
	v.SetDefault("print", false)
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("filetally", pflag.ContinueOnError)
	flags.Bool("prefix", false, "prefix each line with the user name")
	flags.String("name", "", "user name used as line prefix")
	flags.String("unit", "", "size unit: kilobytes or bytes")
	flags.String("dir", "", "directory the picker lists")
	flags.Bool("print", false, "print lines for FILE arguments instead of starting the TUI")
	return flags
}

// bindFlags binds only flags set on the command line so unset flags don't
// mask file and env values.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	keys := map[string]string{
		"prefix": "display.prepend_user_name",
		"name":   "ui.user_name",
		"unit":   "display.unit",
		"dir":    "picker.dir",
		"print":  "print",
	}
	flags.Visit(func(f *pflag.Flag) {
		if key, ok := keys[f.Name]; ok {
			_ = v.BindPFlag(key, f)
		}
	})
}

// splitList lets FILETALLY_PICKER_EXTENSIONS be given as "zip,schematic".
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.FieldsFunc(item, func(r rune) bool { return r == ',' || r == ' ' }) {
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
