package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/agiangrant/twmerge/internal/logger"
	"github.com/agiangrant/twmerge/tw"
)

// engineFlags are the flags shared by every command that builds an engine.
type engineFlags struct {
	configPath string
	prefix     string
	verbose    bool
}

func (f *engineFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "", "Path to "+tw.DefaultConfigFile+" (default: search upwards from the current directory)")
	fs.StringVar(&f.prefix, "prefix", "", "Class prefix, overrides the config file")
	fs.BoolVar(&f.verbose, "v", false, "Verbose logging")
}

// session is what a command works with once its flags are parsed.
type session struct {
	engine *tw.Engine
	config *tw.Config
	// source is the config file used, or "" for the built-in defaults.
	source string
	log    *zap.Logger
}

// setup builds the logger, loads the config file and creates the engine.
func (f *engineFlags) setup() (*session, error) {
	log, err := logger.New(f.verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	source := f.configPath
	if source == "" {
		if source, err = FindConfigFile(); err != nil {
			return nil, err
		}
	}

	cfg := tw.DefaultConfig()
	if source != "" {
		fc, err := tw.LoadFile(source)
		if err != nil {
			return nil, err
		}
		if cfg, err = fc.Build(cfg); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", source, err)
		}
		log.Debug("Loaded config", zap.String("path", source))
	}
	if f.prefix != "" {
		cfg.Prefix = f.prefix
	}

	return &session{
		engine: tw.New(tw.WithConfig(cfg), tw.WithLogger(log)),
		config: cfg,
		source: source,
		log:    log,
	}, nil
}

// FindConfigFile looks for twmerge.toml in the current directory and its
// parents. It returns "" when there is none.
func FindConfigFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		path := filepath.Join(dir, tw.DefaultConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// configSummary is what 'twmerge config' prints.
type configSummary struct {
	Source                         string   `toml:"source"`
	Prefix                         string   `toml:"prefix"`
	CacheSize                      int      `toml:"cache_size"`
	ClassGroups                    int      `toml:"class_groups"`
	ConflictingClassGroups         int      `toml:"conflicting_class_groups"`
	ConflictingClassGroupModifiers int      `toml:"conflicting_class_group_modifiers"`
	ThemeScales                    []string `toml:"theme_scales"`
	OrderSensitiveModifiers        []string `toml:"order_sensitive_modifiers"`
	Validators                     []string `toml:"validators"`
}

func summarize(cfg *tw.Config, source string) configSummary {
	if source == "" {
		source = "built-in defaults"
	}
	scales := make([]string, 0, len(cfg.Theme))
	for name := range cfg.Theme {
		scales = append(scales, name)
	}
	slices.Sort(scales)
	return configSummary{
		Source:                         source,
		Prefix:                         cfg.Prefix,
		CacheSize:                      cfg.CacheSize,
		ClassGroups:                    len(cfg.ClassGroups),
		ConflictingClassGroups:         len(cfg.ConflictingClassGroups),
		ConflictingClassGroupModifiers: len(cfg.ConflictingClassGroupModifiers),
		ThemeScales:                    scales,
		OrderSensitiveModifiers:        cfg.OrderSensitiveModifiers,
		Validators:                     tw.ValidatorNames(),
	}
}

// Config implements the 'twmerge config' command
func Config(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	var ef engineFlags
	ef.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := ef.setup()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(summarize(s.config, s.source))
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = stdout.Write(data)
	return err
}

// IsHelp reports whether err only means usage was printed.
func IsHelp(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
