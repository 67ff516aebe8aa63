// Package config loads the simulator settings from flags, the environment and
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sarchlab/ramsim/logging"
	"github.com/sarchlab/ramsim/ram"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables that override the
// defaults, e.g. RAMSIM_DELAY_SCALE.
const EnvPrefix = "RAMSIM"

// ErrInvalidConfig is returned when a setting is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings of one simulator run.
type Config struct {
	Seed          uint64
	Modules       []int
	RandomModules int
	Technology    string
	DelayScale    float64
	DegradeMax    int
	ShutdownGrace time.Duration
	SelfTest      bool
	Report        bool
	Snapshot      bool
	LogLevel      string
	ParallelIDs   bool
}

// Default returns the settings of the reference scenario.
func Default() Config {
	return Config{
		Modules:       []int{16, 32},
		DelayScale:    1,
		ShutdownGrace: 5 * time.Second,
		LogLevel:      "info",
	}
}

// RegisterFlags adds the configuration flags to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	d := Default()

	flags.Uint64("seed", d.Seed, "random seed, 0 picks one from the clock")
	flags.IntSlice("modules", d.Modules, "capacities in GB of the modules to allocate")
	flags.Int("random-modules", d.RandomModules,
		"number of modules with random capacities to allocate instead of --modules")
	flags.String("technology", d.Technology, "force the memory technology (DDR3, DDR4, DDR5, LPDDR4)")
	flags.Float64("delay-scale", d.DelayScale, "multiplier applied to every simulated delay")
	flags.Int("degrade-max", d.DegradeMax, "maximum health lost per pass by an installed module")
	flags.Duration("shutdown-grace", d.ShutdownGrace, "how long to wait for background tasks on shutdown")
	flags.Bool("self-test", d.SelfTest, "dump the memory regions and run the self-test before install")
	flags.Bool("report", d.Report, "print the memory report after install and uninstall")
	flags.Bool("snapshot", d.Snapshot, "dump the engine snapshot before exiting")
	flags.String("log-level", d.LogLevel, "log level (debug, info, warn, error)")
	flags.Bool("parallel-ids", d.ParallelIDs, "use globally unique IDs instead of sequential ones")
}

// Load reads the configuration. Values come, by increasing priority, from
// the defaults, the env files (".env" if none is given), the environment and
// the flags that were set on the command line. Missing env files are
// ignored.
func Load(flags *pflag.FlagSet, envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, f := range envFiles {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if flags != nil {
		err := v.BindPFlags(flags)
		if err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	modules, err := intSlice(v.Get("modules"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: modules: %w", ErrInvalidConfig, err)
	}

	cfg := Config{
		Seed:          v.GetUint64("seed"),
		Modules:       modules,
		RandomModules: v.GetInt("random-modules"),
		Technology:    v.GetString("technology"),
		DelayScale:    v.GetFloat64("delay-scale"),
		DegradeMax:    v.GetInt("degrade-max"),
		ShutdownGrace: v.GetDuration("shutdown-grace"),
		SelfTest:      v.GetBool("self-test"),
		Report:        v.GetBool("report"),
		Snapshot:      v.GetBool("snapshot"),
		LogLevel:      v.GetString("log-level"),
		ParallelIDs:   v.GetBool("parallel-ids"),
	}

	return cfg, cfg.Validate()
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("seed", d.Seed)
	v.SetDefault("modules", d.Modules)
	v.SetDefault("random-modules", d.RandomModules)
	v.SetDefault("technology", d.Technology)
	v.SetDefault("delay-scale", d.DelayScale)
	v.SetDefault("degrade-max", d.DegradeMax)
	v.SetDefault("shutdown-grace", d.ShutdownGrace)
	v.SetDefault("self-test", d.SelfTest)
	v.SetDefault("report", d.Report)
	v.SetDefault("snapshot", d.Snapshot)
	v.SetDefault("log-level", d.LogLevel)
	v.SetDefault("parallel-ids", d.ParallelIDs)
}

// Validate checks that every setting is in range.
func (c Config) Validate() error {
	if c.DelayScale < 0 {
		return fmt.Errorf("%w: negative delay scale %v", ErrInvalidConfig, c.DelayScale)
	}

	if c.RandomModules < 0 {
		return fmt.Errorf("%w: negative random module count %d", ErrInvalidConfig, c.RandomModules)
	}

	for _, capacity := range c.Modules {
		if capacity <= 0 {
			return fmt.Errorf("%w: module capacity %d", ErrInvalidConfig, capacity)
		}
	}

	if c.DegradeMax < 0 || c.DegradeMax > ram.FullHealth {
		return fmt.Errorf("%w: degrade max %d", ErrInvalidConfig, c.DegradeMax)
	}

	if c.ShutdownGrace <= 0 {
		return fmt.Errorf("%w: shutdown grace %s", ErrInvalidConfig, c.ShutdownGrace)
	}

	if c.Technology != "" {
		if _, err := ram.ParseTechnology(c.Technology); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// TechnologyOverride returns the forced technology, or "" if the technology
// is detected.
func (c Config) TechnologyOverride() ram.Technology {
	if c.Technology == "" {
		return ""
	}

	tech, err := ram.ParseTechnology(c.Technology)
	if err != nil {
		return ""
	}

	return tech
}

// intSlice accepts the shapes a list can take in viper: a slice from the
// defaults or flags, or a comma or space separated string from the
// environment.
func intSlice(value any) ([]int, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []int:
		return v, nil
	case []any:
		ints := make([]int, 0, len(v))
		for _, item := range v {
			n, err := strconv.Atoi(strings.TrimSpace(fmt.Sprint(item)))
			if err != nil {
				return nil, err
			}
			ints = append(ints, n)
		}
		return ints, nil
	case string:
		s := strings.Trim(v, "[]")
		fields := strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || r == ' '
		})

		ints := make([]int, 0, len(fields))
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, err
			}
			ints = append(ints, n)
		}
		return ints, nil
	default:
		return nil, fmt.Errorf("unsupported list %v", value)
	}
}
