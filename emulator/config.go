package emulator

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/mipsim/cpu"
	"github.com/ezrec/mipsim/translate"
)

var (
	ErrConfigMemory = errors.New(f("memory size must be positive"))
	ErrConfigSteps  = errors.New(f("step limit must not be negative"))
	ErrConfigDump   = errors.New(f("dump size must be between 0 and the memory size"))
	ErrConfigClock  = errors.New(f("clock frequency must be positive"))
)

// Config is the emulator configuration, as read from a YAML file.
type Config struct {
	Memory   int              `yaml:"memory"`    // Memory size, in words.
	MaxSteps int              `yaml:"max_steps"` // Cycle limit; 0 is unlimited.
	Trace    bool             `yaml:"trace"`     // Log every cycle with its source line.
	Dump     int              `yaml:"dump"`      // Memory words to report after a run.
	ClockMHz float64          `yaml:"clock_mhz"` // Clocked driver frequency.
	Equates  map[string]int32 `yaml:"equates"`   // Predefined .equ constants.
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Memory:   cpu.MEMORY_WORDS,
		Dump:     16,
		ClockMHz: 1000,
	}
}

// Validate checks the configuration for consistency.
func (config Config) Validate() (err error) {
	switch {
	case config.Memory <= 0:
		err = ErrConfigMemory
	case config.MaxSteps < 0:
		err = ErrConfigSteps
	case config.Dump < 0 || config.Dump > config.Memory:
		err = ErrConfigDump
	case config.ClockMHz <= 0:
		err = ErrConfigClock
	}

	return
}

// ReadConfig decodes a YAML configuration over the defaults. Unknown keys
// are rejected.
func ReadConfig(input io.Reader) (config Config, err error) {
	config = DefaultConfig()

	decoder := yaml.NewDecoder(input)
	decoder.KnownFields(true)

	err = decoder.Decode(&config)
	if errors.Is(err, io.EOF) {
		// Empty document
		err = nil
	}
	if err != nil {
		return
	}

	err = config.Validate()
	return
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (config Config, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	config, err = ReadConfig(inf)
	if err != nil {
		err = translate.Errorf("config %v: %v", path, err)
		return
	}

	return
}
