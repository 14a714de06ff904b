package lower

import "github.com/rs/zerolog"

// Config holds the Lowerer's tunables. It is built from a set of Options
// rather than exposed as a public struct literal, the pattern used
// throughout the droyo-go-xml lineage this module descends from.
type Config struct {
	// ComplexTypePrefix names the generated complex/simple types
	// allocated for every array, class, and primitive union the
	// lowerer encounters ("complexType1", "complexType2", ...).
	ComplexTypePrefix string
	Logger            zerolog.Logger
}

type Option func(*Config)

// ComplexTypePrefix overrides the default "complexType" prefix used when
// naming generated types.
func ComplexTypePrefix(prefix string) Option {
	return func(c *Config) { c.ComplexTypePrefix = prefix }
}

// Logger attaches a logger the lowerer reports allocation/collision
// decisions to at debug level.
func Logger(l zerolog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

func defaultConfig() Config {
	return Config{ComplexTypePrefix: "complexType", Logger: zerolog.Nop()}
}
