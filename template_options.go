package ltemplate

import (
	"fmt"
	"strings"
)

// Option configures Compile and NewLoader.
type Option func(*config) error

// DefaultExtension is the template file suffix used unless [WithExtension]
// says otherwise.
const DefaultExtension = ".ltpl"

type config struct {
	strict   bool
	ext      string
	openLibs bool
}

func newConfig(opts []Option) (config, error) {
	cfg := config{
		ext:      DefaultExtension,
		openLibs: true,
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}

// WithStrict rejects templates with unterminated expressions, statements or
// strings instead of leaving them for the Lua compiler.
func WithStrict() Option {
	return func(c *config) error {
		c.strict = true
		return nil
	}
}

// WithExtension sets the file suffix a Loader appends to template names.
// Default is [DefaultExtension].
func WithExtension(ext string) Option {
	return func(c *config) error {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("template extension %q must start with a dot", ext)
		}
		c.ext = ext
		return nil
	}
}

// WithOpenLibs controls whether the Lua standard libraries (string, table,
// math, os, io, ...) are loaded for template execution. Default is true.
func WithOpenLibs(open bool) Option {
	return func(c *config) error {
		c.openLibs = open
		return nil
	}
}
