package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexisbeaulieu97/uikit/internal/config"
)

func validateVRTOptions(opts vrtOptions) error {
	if !config.ValidPort(opts.Port) {
		return fmt.Errorf("invalid port %q: expected a number between 1 and 65535", opts.Port)
	}
	if opts.Dir != "" {
		info, err := os.Stat(opts.Dir)
		if err != nil {
			return fmt.Errorf("working directory does not exist: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("working directory %s is not a directory", opts.Dir)
		}
	}
	return nil
}

func validateRenderOptions(opts renderOptions) error {
	switch opts.Format {
	case formatHTML, formatTerminal:
	default:
		return fmt.Errorf("unknown format %q: expected %s or %s", opts.Format, formatHTML, formatTerminal)
	}
	if opts.Width < 0 {
		return fmt.Errorf("width must not be negative")
	}
	return nil
}

// parseProps turns key=value pairs into a pass-through prop map.
func parseProps(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	props := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid prop %q: expected key=value", pair)
		}
		props[key] = value
	}
	return props, nil
}
