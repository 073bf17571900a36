// Package vrt runs the visual regression test tooling: external commands
// launched side by side with prefixed output and a single exit status.
package vrt

// DefaultPort is the Storybook port used when none is given.
const DefaultPort = "9001"

// ChromaticName is the task name and binary of the Chromatic CLI.
const ChromaticName = "chromatic"

// AppCodeEnv is the variable carrying the Chromatic project token.
const AppCodeEnv = "CHROMATIC_APP_CODE"

// Task is one external command to run.
type Task struct {
	Name   string
	Binary string
	Args   []string
	Env    map[string]string
}

// ChromaticTask builds the Chromatic invocation against a Storybook served
// on port. The app code is forwarded even when empty.
func ChromaticTask(port, appCode string) Task {
	if port == "" {
		port = DefaultPort
	}
	return Task{
		Name:   ChromaticName,
		Binary: ChromaticName,
		Args:   []string{"test", "--storybook-port", port, "--no-interactive", "--exit-zero-on-changes"},
		Env:    map[string]string{AppCodeEnv: appCode},
	}
}

// ParsePortArg returns the value following "-p" in args, or DefaultPort when
// the flag is absent or has no value.
func ParsePortArg(args []string) string {
	for i, arg := range args {
		if arg == "-p" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return DefaultPort
}
