package vrt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/uikit/internal/logger"
	uikiterrors "github.com/alexisbeaulieu97/uikit/pkg/errors"
)

// waitDelay bounds how long a cancelled task may keep its output open.
const waitDelay = 2 * time.Second

// Exit statuses reported when a task cannot be started.
const (
	StatusNotFound     = 127
	StatusLaunchFailed = 1
)

// TaskResult describes how one task finished.
type TaskResult struct {
	Name     string
	Status   int
	Stdout   string
	Stderr   string
	Duration time.Duration
	Err      error
}

// Result aggregates a concurrent run. Status is the first non-zero task
// status in task order, or 0.
type Result struct {
	Status int
	Tasks  []TaskResult
}

// Runner launches tasks and streams their output.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	// Dir is the working directory for tasks and the starting point of the
	// node_modules/.bin lookup. Empty means the current directory.
	Dir string

	log *logger.Logger
}

// NewRunner creates a Runner writing to the process's stdout and stderr.
func NewRunner(log *logger.Logger) *Runner {
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		log:    log.WithComponent("vrt"),
	}
}

// RunConcurrently starts every task at once and waits for all of them. The
// returned error is the first task failure to occur, as a *errors.TaskError.
func (r *Runner) RunConcurrently(ctx context.Context, tasks ...Task) (Result, error) {
	results := make([]TaskResult, len(tasks))
	mu := &sync.Mutex{}

	var g errgroup.Group
	for i, task := range tasks {
		g.Go(func() error {
			results[i] = r.run(ctx, mu, i, task)
			if results[i].Status != 0 {
				return uikiterrors.NewTaskError(task.Name, results[i].Status, results[i].Err)
			}
			return nil
		})
	}
	err := g.Wait()

	result := Result{Tasks: results}
	for _, tr := range results {
		if tr.Status != 0 {
			result.Status = tr.Status
			break
		}
	}
	return result, err
}

func (r *Runner) run(ctx context.Context, mu *sync.Mutex, index int, task Task) TaskResult {
	start := time.Now()
	res := TaskResult{Name: task.Name}

	stdout, stderr := r.writers()
	outWriter := newPrefixWriter(mu, stdout, taskPrefix(stdout, task.Name, index))
	errWriter := newPrefixWriter(mu, stderr, taskPrefix(stderr, task.Name, index))

	binary, err := r.resolveBinary(task.Binary)
	if err != nil {
		res.Status = StatusNotFound
		res.Err = err
		res.Duration = time.Since(start)
		r.log.Error(err, fmt.Sprintf("task %s: binary not found", task.Name))
		return res
	}

	cmd := exec.CommandContext(ctx, binary, task.Args...)
	cmd.Env = buildEnv(task.Env)
	cmd.Dir = r.Dir
	cmd.Stdout = outWriter
	cmd.Stderr = errWriter
	cmd.WaitDelay = waitDelay

	r.log.Debugf("task %s: %s %s", task.Name, binary, strings.Join(task.Args, " "))
	err = cmd.Run()
	_ = outWriter.Flush()
	_ = errWriter.Flush()

	res.Stdout = outWriter.Output()
	res.Stderr = errWriter.Output()
	res.Duration = time.Since(start)
	res.Status, res.Err = exitStatus(err)

	if res.Status != 0 {
		r.log.Warnf("task %s exited with status %d", task.Name, res.Status)
	} else {
		r.log.Debugf("task %s finished in %s", task.Name, res.Duration)
	}
	return res
}

func (r *Runner) writers() (io.Writer, io.Writer) {
	stdout, stderr := r.Stdout, r.Stderr
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	return stdout, stderr
}

// exitStatus maps the result of cmd.Run onto a process status.
func exitStatus(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code, nil
		}
		return StatusLaunchFailed, err
	}
	if errors.Is(err, exec.ErrNotFound) {
		return StatusNotFound, err
	}
	return StatusLaunchFailed, err
}

// resolveBinary finds name on PATH, then in node_modules/.bin of Dir and
// each of its parents.
func (r *Runner) resolveBinary(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty binary name: %w", exec.ErrNotFound)
	}
	if strings.ContainsRune(name, filepath.Separator) {
		return name, nil
	}
	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}

	dir := r.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", name, err)
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", name, err)
	}

	for {
		candidate := filepath.Join(dir, "node_modules", ".bin", name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("resolve %s: %w", name, exec.ErrNotFound)
}

func buildEnv(custom map[string]string) []string {
	env := os.Environ()
	keys := make([]string, 0, len(custom))
	for k := range custom {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, fmt.Sprintf("%s=%s", k, custom[k]))
	}
	return env
}
