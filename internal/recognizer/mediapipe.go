package recognizer

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"gocv.io/x/gocv"
)

const scriptName = "gesture_service.py"

// ErrNotRunning is returned when the worker process has been closed.
var ErrNotRunning = errors.New("gesture worker is not running")

// MediaPipeRecognizer implements Recognizer using a Python MediaPipe worker.
//
// The worker loads the model once when it starts. Each frame is written to
// its stdin as a 12-byte big-endian header (rows, cols, channels) followed by
// the raw RGB pixels; the worker answers with one JSON line.
type MediaPipeRecognizer struct {
	config Config
	python string
	script string

	mu      sync.Mutex
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	stdout  *bufio.Reader
	started bool
	closed  bool
}

// NewMediaPipeRecognizer starts the worker and waits for the model to load.
func NewMediaPipeRecognizer(config Config) (*MediaPipeRecognizer, error) {
	if config.ModelPath == "" {
		config.ModelPath = DefaultConfig().ModelPath
	}

	script := config.ScriptPath
	if script == "" {
		script = findScript()
	}
	if script == "" {
		return nil, fmt.Errorf("%s not found", scriptName)
	}

	python := config.Python
	if python == "" {
		python = findVenvPython()
	}
	if python == "" {
		python = "python3"
	}

	r := &MediaPipeRecognizer{
		config: config,
		python: python,
		script: script,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureStarted(); err != nil {
		return nil, err
	}
	return r, nil
}

// Recognize sends a frame to the worker and returns its ranked categories.
func (r *MediaPipeRecognizer) Recognize(frame *gocv.Mat) ([]Category, error) {
	if frame == nil || frame.Empty() {
		return nil, errors.New("empty frame")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureStarted(); err != nil {
		return nil, err
	}

	categories, err := r.roundTrip(frame)
	var reported *workerError
	if err != nil && !errors.As(err, &reported) {
		// The stream is out of sync after a failed exchange; restart on next call.
		if shutdownErr := r.shutdown(); shutdownErr != nil {
			slog.Debug("gesture worker exit", "error", shutdownErr)
		}
	}
	return categories, err
}

// Close shuts down the worker process.
func (r *MediaPipeRecognizer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return r.shutdown()
}

func (r *MediaPipeRecognizer) roundTrip(frame *gocv.Mat) ([]Category, error) {
	if err := writeFrame(r.stdin, frame); err != nil {
		return nil, err
	}

	line, err := r.stdout.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var response workerResponse
	if err := json.Unmarshal(line, &response); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if response.Error != "" {
		return nil, &workerError{message: response.Error}
	}
	return response.Gestures, nil
}

func (r *MediaPipeRecognizer) ensureStarted() error {
	if r.closed {
		return ErrNotRunning
	}
	if r.started {
		return nil
	}

	cmd := exec.Command(r.python, r.script, r.config.ModelPath)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("create stdin pipe: %w", err)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("create stdout pipe: %w", err)
	}

	// Worker diagnostics go straight to our stderr.
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start gesture worker: %w", err)
	}

	reader := bufio.NewReader(stdout)

	// The first line reports whether the model loaded.
	line, err := reader.ReadBytes('\n')
	if err != nil {
		stdin.Close()
		_ = cmd.Wait()
		return fmt.Errorf("gesture worker did not start: %w", err)
	}
	var ready workerResponse
	if err := json.Unmarshal(line, &ready); err != nil || !ready.Ready {
		stdin.Close()
		_ = cmd.Wait()
		if ready.Error != "" {
			return fmt.Errorf("load gesture model %s: %s", r.config.ModelPath, ready.Error)
		}
		return fmt.Errorf("gesture worker sent unexpected handshake: %q", line)
	}

	r.cmd = cmd
	r.stdin = stdin
	r.stdout = reader
	r.started = true

	slog.Info("gesture worker started", "model", r.config.ModelPath, "pid", cmd.Process.Pid)
	return nil
}

func (r *MediaPipeRecognizer) shutdown() error {
	if !r.started {
		return nil
	}

	if r.stdin != nil {
		r.stdin.Close()
	}

	err := r.cmd.Wait()
	r.started = false
	r.cmd = nil
	r.stdin = nil
	r.stdout = nil

	return err
}

// writeFrame writes the frame header and its raw pixel data.
func writeFrame(w io.Writer, frame *gocv.Mat) error {
	header := make([]byte, 12)
	binary.BigEndian.PutUint32(header[0:4], uint32(frame.Rows()))
	binary.BigEndian.PutUint32(header[4:8], uint32(frame.Cols()))
	binary.BigEndian.PutUint32(header[8:12], uint32(frame.Channels()))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := w.Write(frame.ToBytes()); err != nil {
		return fmt.Errorf("write data: %w", err)
	}
	return nil
}

// workerError is a failure the worker reported for one frame. The protocol
// stays in sync, so the worker keeps running.
type workerError struct {
	message string
}

func (e *workerError) Error() string {
	return "gesture worker: " + e.message
}

// workerResponse is the JSON line written by the Python worker.
type workerResponse struct {
	Ready    bool       `json:"ready,omitempty"`
	Gestures []Category `json:"gestures"`
	Error    string     `json:"error,omitempty"`
}

func findScript() string {
	execPath, err := os.Executable()
	var execDir string
	if err == nil {
		execDir = filepath.Dir(execPath)
	}

	candidates := []string{
		filepath.Join("scripts", scriptName),
		filepath.Join("..", "scripts", scriptName),
		filepath.Join(execDir, "scripts", scriptName),
		filepath.Join(os.Getenv("HOME"), ".samvaad", "scripts", scriptName),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			if abs, err := filepath.Abs(path); err == nil {
				return abs
			}
			return path
		}
	}
	return ""
}

// findVenvPython looks for a Python interpreter in a virtual environment
// next to the working directory, the executable, or ~/.samvaad.
func findVenvPython() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	execDir := filepath.Dir(execPath)

	candidates := []string{
		"venv/bin/python",
		"../venv/bin/python",
		filepath.Join(execDir, "venv/bin/python"),
		filepath.Join(os.Getenv("HOME"), ".samvaad/venv/bin/python"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			if abs, err := filepath.Abs(path); err == nil {
				return abs
			}
			return path
		}
	}
	return ""
}
