package thumb

import (
	"log"
	"os"
	"regexp"
)

var remotePattern = regexp.MustCompile(`https?://`)

// openFile opens a local source for the readability check.
var openFile = os.Open

// Job holds the mutable state of one thumbnailing operation.
type Job struct {
	fileName     string
	remote       bool
	format       string
	hasError     bool
	errorMessage string
	lastErr      error

	registry *Registry
	plugins  []Plugin
	logger   *log.Logger
}

// Option configures a Job at construction.
type Option func(*Job)

// WithLogger enables debug tracing of validation and raised errors.
func WithLogger(l *log.Logger) Option {
	return func(j *Job) { j.logger = l }
}

// WithRegistry shares an existing registry with the job instead of giving it
// an empty one.
func WithRegistry(r *Registry) Option {
	return func(j *Job) {
		if r != nil {
			j.registry = r
		}
	}
}

// New creates a job for fileName and validates it once.
//
// References containing http:// or https:// are marked remote and skip all
// filesystem checks. Local references must exist and be readable; otherwise
// a *ValidationError is returned. The returned Job is never nil, so the sticky
// error state can still be inspected after a failure.
func New(fileName string, opts ...Option) (*Job, error) {
	j := &Job{
		fileName: fileName,
		registry: NewRegistry(),
	}
	for _, opt := range opts {
		opt(j)
	}

	if err := j.checkSource(); err != nil {
		return j, err
	}
	return j, nil
}

func (j *Job) checkSource() error {
	if remotePattern.MatchString(j.fileName) {
		j.remote = true
		j.debugf("remote image: %s", j.fileName)
		return nil
	}

	// Any stat failure, including a missing parent directory or an
	// unsearchable one, means the file cannot be found.
	if _, err := os.Stat(j.fileName); err != nil {
		return j.fail(&ValidationError{Kind: KindNotFound, Path: j.fileName, Err: err})
	}

	f, err := openFile(j.fileName)
	if err != nil {
		return j.fail(&ValidationError{Kind: KindNotReadable, Path: j.fileName, Err: err})
	}
	f.Close()

	j.debugf("local image ok: %s", j.fileName)
	return nil
}

// TriggerError marks the job as failed with message and returns the
// corresponding *OperationError.
func (j *Job) TriggerError(message string) error {
	return j.fail(&OperationError{Message: message})
}

// fail is the single path through which a job raises errors.
func (j *Job) fail(err error) error {
	j.hasError = true
	j.errorMessage = err.Error()
	j.lastErr = err
	j.debugf("job error: %v", err)
	return err
}

// Err returns the last raised error while the error flag is set.
func (j *Job) Err() error {
	if !j.hasError {
		return nil
	}
	if j.lastErr == nil {
		return &OperationError{Message: j.errorMessage}
	}
	return j.lastErr
}

func (j *Job) debugf(format string, args ...interface{}) {
	if j.logger != nil {
		j.logger.Printf(format, args...)
	}
}

// IsRemote reports whether the source reference is a URL.
func (j *Job) IsRemote() bool { return j.remote }

// FileName returns the source reference.
func (j *Job) FileName() string { return j.fileName }

// SetFileName replaces the source reference. It does not re-validate.
func (j *Job) SetFileName(fileName string) { j.fileName = fileName }

// Format returns the mime-type label, or "" if unset.
func (j *Job) Format() string { return j.format }

// SetFormat sets the mime-type label.
func (j *Job) SetFormat(format string) { j.format = format }

// ErrorMessage returns the last error message, or "" if none.
func (j *Job) ErrorMessage() string { return j.errorMessage }

// SetErrorMessage overwrites the stored error message. While the error flag
// is set, Err reports the new message.
func (j *Job) SetErrorMessage(msg string) {
	j.errorMessage = msg
	j.lastErr = nil
}

// HasError reports whether the sticky error flag is set.
func (j *Job) HasError() bool { return j.hasError }

// SetHasError sets or clears the sticky error flag.
func (j *Job) SetHasError(v bool) {
	j.hasError = v
	if !v {
		j.lastErr = nil
	}
}

// Registry returns the job's plugin registry.
func (j *Job) Registry() *Registry { return j.registry }

// Import adds p's operations to the job's registry.
func (j *Job) Import(p Plugin) error { return j.registry.Import(p) }

// Imported returns the imported plugins in import order.
func (j *Job) Imported() []Plugin { return j.registry.Imported() }

// ImportedFunctions returns a copy of the imported operations keyed by name.
func (j *Job) ImportedFunctions() map[string]Operation { return j.registry.ImportedFunctions() }

// Attach appends p to the job's ordered plugin list. Attached plugins are
// only recorded here.
func (j *Job) Attach(p Plugin) {
	if p != nil {
		j.plugins = append(j.plugins, p)
	}
}

// Plugins returns the attached plugins in attach order.
func (j *Job) Plugins() []Plugin {
	out := make([]Plugin, len(j.plugins))
	copy(out, j.plugins)
	return out
}

// State is a serialisable snapshot of a Job.
type State struct {
	FileName     string   `json:"file_name"`
	Remote       bool     `json:"remote"`
	Format       string   `json:"format,omitempty"`
	HasError     bool     `json:"has_error"`
	ErrorMessage string   `json:"error_message,omitempty"`
	Imported     []string `json:"imported,omitempty"`
	Operations   []string `json:"operations,omitempty"`
	Plugins      []string `json:"plugins,omitempty"`
}

// Snapshot returns a copy of the job's current state.
func (j *Job) Snapshot() State {
	s := State{
		FileName:     j.fileName,
		Remote:       j.remote,
		Format:       j.format,
		HasError:     j.hasError,
		ErrorMessage: j.errorMessage,
		Operations:   j.registry.Names(),
	}
	for _, p := range j.registry.Imported() {
		s.Imported = append(s.Imported, p.Name())
	}
	for _, p := range j.plugins {
		s.Plugins = append(s.Plugins, p.Name())
	}
	return s
}
