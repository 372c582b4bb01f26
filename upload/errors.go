package upload

import "fmt"

// Step names used in error text and structured logs.
const (
	stepCreate = "create file resource"
	stepFill   = "fill file resource"
	stepJob    = "create symbol upload job"
)

// A FileError reports a local symbol archive that could not be opened or
// read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("symbol file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// An UploadError reports a non-2xx response from the API. Body holds the raw
// response body for diagnostics.
type UploadError struct {
	Step   string
	Status int
	Body   string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("%s: server returned %d: %s", e.Step, e.Status, snippet(e.Body))
}

// A ProtocolError reports a 2xx response the client cannot use: the body is
// not JSON, or a required field is absent.
type ProtocolError struct {
	Step    string
	Missing string
	Err     error
}

func (e *ProtocolError) Error() string {
	if e.Missing != "" {
		return fmt.Sprintf("%s: response lacks %q", e.Step, e.Missing)
	}
	return fmt.Sprintf("%s: undecodable response: %v", e.Step, e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// A DependencyError reports that the client could not be constructed, before
// any network call was attempted.
type DependencyError struct {
	Reason string
	Err    error
}

func (e *DependencyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("symbol uploader unavailable: %s: %v", e.Reason, e.Err)
	}
	return "symbol uploader unavailable: " + e.Reason
}

func (e *DependencyError) Unwrap() error { return e.Err }

// snippet trims a response body down to something fit for one log line.
func snippet(body string) string {
	const max = 512
	if len(body) > max {
		return body[:max] + "..."
	}
	return body
}
