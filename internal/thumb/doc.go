// Package thumb tracks the state of a single thumbnailing job.
//
// A Job holds the source reference of the image being thumbnailed, whether that
// reference points at a remote URL or a local file, the detected format
// (mime-type), and a sticky error flag. The source is validated once, when the
// job is created:
//
//	job, err := thumb.New("/srv/images/cat.png")
//	if err != nil {
//	    // job.HasError() is true and job.ErrorMessage() holds the reason
//	    log.Fatal(err)
//	}
//
// # Remote References
//
// Any reference containing "http://" or "https://" is treated as remote.
// Remote jobs never touch the local filesystem.
//
// # Sticky Errors
//
// Every error a Job raises goes through the same path: the error flag is set,
// the message is stored, and the error is returned to the caller. Once the flag
// is set, callers should stop processing that job even if they recovered from
// the returned error. SetHasError(false) clears the flag.
//
// # Plugins
//
// Optional behaviour is added through a Registry of named operations with a
// fixed signature. The registry records what was imported; it does not decide
// when or in which order operations run.
//
// # Thread Safety
//
// A Job is not safe for concurrent use. Create one per goroutine.
package thumb
