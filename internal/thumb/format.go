package thumb

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

var formatMimeTypes = map[imaging.Format]string{
	imaging.JPEG: "image/jpeg",
	imaging.PNG:  "image/png",
	imaging.GIF:  "image/gif",
	imaging.TIFF: "image/tiff",
	imaging.BMP:  "image/bmp",
}

// DetectFormat determines the mime-type of the source and stores it with
// SetFormat. Local sources are sniffed from their content (header only, the
// image is not decoded). Remote sources are never fetched; their format comes
// from the extension of the URL path.
func (j *Job) DetectFormat() (string, error) {
	if j.hasError {
		return "", j.Err()
	}
	if j.remote {
		return j.detectRemoteFormat()
	}

	mime, err := mimetype.DetectFile(j.fileName)
	if err != nil {
		return "", j.fail(&OperationError{
			Message: fmt.Sprintf("failed to detect format of %s: %v", j.fileName, err),
			Err:     err,
		})
	}

	format := mime.String()
	if !strings.HasPrefix(format, "image/") {
		return "", j.TriggerError("unsupported image format: " + format)
	}

	j.SetFormat(format)
	j.debugf("detected format %s for %s", format, j.fileName)
	return format, nil
}

func (j *Job) detectRemoteFormat() (string, error) {
	name := j.fileName
	if u, err := url.Parse(j.fileName); err == nil {
		name = u.Path
	}

	f, err := imaging.FormatFromFilename(name)
	if err != nil {
		return "", j.fail(&OperationError{
			Message: "cannot detect format of remote image: " + j.fileName,
			Err:     err,
		})
	}

	format := formatMimeTypes[f]
	j.SetFormat(format)
	j.debugf("detected format %s for %s", format, j.fileName)
	return format, nil
}
