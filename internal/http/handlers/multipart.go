package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"roomdesign/internal/imagegen"
)

const (
	maxFieldBytes = 64 << 10
	maxFields     = 32
	maxFiles      = 16
)

// maxBodyBytes bounds the whole request, leaving headroom per file for
// oversize detection and part headers.
var maxBodyBytes int64 = maxFiles*(imagegen.MaxImageBytes+1<<20) + maxFields*maxFieldBytes

// form is a fully read multipart body. Files are truncated one byte past
// imagegen.MaxImageBytes so oversize uploads are detected without buffering
// them whole.
type form struct {
	values map[string]string
	files  map[string][]imagegen.Upload
}

func (f *form) value(name string) string {
	return strings.TrimSpace(f.values[name])
}

func (f *form) file(name string) (imagegen.Upload, bool) {
	files := f.files[name]
	if len(files) == 0 {
		return imagegen.Upload{}, false
	}
	return files[0], true
}

func readForm(w http.ResponseWriter, r *http.Request) (*form, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/form-data" {
		return nil, badRequestError("Expected multipart/form-data body")
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, badRequestError("Malformed multipart body")
	}

	f := &form{values: map[string]string{}, files: map[string][]imagegen.Upload{}}
	count, fields := 0, 0
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return f, nil
		}
		if err != nil {
			return nil, bodyError(err)
		}
		name := strings.TrimSuffix(part.FormName(), "[]")
		if name == "" {
			_ = part.Close()
			continue
		}

		if part.FileName() == "" {
			if fields++; fields > maxFields {
				_ = part.Close()
				return nil, badRequestError(fmt.Sprintf("At most %d form fields are accepted", maxFields))
			}
			data, err := io.ReadAll(io.LimitReader(part, maxFieldBytes+1))
			_ = part.Close()
			if err != nil {
				return nil, bodyError(err)
			}
			if len(data) > maxFieldBytes {
				return nil, badRequestError(fmt.Sprintf("Field %s is too large", name))
			}
			f.values[name] = string(data)
			continue
		}

		if count++; count > maxFiles {
			_ = part.Close()
			return nil, badRequestError(fmt.Sprintf("At most %d files may be uploaded", maxFiles))
		}
		data, err := io.ReadAll(io.LimitReader(part, imagegen.MaxImageBytes+1))
		_ = part.Close()
		if err != nil {
			return nil, bodyError(err)
		}
		f.files[name] = append(f.files[name], imagegen.Upload{
			Filename:    part.FileName(),
			ContentType: part.Header.Get("Content-Type"),
			Data:        data,
		})
	}
}

// bodyError maps read failures to client errors. Only an exceeded body limit
// gets its own message.
func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return badRequestError("Request body too large")
	}
	return badRequestError("Malformed multipart body")
}

func requireFields(f *form, names ...string) error {
	for _, name := range names {
		if f.value(name) == "" {
			return badRequestError(name + " is required")
		}
	}
	return nil
}
