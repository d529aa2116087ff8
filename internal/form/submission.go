package form

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// File is an opaque blob handle pulled out of a multipart submission.
type File struct {
	Filename string
	Size     int64
	Data     []byte
}

// Submission is a key->values multimap plus named binary blobs — the raw
// payload of a single create/update request.
type Submission struct {
	values map[string][]string
	files  map[string]*File
}

func NewSubmission(values map[string][]string, files map[string]*File) *Submission {
	if values == nil {
		values = map[string][]string{}
	}
	if files == nil {
		files = map[string]*File{}
	}
	return &Submission{values: values, files: files}
}

// Get returns the first value for name, trimmed. Empty string means absent.
func (s *Submission) Get(name string) string {
	vs := s.values[name]
	if len(vs) == 0 {
		return ""
	}
	return strings.TrimSpace(vs[0])
}

// File returns the blob submitted under name, or nil.
func (s *Submission) File(name string) *File {
	return s.files[name]
}

// FromRequest builds a Submission from a multipart, urlencoded, or JSON
// request body. JSON payloads must be flat objects; scalar values are
// stringified, everything else is ignored.
func FromRequest(r *http.Request, maxBytes int64) (*Submission, error) {
	ct := r.Header.Get("Content-Type")
	mediaType := ct
	if parsed, _, err := mime.ParseMediaType(ct); err == nil {
		mediaType = parsed
	}

	switch {
	case mediaType == "multipart/form-data":
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			return nil, fmt.Errorf("parse multipart form: %w", err)
		}
		sub := NewSubmission(r.MultipartForm.Value, nil)
		for name, headers := range r.MultipartForm.File {
			if len(headers) == 0 {
				continue
			}
			fh := headers[0]
			f, err := fh.Open()
			if err != nil {
				return nil, fmt.Errorf("open uploaded file %q: %w", name, err)
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return nil, fmt.Errorf("read uploaded file %q: %w", name, err)
			}
			sub.files[name] = &File{
				Filename: fh.Filename,
				Size:     fh.Size,
				Data:     data,
			}
		}
		return sub, nil

	case mediaType == "application/json":
		var raw map[string]any
		dec := json.NewDecoder(io.LimitReader(r.Body, maxBytes))
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode json body: %w", err)
		}
		sub := NewSubmission(nil, nil)
		for k, v := range raw {
			switch val := v.(type) {
			case string:
				sub.values[k] = []string{val}
			case float64:
				sub.values[k] = []string{trimFloat(val)}
			case bool:
				sub.values[k] = []string{fmt.Sprintf("%t", val)}
			case nil:
				// absent
			}
		}
		return sub, nil

	default:
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form: %w", err)
		}
		return NewSubmission(r.PostForm, nil), nil
	}
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
