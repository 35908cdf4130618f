package predictor

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/okian/footrisk/pkg/metrics"
)

const fallbackMIME = "application/octet-stream"

// ImageFile is a named, readable image source.
type ImageFile interface {
	Name() string
	Open() (io.ReadCloser, error)
}

type diskFile struct{ path string }

// FileOnDisk returns an ImageFile that reads path.
func FileOnDisk(path string) ImageFile { return diskFile{path: path} }

func (f diskFile) Name() string { return filepath.Base(f.path) }

func (f diskFile) Open() (io.ReadCloser, error) { return os.Open(f.path) }

type memFile struct {
	name string
	data []byte
}

// InMemoryFile returns an ImageFile over data.
func InMemoryFile(name string, data []byte) ImageFile { return memFile{name: name, data: data} }

func (f memFile) Name() string { return f.name }

func (f memFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.data)), nil
}

type uploadedFile struct{ fh *multipart.FileHeader }

// UploadedFile returns an ImageFile over a multipart form upload.
func UploadedFile(fh *multipart.FileHeader) ImageFile { return uploadedFile{fh: fh} }

func (f uploadedFile) Name() string { return f.fh.Filename }

func (f uploadedFile) Open() (io.ReadCloser, error) { return f.fh.Open() }

// EncodeImage reads f and returns it as a data:<mime>;base64,<payload> string.
func EncodeImage(f ImageFile) (string, error) {
	return encodeImage(context.Background(), f)
}

func encodeImage(ctx context.Context, f ImageFile) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", imageError(f, err)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(ctxReader{ctx: ctx, r: rc})
	if err != nil {
		return "", imageError(f, err)
	}
	metrics.RecordImageEncoded(len(data))
	return "data:" + detectMIME(f.Name(), data) + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// ProcessImages encodes every file concurrently and returns the data URIs in
// input order. The first failure cancels the remaining reads and is returned
// at once, without waiting for reads that ignore the cancellation.
func ProcessImages(ctx context.Context, files []ImageFile) ([]string, error) {
	out := make([]string, len(files))
	if len(files) == 0 {
		return out, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Workers write into their own buffer so stragglers never touch out after
	// an early return.
	results := make([]string, len(files))
	errc := make(chan error, 1)
	done := make(chan struct{})

	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f ImageFile) {
			defer wg.Done()
			s, err := encodeImage(ctx, f)
			if err != nil {
				select {
				case errc <- err:
					cancel()
				default:
				}
				return
			}
			results[i] = s
		}(i, f)
	}
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case err := <-errc:
		return nil, err
	case <-done:
	}
	// A failure can land just before done closes.
	select {
	case err := <-errc:
		return nil, err
	default:
	}
	copy(out, results)
	return out, nil
}

func imageError(f ImageFile, err error) *RequestFailedError {
	metrics.RecordImageError()
	return &RequestFailedError{
		Message: fmt.Sprintf("read image %q: %v", f.Name(), err),
		Err:     err,
	}
}

func detectMIME(name string, data []byte) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); t != "" {
		if mt, _, err := mime.ParseMediaType(t); err == nil {
			return mt
		}
	}
	if len(data) > 0 {
		if mt, _, err := mime.ParseMediaType(http.DetectContentType(data)); err == nil {
			return mt
		}
	}
	return fallbackMIME
}

// ctxReader stops reading once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
