package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Gzip writers and readers are pooled; resetting one is much cheaper than
// allocating it per request.
var (
	compressorPool = sync.Pool{
		New: func() any { return gzip.NewWriter(nil) },
	}
	decompressorPool = sync.Pool{
		New: func() any { return new(gzip.Reader) },
	}
)

// withGZip transparently decompresses gzip request bodies and compresses
// responses for clients that advertise gzip in Accept-Encoding.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			if !decompressRequestBody(w, r) {
				return
			}
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		compressor := compressorPool.Get().(*gzip.Writer)
		compressor.Reset(w)

		next.ServeHTTP(&compressingWriter{ResponseWriter: w, compressor: compressor}, r)

		compressor.Close()
		compressorPool.Put(compressor)
	})
}

// decompressRequestBody swaps the request body for a pooled gzip reader.
// Reports false after replying 400 when the body is not valid gzip.
func decompressRequestBody(w http.ResponseWriter, r *http.Request) bool {
	decompressor := decompressorPool.Get().(*gzip.Reader)
	if err := decompressor.Reset(r.Body); err != nil {
		decompressorPool.Put(decompressor)
		http.Error(w, "Invalid gzip data", http.StatusBadRequest)
		return false
	}

	r.Body = &pooledBody{
		Reader: decompressor,
		release: func() {
			decompressor.Close()
			decompressorPool.Put(decompressor)
		},
	}
	r.Header.Del("Content-Encoding")
	return true
}

// pooledBody returns its gzip reader to the pool on Close.
type pooledBody struct {
	io.Reader
	release func()
}

func (b *pooledBody) Close() error {
	if b.release != nil {
		b.release()
	}
	return nil
}

type compressingWriter struct {
	http.ResponseWriter
	compressor *gzip.Writer
}

func (w *compressingWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *compressingWriter) Write(data []byte) (int, error) {
	return w.compressor.Write(data)
}
