package middleware

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"
)

var gzipPool = sync.Pool{
	New: func() any {
		w, _ := gzip.NewWriterLevel(nil, gzip.DefaultCompression)
		return w
	},
}

type gzipWriter struct {
	gin.ResponseWriter
	gz    *gzip.Writer
	wrote bool
}

func (w *gzipWriter) Write(data []byte) (int, error) {
	w.wrote = true
	return w.gz.Write(data)
}

func (w *gzipWriter) WriteString(s string) (int, error) {
	w.wrote = true
	return w.gz.Write([]byte(s))
}

// Gzip compresses responses for clients that accept it. The storefront's
// mobile client always does; list payloads with formatted strings compress
// well.
//
// Registered before the envelope middleware so that envelopes written after
// the handler chain still flow through the open compressor. When no body was
// written the compressor is discarded instead of closed: closing an unused
// gzip writer emits a non-empty stream that would mark the response written.
func Gzip() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") {
			c.Next()
			return
		}

		gz := gzipPool.Get().(*gzip.Writer)
		defer gzipPool.Put(gz)
		gz.Reset(c.Writer)

		c.Header("Content-Encoding", "gzip")
		c.Header("Vary", "Accept-Encoding")

		gw := &gzipWriter{ResponseWriter: c.Writer, gz: gz}
		c.Writer = gw
		defer func() {
			c.Writer = gw.ResponseWriter
			if !gw.wrote {
				c.Writer.Header().Del("Content-Encoding")
				return
			}
			_ = gz.Close()
			c.Header("Content-Length", "")
		}()

		c.Next()
	}
}
