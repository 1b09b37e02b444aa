// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/onda-planner/onda-sync/internal/app"
	"github.com/onda-planner/onda-sync/internal/utils"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip accepts gzip-encoded request bodies and compresses JSON responses
// for clients that advertise gzip support.
func withGZip(next http.Handler) http.Handler {
	compress := middleware.Compress(gzip.DefaultCompression, "application/json")
	return compress(withGZipRequest(next))
}

// withGZipRequest transparently inflates gzip request bodies. Readers are
// pooled and returned on Close.
func withGZipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gzipReader := gzipReaderPool.Get().(*gzip.Reader)
		if err := gzipReader.Reset(r.Body); err != nil {
			gzipReaderPool.Put(gzipReader)
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		r.Body = &pooledReadCloser{Reader: gzipReader, body: r.Body, reader: gzipReader}
		r.Header.Del("Content-Encoding")
		// the decoded length is unknown
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

type pooledReadCloser struct {
	io.Reader
	body   io.Closer
	reader *gzip.Reader
	once   sync.Once
}

func (p *pooledReadCloser) Close() error {
	var err error
	p.once.Do(func() {
		p.reader.Close()
		gzipReaderPool.Put(p.reader)
		err = p.body.Close()
	})
	return err
}
