package static

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"ShopLite/pkg/kit"
)

const (
	serverName  = "ShopLite HTTP Server"
	servedByHdr = "X-Served-By"

	notFoundDocument = "404.html"
	cacheOneDay      = "public, max-age=86400"
)

var builtinNotFound = []byte(`<!DOCTYPE html>
<html>
<head><title>404 - Not Found</title></head>
<body>
<h1>404 - Page Not Found</h1>
<p>The requested page does not exist on this server.</p>
<a href="/">Back to home</a>
</body>
</html>
`)

// Server serves the public directory and the /api endpoints.
type Server struct {
	PublicDir  string
	Version    string
	Env        string
	Deployment string
	Log        *zap.Logger

	startedAt time.Time
}

func NewServer(publicDir, version, env, deployment string, log *zap.Logger) *Server {
	return &Server{
		PublicDir:  publicDir,
		Version:    version,
		Env:        env,
		Deployment: deployment,
		Log:        log,
		startedAt:  time.Now(),
	}
}

// ServeStatic resolves the request path and streams the first candidate
// that opens as a regular file. There is no exists-then-read gap: each
// candidate is opened once and the open error is classified.
func (s *Server) ServeStatic(w http.ResponseWriter, r *http.Request) {
	res := resolve(r.URL.Path)
	if res.RedirectTo != "" {
		http.Redirect(w, r, res.RedirectTo, http.StatusMovedPermanently)
		return
	}

	for _, cand := range res.Candidates {
		full := filepath.Join(s.PublicDir, filepath.FromSlash(cand))

		f, err := os.Open(full)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			s.serverError(w, cand, err)
			return
		}

		st, err := f.Stat()
		if err != nil {
			_ = f.Close()
			s.serverError(w, cand, err)
			return
		}
		if st.IsDir() {
			_ = f.Close()
			continue
		}

		s.serveFile(w, f, filepath.Ext(full))
		_ = f.Close()
		return
	}

	s.notFound(w)
}

func (s *Server) serveFile(w http.ResponseWriter, f *os.File, ext string) {
	ct := contentTypeFor(ext)

	w.Header().Set("Content-Type", ct)
	w.Header().Set(servedByHdr, serverName)
	if cacheable(ct) {
		w.Header().Set("Cache-Control", cacheOneDay)
	}

	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, f); err != nil && s.Log != nil {
		s.Log.Warn("static write aborted", zap.Error(err), zap.String("file", f.Name()))
	}
}

func (s *Server) notFound(w http.ResponseWriter) {
	body, err := os.ReadFile(filepath.Join(s.PublicDir, notFoundDocument))
	if err != nil {
		body = builtinNotFound
	}
	kit.WriteHTML(w, http.StatusNotFound, body)
}

// serverError answers any filesystem failure other than not-found with
// the error's code only, never file contents or a trace.
func (s *Server) serverError(w http.ResponseWriter, cand string, err error) {
	code := "unknown"
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		code = pathErr.Err.Error()
	}

	if s.Log != nil {
		s.Log.Error("static read failed", zap.Error(err), zap.String("candidate", cand))
	}
	kit.WritePlain(w, http.StatusInternalServerError, "server error: "+code)
}
