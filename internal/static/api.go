package static

import (
	"net/http"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"ShopLite/pkg/kit"
)

type statusResponse struct {
	Status          string  `json:"status"`
	Timestamp       string  `json:"timestamp"`
	Server          string  `json:"server"`
	Version         string  `json:"version"`
	Environment     string  `json:"environment"`
	RuntimeVersion  string  `json:"runtime_version"`
	Deployment      string  `json:"deployment"`
	PublicDirectory string  `json:"public_directory"`
	UptimeSeconds   float64 `json:"uptime"`
}

type infoResponse struct {
	Project     string   `json:"project"`
	Description string   `json:"description"`
	Endpoints   []string `json:"endpoints"`
	TotalFiles  int      `json:"total_files"`
	StaticFiles []string `json:"static_files"`
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache")
	kit.WriteJSON(w, http.StatusOK, statusResponse{
		Status:          "online",
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		Server:          serverName,
		Version:         s.Version,
		Environment:     s.Env,
		RuntimeVersion:  runtime.Version(),
		Deployment:      s.Deployment,
		PublicDirectory: s.PublicDir,
		// time.Since is monotonic, so uptime never goes backwards
		// across successive calls.
		UptimeSeconds: time.Since(s.startedAt).Seconds(),
	})
}

func (s *Server) info(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(s.PublicDir)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("public dir unreadable", zap.Error(err), zap.String("dir", s.PublicDir))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	// Every entry counts, subdirectories included; only regular .html
	// files are listed as pages.
	total := len(entries)
	var htmlFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".html") {
			htmlFiles = append(htmlFiles, e.Name())
		}
	}
	sort.Strings(htmlFiles)

	endpoints := []string{"/"}
	for _, f := range htmlFiles {
		endpoints = append(endpoints, "/"+f)
	}
	endpoints = append(endpoints, "/api/status", "/api/info")

	kit.WriteJSON(w, http.StatusOK, infoResponse{
		Project:     "ShopLite",
		Description: "Static web server for the ShopLite storefront",
		Endpoints:   endpoints,
		TotalFiles:  total,
		StaticFiles: htmlFiles,
	})
}
