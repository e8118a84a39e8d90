// Package swagger serves the compiled OpenAPI document with a Swagger UI
// page and an SSE channel that reloads the page when the document changes.
package swagger

import (
	_ "embed"
	"net/http"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/cors"
)

//go:embed swagger.html
var swaggerUIBase string

func buildSwaggerUI(documentUrl, eventsUrl string) []byte {
	replacer := strings.NewReplacer(
		"%OPENAPI_DOCUMENT_URL%", documentUrl,
		"%EVENTS_URL%", eventsUrl,
	)
	return []byte(replacer.Replace(swaggerUIBase))
}

type Options struct {
	DebounceTime time.Duration

	// BaseUrl is the path prefix the UI is mounted at, "/" by default.
	BaseUrl string

	// AllowedOrigins configures CORS for the document and event endpoints,
	// so external tooling can fetch the spec. Empty means any origin.
	AllowedOrigins []string
}

func DefaultOptions() Options {
	return Options{
		DebounceTime: DefaultDebounceTime,
		BaseUrl:      "/",
	}
}

type urls struct {
	UI       string
	Document string
	Events   string
}

func makeUrls(base string) urls {
	if base == "" {
		base = "/"
	}
	return urls{
		UI:       path.Clean(base),
		Document: path.Join(base, "openapi.json"),
		Events:   path.Join(base, "events"),
	}
}

// Swagger holds the served document. SetDocument swaps it at any time; reads
// and writes are safe concurrently.
type Swagger struct {
	options Options

	broadcaster *broadcaster
	urls        urls

	mu       sync.RWMutex
	document []byte
}

func New(document []byte, opt Options) *Swagger {
	return &Swagger{
		options:     opt,
		broadcaster: newBroadcaster(),
		urls:        makeUrls(opt.BaseUrl),
		document:    slices.Clone(document),
	}
}

// Handler routes the UI, document, and event endpoints; everything else
// falls through to next (404 when next is nil).
func (s *Swagger) Handler(next http.Handler) http.Handler {
	swaggerUI := buildSwaggerUI(s.urls.Document, s.urls.Events)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case s.urls.UI:
			w.Header().Set("Content-Type", "text/html")
			w.Write(swaggerUI)
		case s.urls.Document:
			w.Header().Set("Content-Type", "application/json")
			s.mu.RLock()
			document := s.document
			s.mu.RUnlock()
			w.Write(document)
		case s.urls.Events:
			s.broadcaster.ServeHTTP(w, r)
		default:
			if next != nil {
				next.ServeHTTP(w, r)
			} else {
				http.NotFound(w, r)
			}
		}
	})

	return cors.New(cors.Options{
		AllowedOrigins: s.options.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet},
	}).Handler(inner)
}

// SetDocument replaces the served document and tells connected UIs to
// reload.
func (s *Swagger) SetDocument(document []byte) {
	s.mu.Lock()
	s.document = slices.Clone(document)
	s.mu.Unlock()
	s.broadcaster.broadcast("reload")
}
