package routing

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"compile-js/internal/compile"
)

// maxBodyBytes caps the accepted form body.
const maxBodyBytes = 1 << 20

// EchoHandler answers a compile request with the submitted sources, joined in
// the order they were posted. It follows the wire contract of the hosted
// compile service without compiling anything, which makes it a stand-in for
// offline use and tests.
type EchoHandler struct{}

func (h EchoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := r.ParseForm(); err != nil {
		log.Warn().Err(err).Msg("failed to parse compile request form")
		http.Error(w, "Error(22): Must provide 'js_code' or 'code_url' parameter", http.StatusBadRequest)
		return
	}

	sources, ok := r.PostForm[compile.SourceKey]

	if !ok {
		http.Error(w, "Error(22): Must provide 'js_code' or 'code_url' parameter", http.StatusBadRequest)
		return
	}

	log.Debug().
		Int("sources", len(sources)).
		Str("compilationLevel", r.PostForm.Get(compile.CompilationLevelKey)).
		Str("outputFormat", r.PostForm.Get(compile.OutputFormatKey)).
		Str("outputInfo", r.PostForm.Get(compile.OutputInfoKey)).
		Msg("echoing compile request")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(strings.Join(sources, "")))
}

// NewRouter returns the router serving POST /compile.
func NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.Handle("/compile", EchoHandler{}).Methods(http.MethodPost)

	return r
}
