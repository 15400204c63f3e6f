package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/ilpoo/elastic-momentum/curve"
	"github.com/ilpoo/elastic-momentum/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxSamples = 1000

// Api serves the client pages, curve previews and metrics.
type Api struct {
	addr     string
	pages    string
	gatherer prometheus.Gatherer
}

// NewApi creates an Api serving static files from pages.
func NewApi(addr, pages string, gatherer prometheus.Gatherer) *Api {
	a := new(Api)
	a.addr = addr
	a.pages = pages
	a.gatherer = gatherer
	return a
}

// Handler routes the Api's endpoints.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(a.pages)))
	mux.Handle("/metrics", promhttp.HandlerFor(a.gatherer, promhttp.HandlerOpts{}))
	mux.HandleFunc("/curves", a.listCurves)
	mux.HandleFunc("/curves/", a.sampleCurve)
	return mux
}

// Serve listens until the server fails.
func (a *Api) Serve() error {
	log.Printf("Listening on %s...", a.addr)
	return http.ListenAndServe(a.addr, a.Handler())
}

func (a *Api) listCurves(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, curve.Names())
}

// sampleCurve answers /curves/{name}?samples=n with n+1 points of the curve.
func (a *Api) sampleCurve(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Path[len("/curves/"):]
	f, err := curve.Lookup(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	n := 100
	if s := r.URL.Query().Get("samples"); s != "" {
		n, err = strconv.Atoi(s)
		if err != nil || n < 1 || n > maxSamples {
			http.Error(w, "samples must be between 1 and 1000", http.StatusBadRequest)
			return
		}
	}
	writeJSON(w, map[string]interface{}{
		"name":   name,
		"values": util.SampleCurve(f, n),
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}
