package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/matt-g-everett/ledanim/anim"
)

// Status is the JSON view of one animation.
type Status struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	State     string  `json:"state"`
	Progress  float64 `json:"progress"`
	Direction string  `json:"direction"`
	Infinite  bool    `json:"infinite"`
}

// Api serves the state of a registry over HTTP and lets clients start and
// stop animations.
type Api struct {
	registry *anim.Registry
	mux      *http.ServeMux
}

// NewApi creates an Api for registry.
func NewApi(registry *anim.Registry) *Api {
	a := new(Api)
	a.registry = registry
	a.mux = http.NewServeMux()
	a.mux.HandleFunc("GET /animations", a.list)
	a.mux.HandleFunc("POST /animations/{name}/{action}", a.control)
	return a
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

func (a *Api) list(w http.ResponseWriter, r *http.Request) {
	names := a.registry.Names()
	out := make([]Status, 0, len(names))
	for _, name := range names {
		an, ok := a.registry.Lookup(name)
		if !ok {
			continue
		}
		out = append(out, Status{
			Name:      name,
			Value:     an.Value(),
			State:     an.State().String(),
			Progress:  an.Progress(),
			Direction: an.Direction().String(),
			Infinite:  an.IsInfinite(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		log.Println(err)
	}
}

func (a *Api) control(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	an, ok := a.registry.Lookup(name)
	if !ok {
		http.Error(w, "animation not found", http.StatusNotFound)
		return
	}

	switch r.PathValue("action") {
	case "play":
		an.Play()
	case "reverse":
		an.PlayReverse()
	case "stop":
		an.Stop()
	default:
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Serve listens on addr until ctx is done.
func (a *Api) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: a}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Println(err)
		}
	}()

	log.Printf("Listening on %s...", addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
