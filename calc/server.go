package calc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/RonaldMishiev/LocalBolt/arith"
	"github.com/RonaldMishiev/LocalBolt/common/utils"
	"github.com/celer-network/goutils/log"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"
)

const (
	maxBatchBodyBytes = 1 << 20
	maxBatchSize      = 1024
	shutdownTimeout   = 5 * time.Second
)

// Server exposes a Calculator over HTTP:
//
//	GET  /pow/{base}/{exponent}?policy=wrap
//	GET  /mod/{a}/{b}
//	POST /batch  ([]Request -> []Result)
type Server struct {
	calc *Calculator
	addr string
}

func NewServer(calc *Calculator, addr string) *Server {
	return &Server{calc: calc, addr: addr}
}

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/pow/{base}/{exponent}", s.servePow).Methods(http.MethodGet)
	r.HandleFunc("/mod/{a}/{b}", s.serveMod).Methods(http.MethodGet)
	r.HandleFunc("/batch", s.serveBatch).Methods(http.MethodPost)
	return cors.Default().Handler(r)
}

// Serve blocks until ctx is done or the listener fails
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("calculator api listening on %s", s.addr)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("ListenAndServe err: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Infoln("shutting down calculator api")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

type valueResponse struct {
	Value int32 `json:"value"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) servePow(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	base, err := utils.ParseInt32(vars["base"])
	if err != nil {
		writeError(w, err)
		return
	}
	exponent, err := utils.ParseInt32(vars["exponent"])
	if err != nil {
		writeError(w, err)
		return
	}
	v, err := s.calc.Eval(r.Context(), Request{
		Op:       OpPow,
		Base:     base,
		Exponent: exponent,
		Policy:   r.URL.Query().Get("policy"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, valueResponse{Value: v})
}

func (s *Server) serveMod(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	a, err := utils.ParseInt32(vars["a"])
	if err != nil {
		writeError(w, err)
		return
	}
	b, err := utils.ParseInt32(vars["b"])
	if err != nil {
		writeError(w, err)
		return
	}
	v, err := s.calc.Mod(r.Context(), a, b)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, valueResponse{Value: v})
}

func (s *Server) serveBatch(w http.ResponseWriter, r *http.Request) {
	var reqs []Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBatchBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&reqs); err != nil {
		writeError(w, fmt.Errorf("%w: bad batch body: %s", arith.ErrInvalidArgument, err.Error()))
		return
	}
	if len(reqs) > maxBatchSize {
		writeError(w, fmt.Errorf("%w: batch of %d exceeds %d requests", arith.ErrInvalidArgument, len(reqs), maxBatchSize))
		return
	}
	writeJSON(w, http.StatusOK, s.calc.Batch(r.Context(), reqs))
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, arith.ErrInvalidArgument), errors.Is(err, arith.ErrDivisionByZero):
		return http.StatusBadRequest
	case errors.Is(err, arith.ErrOverflow):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		log.Errorf("calculator api: %s", err.Error())
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("failed to write response: %s", err.Error())
	}
}
