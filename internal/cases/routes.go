package cases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/tlogic-co/pqrs-service/internal/letter"
	"github.com/tlogic-co/pqrs-service/internal/pqrs"
	"github.com/tlogic-co/pqrs-service/internal/synth"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Generator drafts PQRS replies. Satisfied by *pqrs.Service.
type Generator interface {
	Lookup(contract string) (*synth.CustomerRecord, error)
	Generate(ctx context.Context, c pqrs.Category, contract string) (*pqrs.CaseReply, error)
}

// API wires the case-generation flow onto the HTTP router.
type API struct {
	generator Generator
	store     *Store
	composer  *letter.Composer
	exporter  letter.Exporter
	logger    *zap.Logger
}

// NewAPI creates the cases HTTP API.
func NewAPI(generator Generator, store *Store, composer *letter.Composer, exporter letter.Exporter, logger *zap.Logger) *API {
	return &API{
		generator: generator,
		store:     store,
		composer:  composer,
		exporter:  exporter,
		logger:    logger,
	}
}

// RegisterRoutes mounts the case endpoints on the router.
func (a *API) RegisterRoutes(r chi.Router) {
	r.Post("/api/sessions", a.handleCreateSession)
	r.Get("/api/customers/{contract}", a.handleLookup)
	r.Route("/api/cases", func(r chi.Router) {
		r.Post("/", a.handleGenerate)
		r.Get("/recent", a.handleRecent)
		r.Get("/{id}/document", a.handleDocument)
	})
	r.Get("/ws/generate", a.handleGenerateSocket)
}

func (a *API) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	id := a.store.CreateSession()
	a.logger.Info("session created", zap.String("session_id", id))
	a.writeJSON(w, http.StatusCreated, map[string]string{"session_id": id})
}

func (a *API) handleLookup(w http.ResponseWriter, r *http.Request) {
	contract := chi.URLParam(r, "contract")
	rec, err := a.generator.Lookup(contract)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, rec)
}

type generateRequest struct {
	SessionID string `json:"session_id"`
	Category  string `json:"category"`
	Contract  string `json:"contract"`
}

func (a *API) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeErrorMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	cat, err := pqrs.ParseCategory(req.Category)
	if err != nil {
		a.writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	reply, err := a.generator.Generate(r.Context(), cat, req.Contract)
	if err != nil {
		a.writeError(w, err)
		return
	}

	if err := a.store.Add(req.SessionID, reply); err != nil {
		a.writeError(w, err)
		return
	}

	a.logger.Info("case generated",
		zap.String("case_id", reply.CaseID),
		zap.String("category", string(reply.Category)),
		zap.String("contract", req.Contract))
	a.writeJSON(w, http.StatusCreated, reply)
}

func (a *API) handleRecent(w http.ResponseWriter, r *http.Request) {
	recent, err := a.store.Recent(r.URL.Query().Get("session_id"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"cases": recent})
}

func (a *API) handleDocument(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "id")
	reply, ok := a.store.Get(r.URL.Query().Get("session_id"), caseID)
	if !ok {
		a.writeErrorMessage(w, http.StatusNotFound, "case not found")
		return
	}

	doc := a.composer.ComposeWithID(reply.Category, reply.Record, reply.Body, reply.CaseID, reply.GeneratedAt)
	data, err := a.exporter.Export(doc)
	if err != nil {
		a.logger.Error("letter export failed", zap.String("case_id", caseID), zap.Error(err))
		a.writeErrorMessage(w, http.StatusInternalServerError, "could not render the letter")
		return
	}

	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%s%s", reply.CaseID, letter.FileExtension))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Error("encoding response failed", zap.Error(err))
	}
}

// writeError maps domain errors onto HTTP statuses: bad contracts are
// the caller's fault, provider failures are an upstream problem, and
// unknown sessions mean the client kept a stale id.
func (a *API) writeError(w http.ResponseWriter, err error) {
	var genErr *pqrs.GenerationError
	switch {
	case errors.Is(err, synth.ErrInvalidContract):
		a.writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnknownSession):
		a.writeErrorMessage(w, http.StatusNotFound, err.Error())
	case errors.As(err, &genErr):
		a.logger.Error("reply generation failed", zap.Error(err))
		a.writeErrorMessage(w, http.StatusBadGateway, err.Error())
	default:
		a.logger.Error("request failed", zap.Error(err))
		a.writeErrorMessage(w, http.StatusInternalServerError, err.Error())
	}
}

func (a *API) writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	a.writeJSON(w, status, map[string]string{"error": msg})
}
