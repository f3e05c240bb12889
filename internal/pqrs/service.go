package pqrs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/tlogic-co/pqrs-service/internal/llm"
	"github.com/tlogic-co/pqrs-service/internal/synth"
)

// Sampling are the text-generation sampling parameters.
type Sampling struct {
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// DefaultSampling returns the fixed parameters used for reply drafting.
func DefaultSampling() Sampling {
	return Sampling{
		Temperature: DefaultTemperature,
		TopP:        DefaultTopP,
		MaxTokens:   DefaultMaxTokens,
	}
}

// CaseReply is a drafted reply to one PQRS case. It lives only in
// ephemeral per-session state and is never persisted.
type CaseReply struct {
	Category    Category              `json:"category"`
	CaseID      string                `json:"case_id"`
	Body        string                `json:"body"`
	Record      *synth.CustomerRecord `json:"record"`
	GeneratedAt time.Time             `json:"generated_at"`
}

// Service synthesizes customer records and drafts replies through an
// LLM provider. It is stateless and safe for concurrent use.
type Service struct {
	provider llm.Provider
	model    string
	sampling Sampling
	now      func() time.Time
}

// NewService creates a generation service on top of the given provider.
func NewService(provider llm.Provider, model string, sampling Sampling) *Service {
	return &Service{
		provider: provider,
		model:    model,
		sampling: sampling,
		now:      time.Now,
	}
}

// Lookup synthesizes the customer record for a contract number.
func (s *Service) Lookup(contract string) (*synth.CustomerRecord, error) {
	return synth.Synthesize(contract, s.now())
}

// Generate validates the contract, synthesizes the customer record,
// mints a case id and asks the provider for the reply body. Provider
// failures come back as *GenerationError; invalid contracts as
// synth.ErrInvalidContract before any provider call is made.
func (s *Service) Generate(ctx context.Context, c Category, contract string) (*CaseReply, error) {
	now := s.now()
	rec, err := synth.Synthesize(contract, now)
	if err != nil {
		return nil, err
	}

	caseID := MintCaseID(c, now)
	req := llm.CompletionRequest{
		Model:       s.model,
		Messages:    BuildMessages(c, rec, caseID, now),
		MaxTokens:   s.sampling.MaxTokens,
		Temperature: s.sampling.Temperature,
		TopP:        s.sampling.TopP,
	}

	resp, err := s.provider.Complete(ctx, req)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}
	body := strings.TrimSpace(resp.Content)
	if body == "" {
		return nil, &GenerationError{Err: errors.New("provider returned an empty reply")}
	}

	return &CaseReply{
		Category:    c,
		CaseID:      caseID,
		Body:        body,
		Record:      rec,
		GeneratedAt: now,
	}, nil
}
