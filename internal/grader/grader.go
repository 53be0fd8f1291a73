// Package grader turns a learner's free-text definition of a word into
// a binary verdict using an LLM.
package grader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fweber/lexiscope/internal/llm"
)

// Verdict is the outcome of grading one definition.
type Verdict int

const (
	VerdictIncorrect Verdict = iota
	VerdictCorrect
)

func (v Verdict) String() string {
	if v == VerdictCorrect {
		return "correct"
	}
	return "incorrect"
}

// Input is one definition to grade.
type Input struct {
	Word         string
	PartOfSpeech string
	Definition   string
}

// UnavailableError reports that no verdict could be obtained. It is
// distinct from VerdictIncorrect: a grading outage must never count
// against the learner.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("grading unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// IsUnavailable reports whether err is a grading outage.
func IsUnavailable(err error) bool {
	var ue *UnavailableError
	return errors.As(err, &ue)
}

// Config tunes grading requests.
type Config struct {
	// MaxTokens caps the verdict response. The schema is tiny, so the
	// default leaves generous headroom.
	MaxTokens int

	// Timeout bounds one Grade call including retries.
	Timeout time.Duration
}

// DefaultConfig returns the standard grading configuration.
func DefaultConfig() Config {
	return Config{
		MaxTokens: 128,
		Timeout:   20 * time.Second,
	}
}

// Grader grades definitions against a Provider.
type Grader struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Grader. A nil provider is allowed; Grade then always
// reports unavailable.
func New(provider llm.Provider, cfg Config) *Grader {
	return &Grader{provider: provider, cfg: cfg}
}

// Ready reports whether a provider is wired in.
func (g *Grader) Ready() bool {
	return g != nil && g.provider != nil
}

// verdictSchema is the structured output contract. The verdict field is
// a free string on purpose: unexpected tokens are handled leniently by
// ParseVerdict rather than rejected as schema violations.
var verdictSchema = &llm.Schema{
	Name:        "definition-verdict",
	Description: "Binary grading verdict for a word definition",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"verdict": map[string]any{
				"type":        "string",
				"description": `"correct" or "incorrect"`,
			},
		},
		"required":             []any{"verdict"},
		"additionalProperties": false,
	},
}

// Grade asks the model whether the definition is correct. The returned
// error is *UnavailableError for any transport or response failure.
func (g *Grader) Grade(ctx context.Context, in Input) (Verdict, error) {
	if !g.Ready() {
		return VerdictIncorrect, &UnavailableError{Err: fmt.Errorf("no provider configured")}
	}

	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()
	ctx = llm.WithPurpose(ctx, "definition-grading")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserPrompt(in)},
		},
		Schema:      verdictSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: 0,
	})
	if err != nil {
		return VerdictIncorrect, &UnavailableError{Err: err}
	}

	var out struct {
		Verdict string `json:"verdict"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return VerdictIncorrect, &UnavailableError{Err: fmt.Errorf("parse verdict: %w", err)}
	}

	return ParseVerdict(out.Verdict), nil
}

// ParseVerdict maps the model's verdict token to a Verdict. Only a
// case-insensitive "correct" (after trimming) counts as correct; every
// other token grades as incorrect.
func ParseVerdict(token string) Verdict {
	if strings.EqualFold(strings.TrimSpace(token), "correct") {
		return VerdictCorrect
	}
	return VerdictIncorrect
}
