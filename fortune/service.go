package fortune

import (
	"context"
	"errors"
	"strings"
)

// Source names the path that produced a fortune.
type Source string

const (
	SourceLocal  Source = "local"
	SourceRemote Source = "remote"
)

// Config is the process-wide, read-only generation settings.
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int
	BaseURL   string
}

// Generator produces a fortune for already validated thoughts.
type Generator interface {
	Fortune(ctx context.Context, thoughts string) (string, error)
}

// Outcome is a successful generation together with the path it took.
type Outcome struct {
	Fortune string
	Source  Source
}

// Service validates requests and dispatches them to the local or remote
// generator depending on whether an API key is configured.
type Service struct {
	cfg    Config
	local  Generator
	remote Generator
}

// Option customizes a Service.
type Option func(*Service)

// WithRemoteGenerator replaces the OpenAI-backed generator.
func WithRemoteGenerator(g Generator) Option {
	return func(s *Service) {
		s.remote = g
	}
}

// WithLocalGenerator replaces the hash-based selector.
func WithLocalGenerator(g Generator) Option {
	return func(s *Service) {
		s.local = g
	}
}

func NewService(cfg Config, opts ...Option) *Service {
	s := &Service{
		cfg:   cfg,
		local: LocalSelector{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.remote == nil && s.Source() == SourceRemote {
		s.remote = NewOpenAIGenerator(cfg)
	}
	return s
}

// Source reports which generator the next request will use.
func (s *Service) Source() Source {
	if strings.TrimSpace(s.cfg.APIKey) == "" {
		return SourceLocal
	}
	return SourceRemote
}

// Generate validates req and produces a fortune. Errors are either a
// *ValidationError or a *GenerationError; the returned Outcome carries the
// chosen Source even on failure.
func (s *Service) Generate(ctx context.Context, req *ThoughtsRequest) (Outcome, error) {
	thoughts, err := Validate(req)
	if err != nil {
		return Outcome{}, err
	}

	src := s.Source()
	gen := s.local
	if src == SourceRemote {
		gen = s.remote
	}
	if gen == nil {
		return Outcome{Source: src}, &GenerationError{Err: errors.New("no generator configured for " + string(src))}
	}

	text, err := gen.Fortune(ctx, thoughts)
	if err != nil {
		var genErr *GenerationError
		if !errors.As(err, &genErr) {
			err = &GenerationError{Err: err}
		}
		return Outcome{Source: src}, err
	}
	return Outcome{Fortune: text, Source: src}, nil
}
