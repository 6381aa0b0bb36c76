package plan

import (
	"context"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// Source defines how plans are loaded into a Catalog.
type Source interface {
	Load(ctx context.Context) ([]Plan, error)
}

// InMemSource serves a fixed list of plans. Useful for tests and for
// products that compile their catalog in.
type InMemSource struct {
	plans []Plan
}

// NewInMemSource creates a Source backed by the given plans.
func NewInMemSource(plans ...Plan) *InMemSource {
	return &InMemSource{plans: plans}
}

func (s *InMemSource) Load(_ context.Context) ([]Plan, error) {
	out := make([]Plan, len(s.plans))
	copy(out, s.plans)
	return out, nil
}

// YAMLSource parses a plan catalog from a YAML document of the form:
//
//	plans:
//	  - id: basic
//	    tier: basic
//	    name: Básico
//	    ...
type YAMLSource struct {
	r io.Reader
}

// NewYAMLSource creates a Source that reads the catalog from r on Load.
func NewYAMLSource(r io.Reader) *YAMLSource {
	return &YAMLSource{r: r}
}

type yamlCatalog struct {
	Plans []Plan `yaml:"plans"`
}

func (s *YAMLSource) Load(_ context.Context) ([]Plan, error) {
	data, err := io.ReadAll(s.r)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadPlans, err)
	}

	var doc yamlCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrFailedToLoadPlans, err)
	}

	return doc.Plans, nil
}
