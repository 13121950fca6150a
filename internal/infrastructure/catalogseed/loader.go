// Package catalogseed reads catalog seed files.
package catalogseed

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/szentjozsefhackathon/cantores/internal/application/catalog/usecases"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

type fileSlot struct {
	Name              string `yaml:"name"`
	Description       string `yaml:"description"`
	IncludedByDefault bool   `yaml:"included_by_default"`
}

type fileTemplateSlot struct {
	Name              string `yaml:"name"`
	IncludedByDefault bool   `yaml:"included_by_default"`
}

type fileTemplate struct {
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	GenreID     *uint              `yaml:"genre_id"`
	Slots       []fileTemplateSlot `yaml:"slots"`
}

type file struct {
	Slots     []fileSlot     `yaml:"slots"`
	Templates []fileTemplate `yaml:"templates"`
}

// Loader parses catalog YAML into a seed command.
type Loader struct {
	logger logger.Interface
}

func NewLoader(logger logger.Interface) *Loader {
	return &Loader{logger: logger}
}

// LoadFile reads path. A missing file is an error.
func (l *Loader) LoadFile(path string) (*usecases.SeedCatalogCommand, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog seed file: %w", err)
	}

	cmd, err := l.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.logger.Infow("loaded catalog seed file",
		"file", path,
		"slots", len(cmd.Slots),
		"templates", len(cmd.Templates),
	)
	return cmd, nil
}

// Parse decodes a seed document. Unknown keys are rejected.
func (l *Loader) Parse(r io.Reader) (*usecases.SeedCatalogCommand, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse catalog seed: %w", err)
	}

	cmd := &usecases.SeedCatalogCommand{
		Slots:     make([]usecases.SeedSlot, 0, len(f.Slots)),
		Templates: make([]usecases.SeedTemplate, 0, len(f.Templates)),
	}
	for _, s := range f.Slots {
		cmd.Slots = append(cmd.Slots, usecases.SeedSlot{
			Name:                s.Name,
			Description:         s.Description,
			IsIncludedByDefault: s.IncludedByDefault,
		})
	}
	for _, t := range f.Templates {
		slots := make([]usecases.SeedTemplateSlot, 0, len(t.Slots))
		for _, s := range t.Slots {
			slots = append(slots, usecases.SeedTemplateSlot{
				Name:                s.Name,
				IsIncludedByDefault: s.IncludedByDefault,
			})
		}
		cmd.Templates = append(cmd.Templates, usecases.SeedTemplate{
			Name:        t.Name,
			Description: t.Description,
			GenreID:     t.GenreID,
			Slots:       slots,
		})
	}
	return cmd, nil
}
