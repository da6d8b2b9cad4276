package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/osvaldoandrade/srmock/internal/domain"
)

// SeedFile is one schema found in a seed directory. The file name without
// its extension is the subject.
type SeedFile struct {
	Path       string
	Subject    string
	SchemaType domain.SchemaType
	Schema     string
}

var seedExtensions = map[string]domain.SchemaType{
	".avsc":  domain.SchemaTypeAvro,
	".proto": domain.SchemaTypeProtobuf,
	".json":  domain.SchemaTypeJSON,
}

type SeedSource struct{}

func (SeedSource) ReadSchema(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return data, nil
}

// Load returns the seed files of dir in lexical order. Subdirectories and
// files with other extensions are skipped.
func (s SeedSource) Load(ctx context.Context, dir string) ([]SeedFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read seed dir: %w", err)
	}

	var seeds []SeedFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		schemaType, ok := seedExtensions[ext]
		if !ok {
			continue
		}
		subject := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if !domain.IsValidSubjectName(subject) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := s.ReadSchema(ctx, path)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, SeedFile{
			Path:       path,
			Subject:    subject,
			SchemaType: schemaType,
			Schema:     string(data),
		})
	}
	return seeds, nil
}
