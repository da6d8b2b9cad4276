package protoschema

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"github.com/jhump/protoreflect/desc/protoprint"
	"google.golang.org/protobuf/proto"

	"github.com/osvaldoandrade/srmock/internal/app/registry"
	"github.com/osvaldoandrade/srmock/internal/domain"
	"github.com/osvaldoandrade/srmock/internal/infra/hash"
)

// fileName is the in-memory name every registered definition is compiled
// under. It has to be constant so equal definitions yield equal descriptors.
const fileName = "schema.proto"

// Schema is a compiled .proto definition. Comments and layout are not part
// of the fingerprint because source info is never retained.
type Schema struct {
	file        *desc.FileDescriptor
	canonical   string
	fingerprint string
}

func (s *Schema) Type() domain.SchemaType          { return domain.SchemaTypeProtobuf }
func (s *Schema) Canonical() string                { return s.canonical }
func (s *Schema) Fingerprint() string              { return s.fingerprint }
func (s *Schema) Descriptor() *desc.FileDescriptor { return s.file }

type Provider struct {
	printer protoprint.Printer
}

func (p Provider) Parse(ctx context.Context, raw string) (registry.ParsedSchema, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser := protoparse.Parser{
		Accessor: func(name string) (io.ReadCloser, error) {
			if name == fileName {
				return io.NopCloser(strings.NewReader(raw)), nil
			}
			return nil, fmt.Errorf("%s: %w", name, os.ErrNotExist)
		},
	}
	files, err := parser.ParseFiles(fileName)
	if err != nil {
		return nil, fmt.Errorf("parse protobuf schema: %w", err)
	}
	if len(files) != 1 {
		return nil, fmt.Errorf("parse protobuf schema: expected one file, got %d", len(files))
	}
	file := files[0]

	encoded, err := proto.MarshalOptions{Deterministic: true}.Marshal(file.AsFileDescriptorProto())
	if err != nil {
		return nil, fmt.Errorf("encode protobuf descriptor: %w", err)
	}

	var out bytes.Buffer
	if err := p.printer.PrintProtoFile(file, &out); err != nil {
		return nil, fmt.Errorf("print protobuf schema: %w", err)
	}

	return &Schema{
		file:        file,
		canonical:   out.String(),
		fingerprint: hash.Fingerprint(encoded),
	}, nil
}
