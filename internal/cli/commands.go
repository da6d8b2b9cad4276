package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osvaldoandrade/srmock/internal/infra/filesystem"
	"github.com/osvaldoandrade/srmock/internal/infra/format"
	"github.com/osvaldoandrade/srmock/internal/platform"
	"github.com/osvaldoandrade/srmock/pkg/srmock"
	"github.com/spf13/cobra"
)

// DefaultServeAddr matches the port Confluent's registry listens on.
const DefaultServeAddr = "127.0.0.1:8081"

type serveOptions struct {
	Addr          string
	SeedDir       string
	ExportPath    string
	Compatibility string
}

func newServeCmd(_ *RootOptions) *cobra.Command {
	opts := &serveOptions{
		Addr:          envDefault("SRMOCK_ADDR", DefaultServeAddr),
		SeedDir:       envDefault("SRMOCK_SEED_DIR", ""),
		ExportPath:    envDefault("SRMOCK_EXPORT_PATH", ""),
		Compatibility: envDefault("SRMOCK_DEFAULT_COMPATIBILITY", string(srmock.CompatBackward)),
	}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the registry until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			registry, err := srmock.New(opts.config(platform.Component(slog.Default(), "registry")))
			if err != nil {
				return err
			}
			return registry.Serve(ctx)
		},
	}
	cmd.Flags().StringVar(&opts.Addr, "addr", opts.Addr, "Listen address")
	cmd.Flags().StringVar(&opts.SeedDir, "seed", opts.SeedDir, "Directory of <subject>.avsc|.proto|.json files registered at start")
	cmd.Flags().StringVar(&opts.ExportPath, "export", opts.ExportPath, "Write a SQLite snapshot of the state here on shutdown")
	cmd.Flags().StringVar(&opts.Compatibility, "default-compatibility", opts.Compatibility, "Initial global compatibility level")
	return cmd
}

func (o *serveOptions) config(logger *slog.Logger) srmock.Config {
	return srmock.Config{
		Addr:          o.Addr,
		Logger:        logger,
		Compatibility: srmock.CompatibilityLevel(o.Compatibility),
		SeedDir:       o.SeedDir,
		ExportPath:    o.ExportPath,
	}
}

func newTypesCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported schema types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			types := format.Builtin().Types()
			names := make([]string, 0, len(types))
			for _, t := range types {
				names = append(names, t.String())
			}
			return writeTypes(cmd.OutOrStdout(), names, opts.JSONOutput)
		},
	}
}

// checkResult describes one seed file that parsed cleanly.
type checkResult struct {
	Path        string `json:"path"`
	Subject     string `json:"subject"`
	SchemaType  string `json:"schemaType"`
	Fingerprint string `json:"fingerprint"`
}

func newCheckCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <seed-dir>",
		Short: "Parse a seed directory without starting a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds, err := (filesystem.SeedSource{}).Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			parser := format.Builtin()
			results := make([]checkResult, 0, len(seeds))
			for _, seed := range seeds {
				parsed, err := parser.Parse(cmd.Context(), seed.SchemaType, seed.Schema)
				if err != nil {
					return fmt.Errorf("%s: %w", seed.Path, err)
				}
				results = append(results, checkResult{
					Path:        seed.Path,
					Subject:     seed.Subject,
					SchemaType:  parsed.Type().String(),
					Fingerprint: parsed.Fingerprint(),
				})
			}
			return writeCheckResults(cmd.OutOrStdout(), results, opts.JSONOutput)
		},
	}
}

func writeTypes(out io.Writer, names []string, asJSON bool) error {
	if asJSON {
		return writeJSON(out, names)
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(out, name); err != nil {
			return err
		}
	}
	return nil
}

func writeCheckResults(out io.Writer, results []checkResult, asJSON bool) error {
	if asJSON {
		return writeJSON(out, results)
	}

	ui := newRenderer(out, asJSON)
	if len(results) == 0 {
		_, err := fmt.Fprintln(out, ui.dim("no seed files found"))
		return err
	}
	for _, result := range results {
		if _, err := fmt.Fprintf(out, "%s %s\n", ui.ok("ok"), result.Subject); err != nil {
			return err
		}
		if err := writeKV(out, ui, "  Type", result.SchemaType); err != nil {
			return err
		}
		if err := writeKV(out, ui, "  Fingerprint", ui.dim(result.Fingerprint)); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func writeKV(out io.Writer, ui renderer, key, value string) error {
	_, err := fmt.Fprintf(out, "%s: %s\n", ui.key(key), value)
	return err
}
