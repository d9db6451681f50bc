package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	templatesview "github.com/bnema/twmj/internal/adapters/render/templates"
	"github.com/bnema/twmj/internal/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type templateFile struct {
	Name         string         `json:"name"`
	Rules        map[string]any `json:"rules"`
	RulesEnabled map[string]any `json:"rules_enabled"`
}

type templateRecordOutput struct {
	UUID      string       `json:"uuid"`
	ExpiresAt time.Time    `json:"expires_at"`
	Template  templateFile `json:"template"`
}

func newTemplatesCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Exchange scoring templates between players",
	}

	cmd.AddCommand(
		newTemplatesExportCmd(env),
		newTemplatesImportCmd(env),
		newTemplatesListCmd(env),
		newTemplatesSweepCmd(env),
	)

	return cmd
}

func newTemplatesExportCmd(env *cliEnv) *cobra.Command {
	var (
		file   string
		key    string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Publish a template under a one-time key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			template, err := readTemplateFile(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			if key == "" {
				key = uuid.NewString()
			}

			client := newAPIClient(env)
			var record domain.TemplateRecord
			call := serverCall{
				label: "Publishing template...",
				run: func(ctx context.Context) error {
					var err error
					record, err = client.ExportTemplate(ctx, domain.TemplateKey(key), template)
					return err
				},
				summary: func() string {
					return fmt.Sprintf("published %s, importable for %s", record.Key,
						time.Until(record.ExpiresAt).Round(time.Second))
				},
			}
			if err := runClientCall(cmd, asJSON, call); err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), toRecordOutput(record))
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %q as %s\n", record.Template.Name, record.Key)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Import before %s\n", record.ExpiresAt.Local().Format("15:04:05"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "Template JSON file, - for stdin")
	cmd.Flags().StringVar(&key, "key", "", "Exchange key (default: a new UUID)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().String("server", "", "Server base URL")

	return cmd
}

func newTemplatesImportCmd(env *cliEnv) *cobra.Command {
	var asRecord bool

	cmd := &cobra.Command{
		Use:   "import <key>",
		Short: "Fetch a template published under key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient(env)
			var record domain.TemplateRecord
			call := serverCall{
				run: func(ctx context.Context) error {
					var err error
					record, err = client.ImportTemplate(ctx, domain.TemplateKey(args[0]))
					return err
				},
			}
			if err := runClientCall(cmd, true, call); err != nil {
				return err
			}

			if asRecord {
				return writeJSON(cmd.OutOrStdout(), toRecordOutput(record))
			}
			return writeJSON(cmd.OutOrStdout(), toTemplateFile(record.Template))
		},
	}

	cmd.Flags().BoolVar(&asRecord, "record", false, "Include the key and expiry around the template")
	cmd.Flags().String("server", "", "Server base URL")

	return cmd
}

func newTemplatesListCmd(env *cliEnv) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show live records in the local exchange directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := wireLocalTemplates(env)
			if err != nil {
				return err
			}

			records, err := service.List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				out := make([]templateRecordOutput, 0, len(records))
				for _, record := range records {
					out = append(out, toRecordOutput(record))
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}

			output, err := templatesview.Render(records, templatesview.RenderOptions{
				Now: time.Now(),
				TTL: env.config.Templates.TTL,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().String("dir", "", "Template exchange directory")

	return cmd
}

func newTemplatesSweepCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Remove expired and unreadable records from the local exchange directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := wireLocalTemplates(env)
			if err != nil {
				return err
			}

			removed, err := service.Sweep(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d expired templates\n", removed)
			return err
		},
	}

	cmd.Flags().String("dir", "", "Template exchange directory")

	return cmd
}

func readTemplateFile(stdin io.Reader, path string) (domain.Template, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return domain.Template{}, fmt.Errorf("read template: %w", err)
	}

	var file templateFile
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.Template{}, fmt.Errorf("parse template: %w", err)
	}

	template := domain.Template{Name: file.Name, Rules: file.Rules, RulesEnabled: file.RulesEnabled}
	if err := template.Validate(); err != nil {
		return domain.Template{}, err
	}
	return template, nil
}

func toTemplateFile(template domain.Template) templateFile {
	return templateFile{Name: template.Name, Rules: template.Rules, RulesEnabled: template.RulesEnabled}
}

func toRecordOutput(record domain.TemplateRecord) templateRecordOutput {
	return templateRecordOutput{
		UUID:      string(record.Key),
		ExpiresAt: record.ExpiresAt,
		Template:  toTemplateFile(record.Template),
	}
}

// runClientCall reports call progress on stderr unless quiet is set.
func runClientCall(cmd *cobra.Command, quiet bool, call serverCall) error {
	if quiet {
		return call.run(cmd.Context())
	}
	return runServerCall(cmd.Context(), cmd.ErrOrStderr(), call)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
