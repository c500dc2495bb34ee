// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/textmill/internal/remote"
	"github.com/pdiddy/textmill/internal/route"
	"github.com/pdiddy/textmill/internal/template"
	"github.com/pdiddy/textmill/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert documents to a target format",
	Long: `Convert transforms one or more documents into the target format given
with --to. Source formats are inferred from file extensions. Conversions
the local transcoder supports run in-process; everything else is
delegated to the remote conversion service according to --mode.

Files whose output already exists in the output directory are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	to, _ := cmd.Flags().GetString("to")
	target := types.Format(to)
	if !types.IsValidTarget(target) {
		return fmt.Errorf("unknown or output-ineligible target format %q", to)
	}

	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}

	mode, _ := cmd.Flags().GetString("mode")
	if mode == "" {
		mode = viper.GetString("router.mode")
	}
	outDir, _ := cmd.Flags().GetString("out-dir")

	routerCfg := types.RouterConfig{
		Mode:        types.ConversionMode(mode),
		ArtifactDir: viper.GetString("router.artifact_dir"),
	}
	client := remote.NewClient(remoteConfig(), logger)
	router := route.NewRouter(routerCfg, client, logger)

	templateBytes, templateKind, err := resolveTemplate(cmd)
	if err != nil {
		return err
	}

	result := route.ConvertFiles(context.Background(), router, args, target, opts,
		templateBytes, templateKind, outDir, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}

// optionsFromFlags builds the conversion options, starting from an
// optional YAML options file and overlaying explicit flags.
func optionsFromFlags(cmd *cobra.Command) (types.ConversionOptions, error) {
	opts := types.DefaultOptions()

	if path, _ := cmd.Flags().GetString("options-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return opts, fmt.Errorf("reading options file: %w", err)
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("parsing options file %s: %w", path, err)
		}
		if opts.Wrap == "" {
			opts.Wrap = types.WrapAuto
		}
	}

	if cmd.Flags().Changed("standalone") {
		opts.Standalone, _ = cmd.Flags().GetBool("standalone")
	}
	if cmd.Flags().Changed("toc") {
		opts.TableOfContents, _ = cmd.Flags().GetBool("toc")
	}
	if cmd.Flags().Changed("number-sections") {
		opts.NumberSections, _ = cmd.Flags().GetBool("number-sections")
	}
	if cmd.Flags().Changed("wrap") {
		wrap, _ := cmd.Flags().GetString("wrap")
		opts.Wrap = types.WrapMode(wrap)
	}
	if cmd.Flags().Changed("highlight-style") {
		opts.HighlightStyle, _ = cmd.Flags().GetString("highlight-style")
	}

	vars, _ := cmd.Flags().GetStringArray("var")
	for _, v := range vars {
		key, value, ok := strings.Cut(v, "=")
		if !ok {
			return opts, fmt.Errorf("invalid --var %q: expected key=value", v)
		}
		if opts.Variables == nil {
			opts.Variables = map[string]string{}
		}
		opts.Variables[key] = value
	}

	metas, _ := cmd.Flags().GetStringArray("meta")
	for _, m := range metas {
		key, value, ok := strings.Cut(m, "=")
		if !ok {
			return opts, fmt.Errorf("invalid --meta %q: expected key=value", m)
		}
		if opts.Metadata == nil {
			opts.Metadata = map[string]string{}
		}
		opts.Metadata[key] = value
	}

	return opts, nil
}

// resolveTemplate loads the reference template named by --template, if
// any, from the template store.
func resolveTemplate(cmd *cobra.Command) ([]byte, types.TemplateKind, error) {
	id, _ := cmd.Flags().GetString("template")
	if id == "" {
		return nil, "", nil
	}

	store, err := template.NewStore(templateStoreConfig())
	if err != nil {
		return nil, "", err
	}
	defer store.Close()

	t, err := store.Get(id)
	if err != nil {
		return nil, "", err
	}
	content, err := store.Content(t)
	if err != nil {
		return nil, "", err
	}
	return content, t.Kind, nil
}

func init() {
	convertCmd.Flags().String("to", "", "target format identifier (required)")
	convertCmd.Flags().String("mode", "", "conversion mode: auto, local, or remote (default: config)")
	convertCmd.Flags().String("out-dir", "output", "directory for converted files")
	convertCmd.Flags().Bool("standalone", false, "produce a standalone document with header and footer")
	convertCmd.Flags().Bool("toc", false, "include a table of contents")
	convertCmd.Flags().Bool("number-sections", false, "number section headings")
	convertCmd.Flags().String("wrap", "auto", "text wrap mode: auto, none, or preserve")
	convertCmd.Flags().String("highlight-style", "", "syntax highlighting style")
	convertCmd.Flags().String("template", "", "reference template ID for DOCX/ODT/PPTX styling")
	convertCmd.Flags().String("options-file", "", "YAML file with conversion options")
	convertCmd.Flags().StringArray("var", nil, "template variable (key=value, repeatable)")
	convertCmd.Flags().StringArray("meta", nil, "document metadata (key=value, repeatable)")
	convertCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(convertCmd)
}
