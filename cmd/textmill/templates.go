// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/textmill/internal/template"
	"github.com/pdiddy/textmill/pkg/types"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage reference templates for styled output",
	Long: `Templates manages reference templates: styled DOCX, ODT, or PPTX files
whose formatting the remote conversion service applies to its output.
Imported files are copied into the template store; the kind of a template
is fixed at import from the file extension.`,
}

// --- import subcommand ---

var templatesImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a styled document as a reference template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := template.NewStore(templateStoreConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		t, err := store.SaveFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("imported %s (%s, %d bytes) as %s\n", t.Name, t.Kind, t.Size, t.ID)
		return nil
	},
}

// --- list subcommand ---

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reference templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := template.NewStore(templateStoreConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		kind, _ := cmd.Flags().GetString("kind")

		var templates []types.ReferenceTemplate
		if kind != "" {
			k, ok := types.TemplateKindForExtension(kind)
			if !ok {
				return fmt.Errorf("unknown template kind %q: use docx, odt, or pptx", kind)
			}
			templates, err = store.ListKind(k)
		} else {
			templates, err = store.List()
		}
		if err != nil {
			return err
		}

		if len(templates) == 0 {
			fmt.Println("No templates.")
			return nil
		}
		fmt.Printf("%-36s  %-5s  %-10s  %-20s  %s\n", "ID", "Kind", "Size", "Created", "Name")
		for _, t := range templates {
			fmt.Printf("%-36s  %-5s  %-10d  %-20s  %s\n",
				t.ID, t.Kind, t.Size, t.CreatedAt.Format("2006-01-02 15:04:05"), t.Name)
		}
		return nil
	},
}

// --- rename subcommand ---

var templatesRenameCmd = &cobra.Command{
	Use:   "rename [id] [new-name]",
	Short: "Rename a reference template",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := template.NewStore(templateStoreConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		t, err := store.Get(args[0])
		if err != nil {
			return err
		}
		if err := store.Rename(t, args[1]); err != nil {
			return err
		}
		fmt.Printf("renamed %s to %q\n", t.ID, args[1])
		return nil
	},
}

// --- rm subcommand ---

var templatesRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a reference template and its backing file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := template.NewStore(templateStoreConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		t, err := store.Get(args[0])
		if err != nil {
			return err
		}
		if err := store.Delete(t); err != nil {
			return err
		}
		fmt.Printf("deleted %s (%s)\n", t.ID, t.Name)
		return nil
	},
}

func init() {
	templatesListCmd.Flags().String("kind", "", "filter by template kind: docx, odt, or pptx")

	templatesCmd.AddCommand(templatesImportCmd)
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesRenameCmd)
	templatesCmd.AddCommand(templatesRmCmd)

	rootCmd.AddCommand(templatesCmd)
}
