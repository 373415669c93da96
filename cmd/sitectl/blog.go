package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"studio-site/internal/blogimport"
)

var blogCmd = &cobra.Command{
	Use:   "blog",
	Short: "Manage blog posts",
}

var blogImportCmd = &cobra.Command{
	Use:   "import <file.md>...",
	Short: "Import markdown posts with YAML frontmatter",
	Long: `import renders each markdown file to HTML and saves it as a blog post.
Frontmatter keys: title, slug, excerpt, author, date, readTime, category, tags,
featured, hidden. A post with an existing slug is updated in place.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openContentService(cmd.Context(), appConfig)
		if err != nil {
			return err
		}
		defer closeStore()

		importer, err := blogimport.New(svc)
		if err != nil {
			return err
		}
		for _, path := range args {
			post, err := importer.ImportFile(cmd.Context(), path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %s as %q (id %s)\n", path, post.Slug, post.ID)
		}
		return nil
	},
}

func init() {
	blogCmd.AddCommand(blogImportCmd)
	rootCmd.AddCommand(blogCmd)
}
