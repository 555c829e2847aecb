package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yosssi/gohtml"

	"folio.dev/internal/page"
)

var (
	renderQuery  []string
	renderPretty bool
)

var renderCmd = &cobra.Command{
	Use:   "render PAGE",
	Short: "Render one page to stdout",
	Long: `Renders a page shell from the site directory the way the server would and
prints the result. PAGE may carry a query string, e.g. "project-detail.html?id=terminal-mail".`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringArrayVarP(&renderQuery, "query", "q", nil, "query parameter as key=value (repeatable)")
	renderCmd.Flags().BoolVar(&renderPretty, "pretty", false, "indent the rendered HTML")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	loc, err := page.ParseLocation(args[0])
	if err != nil {
		return fmt.Errorf("parsing page %q: %w", args[0], err)
	}
	for _, kv := range renderQuery {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("invalid --query %q: want key=value", kv)
		}
		loc.Query.Add(key, value)
	}

	name := loc.PageName()
	if name == "" {
		name = "index.html"
	}
	shell, err := os.ReadFile(filepath.Join(cfg.SiteDir, name))
	if err != nil {
		return fmt.Errorf("reading page shell: %w", err)
	}
	if !strings.HasPrefix(loc.Path, "/") {
		loc.Path = "/" + loc.Path
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}
	doc, err := renderer.Document(cmd.Context(), shell, loc)
	if err != nil {
		return err
	}

	out := doc.String()
	if renderPretty {
		out = gohtml.Format(out)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
