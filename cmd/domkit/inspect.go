package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"domkit/internal/dom"
	"domkit/pkg/domutil"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]...",
	Short: "Report structure and form state of HTML files",
	Long: `Parses each file and reports its element count, the configured
tags (last direct child of <body> per tag, the way FindTag resolves them),
and every control carrying the disabled marker.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// elementForms feeds Pluralize for the element count line.
var elementForms = [3]string{"element", "elements", "elements"}

func runInspect(cmd *cobra.Command, args []string) error {
	g, _ := errgroup.WithContext(cmd.Context())
	reports := make([]*report, len(args))
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			r, err := inspectFile(path, profile.Tags)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, r := range reports {
		fmt.Print(r.render())
	}
	logger.Debug("inspection complete", zap.Int("files", len(args)))
	return nil
}

// report is one file's inspection result.
type report struct {
	path     string
	elements int
	// last direct child of body per configured tag; absent tags omitted
	lastMatch map[string]string
	disabled  []string
}

func inspectFile(path string, tags []string) (*report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	r := &report{path: path, lastMatch: make(map[string]string)}
	r.elements = countElements(doc)

	if body := dom.Body(doc); body != nil {
		for _, tag := range tags {
			if n := domutil.FindTag(body, tag); n != nil {
				r.lastMatch[tag] = describe(n)
			}
		}
	}

	collectDisabled(doc, &r.disabled)
	return r, nil
}

func countElements(n *html.Node) int {
	count := 0
	if n.Type == html.ElementNode {
		count = 1
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countElements(c)
	}
	return count
}

func collectDisabled(n *html.Node, out *[]string) {
	if n.Type == html.ElementNode && dom.HasAttr(n, domutil.DisabledAttr) {
		*out = append(*out, describe(n))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectDisabled(c, out)
	}
}

// describe renders a node as TAG#id when it has an id, plain TAG otherwise.
func describe(n *html.Node) string {
	if id := dom.Attr(n, "id"); id != "" {
		return dom.Tag(n) + "#" + id
	}
	return dom.Tag(n)
}

func (r *report) render() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(r.path))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  %d %s\n", r.elements, domutil.Pluralize(r.elements, elementForms))

	tags := make([]string, 0, len(r.lastMatch))
	for tag := range r.lastMatch {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		fmt.Fprintf(&sb, "  %s %s\n", dimStyle.Render("last <body> "+tag+":"), r.lastMatch[tag])
	}

	if len(r.disabled) > 0 {
		fmt.Fprintf(&sb, "  %s %s\n", dimStyle.Render("disabled:"), strings.Join(r.disabled, ", "))
	}
	return sb.String()
}
