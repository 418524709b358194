package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"domkit/internal/dom"
	"domkit/pkg/domutil"
)

var disableCmd = &cobra.Command{
	Use:   "disable [file] [tag]",
	Short: "Disable every control inside a container and print the document",
	Long: `Finds the container as the last direct child of <body> with the
given tag, marks each of its direct children disabled, and renders the
updated document to stdout. Grandchildren are untouched.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggle(args[0], args[1], true)
	},
}

var enableCmd = &cobra.Command{
	Use:   "enable [file] [tag]",
	Short: "Clear the disabled marker inside a container and print the document",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggle(args[0], args[1], false)
	},
}

func runToggle(path, tag string, disable bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	body := dom.Body(doc)
	if body == nil {
		return fmt.Errorf("%s has no body element", path)
	}

	tag = strings.ToUpper(tag)
	container := domutil.FindTag(body, tag)
	if container == nil {
		return fmt.Errorf("no direct <body> child with tag %s in %s", tag, path)
	}

	if disable {
		domutil.DisableChildren(container)
	} else {
		domutil.EnableChildren(container)
	}
	logger.Debug("toggled container",
		zap.String("tag", tag),
		zap.Bool("disabled", disable),
		zap.Int("children", len(dom.Children(container))))

	return html.Render(os.Stdout, doc)
}
