package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"domkit/internal/measure"
)

var measureCmd = &cobra.Command{
	Use:   "measure [url] [selector]",
	Short: "Resolve an element's coordinates on a live page",
	Long: `Opens the URL in a headless browser and prints the first matching
element's viewport-relative coordinates, plus page-relative ones when the
profile asks for them.`,
	Args: cobra.ExactArgs(2),
	RunE: runMeasure,
}

func runMeasure(cmd *cobra.Command, args []string) error {
	url, selector := args[0], args[1]
	logger.Info("measuring", zap.String("url", url), zap.String("selector", selector))

	sess, err := measure.NewSession(cmd.Context(), url, measure.DefaultOptions())
	if err != nil {
		return err
	}
	defer sess.Close()
	logger.Debug("session ready", zap.String("session", sess.ID))

	viewport, err := sess.Coords(selector, false)
	if err != nil {
		return err
	}
	fmt.Printf("viewport: top=%.1f left=%.1f\n", viewport.Top, viewport.Left)

	if profile.PageRelative {
		page, err := sess.Coords(selector, true)
		if err != nil {
			return err
		}
		fmt.Printf("page:     top=%.1f left=%.1f\n", page.Top, page.Left)
	}
	return nil
}
