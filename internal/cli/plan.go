package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/medvis/bodymap/pkg/anatomy"
	"github.com/medvis/bodymap/pkg/findings"
	"github.com/medvis/bodymap/pkg/layout"
)

// planOpts holds the command-line flags for the plan command.
type planOpts struct {
	output     string // output file path (default: <input>.plan.json)
	configPath string // TOML layout config, defaults apply if empty
	connector  string // connector style override
	minBound   float64
	maxBound   float64
	minGap     float64
}

// newPlanCmd creates the plan command for computing label layouts.
func newPlanCmd() *cobra.Command {
	var opts planOpts

	cmd := &cobra.Command{
		Use:   "plan <findings.(yaml|json)>",
		Short: "Compute a label layout plan from a findings report",
		Long: `Compute a label layout plan from a findings report.

The plan command takes a findings report (the classification service's
output, YAML or JSON) and computes where each region's annotation label
goes: anchors on the left and right columns, collision-free label
centers, and a connector path from each label back to its region's
source point on the diagram.

The output is a plan.json file the rendering layer draws directly.

Examples:
  bodymap plan findings.yaml
  bodymap plan findings.json -o case42.plan.json --connector elbow
  bodymap plan findings.yaml --config layout.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>.plan.json)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "layout config file (TOML)")
	cmd.Flags().StringVar(&opts.connector, "connector", "", "connector style: curve (default), elbow")
	cmd.Flags().Float64Var(&opts.minBound, "min-bound", 0, "override vertical lower bound (percent)")
	cmd.Flags().Float64Var(&opts.maxBound, "max-bound", 0, "override vertical upper bound (percent)")
	cmd.Flags().Float64Var(&opts.minGap, "min-gap", -1, "override minimum label gap (percent)")

	return cmd
}

// runPlan loads the report, computes the layout, and writes output.
func runPlan(ctx context.Context, input string, opts planOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	report, err := findings.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load report %s: %w", input, err)
	}
	if report.Diagnosis != "" {
		logger.Info("Loaded report", "diagnosis", report.Diagnosis)
	}

	regions, unmatched := report.Regions()
	for _, id := range unmatched {
		logger.Debug("Identifier matched no region", "identifier", id)
	}

	eng, err := layout.New(cfg, anatomy.BodyMap, layout.WithLogger(logger))
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	plan := eng.Plan(regions)
	prog.done(fmt.Sprintf("Placed %d labels", len(plan.Entries)))

	outputPath := opts.output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".plan.json"
	}

	if err := layout.WritePlanFile(plan, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	if plan.IsDegraded() {
		printWarning("Layout degraded: label gaps compressed on %s", sideList(plan.Degraded))
	}
	printSuccess("Plan complete")
	printFile(outputPath)
	printStats(len(plan.Entries), len(unmatched), plan.IsDegraded())

	return nil
}

// resolveConfig builds the layout config from the optional TOML file
// and the flag overrides, validating the final result.
func resolveConfig(opts planOpts) (layout.Config, error) {
	cfg := layout.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := layout.LoadConfigFile(opts.configPath)
		if err != nil {
			return layout.Config{}, err
		}
		cfg = loaded
	}

	if opts.connector != "" {
		cfg.Connector = layout.ConnectorStyle(opts.connector)
	}
	if opts.minBound != 0 {
		cfg.MinBound = opts.minBound
	}
	if opts.maxBound != 0 {
		cfg.MaxBound = opts.maxBound
	}
	if opts.minGap >= 0 {
		cfg.MinGap = opts.minGap
	}

	if err := cfg.Validate(); err != nil {
		return layout.Config{}, err
	}
	return cfg, nil
}

// sideList formats degraded sides for display.
func sideList(sides []layout.Side) string {
	parts := make([]string, len(sides))
	for i, s := range sides {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
