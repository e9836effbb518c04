// Command ls-burn computes a spacecraft's velocity, distance and remaining fuel
// after a constant-acceleration burn.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/litescript/ls-burn/internal/kinematics"
	"github.com/litescript/ls-burn/internal/logging"
	"github.com/litescript/ls-burn/internal/params"
	"github.com/litescript/ls-burn/internal/report"
	"github.com/litescript/ls-burn/internal/ui"
	"github.com/litescript/ls-burn/internal/version"
)

// EnvPrefix is prepended to environment variables read by the CLI, e.g. LSBURN_PARAMS.
const EnvPrefix = "LSBURN"

// Output formats for calc.
const (
	outputText  = "text"
	outputTable = "table"
	outputJSON  = "json"
	outputCard  = "card"
)

// fieldFlags maps each parameter to its command-line flag.
var fieldFlags = []struct {
	field string
	flag  string
	usage string
}{
	{kinematics.FieldInitialVelocity, "initial-velocity", "Initial velocity (km/h)"},
	{kinematics.FieldAcceleration, "acceleration", "Acceleration (m/s², negative to decelerate)"},
	{kinematics.FieldElapsed, "elapsed", "Burn duration (s)"},
	{kinematics.FieldInitialDistance, "initial-distance", "Initial distance (km)"},
	{kinematics.FieldStartingFuel, "starting-fuel", "Starting fuel mass (kg)"},
	{kinematics.FieldFuelBurnRate, "burn-rate", "Fuel burn rate (kg/s)"},
}

// app carries per-invocation dependencies so commands stay testable.
type app struct {
	v      *viper.Viper
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time
	isTTY  func() bool
	logger *logging.Logger
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &app{
		v:      v,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		now:    time.Now,
		isTTY:  func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
		logger: logging.Discard(),
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "ls-burn",
		Short: "Compute velocity, distance and remaining fuel after a constant-acceleration burn",
		Long: `ls-burn applies one constant-acceleration time step to a spacecraft.

Parameters default to the reference scenario (10000 km/h, 3 m/s² for 3600 s,
0 km, 5000 kg of fuel at 0.5 kg/s). Load a parameter file with --params
(.json, .yaml, .yml, .toml, or - for JSON on stdin) or set ` + EnvPrefix + `_PARAMS.
Individual flags override the loaded values.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(a.v.GetString("log-level"))
			if err != nil {
				return err
			}
			a.logger = logging.New(a.stderr, level)
			return nil
		},
		RunE: a.runCalc,
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	_ = a.v.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))

	addParamFlags(root.Flags(), a.v)
	root.Flags().StringP("output", "o", outputText, "Output format: text, table, json, or card")

	calc := &cobra.Command{
		Use:   "calc",
		Short: "Run one calculation and print the result",
		Example: `  ls-burn calc
  ls-burn calc --acceleration -1.5 --elapsed 600 --output table
  ls-burn calc --params burn.yaml --clamp-fuel --output json`,
		Args: cobra.NoArgs,
		RunE: a.runCalc,
	}
	addParamFlags(calc.Flags(), a.v)
	calc.Flags().StringP("output", "o", outputText, "Output format: text, table, json, or card")

	tui := &cobra.Command{
		Use:   "tui",
		Short: "Edit parameters interactively and watch the result update",
		Args:  cobra.NoArgs,
		RunE:  a.runTUI,
	}
	addParamFlags(tui.Flags(), a.v)

	units := &cobra.Command{
		Use:   "units",
		Short: "Explain the unit conversions used by the calculation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, c := range kinematics.Conversions() {
				if i > 0 {
					fmt.Fprintln(a.stdout)
				}
				fmt.Fprintf(a.stdout, "%s = %s  (%s → %s)\n", c.Name, report.FormatValue(c.Factor, ""), c.From, c.To)
				fmt.Fprintf(a.stdout, "  %s\n", c.Description)
			}
			return nil
		},
	}

	ver := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "ls-burn v%s\n", version.Version)
		},
	}

	root.AddCommand(calc, tui, units, ver)
	return root
}

// addParamFlags registers the parameter flags on fs. The --params flag is also
// bound to viper so LSBURN_PARAMS can supply it.
func addParamFlags(fs *pflag.FlagSet, v *viper.Viper) {
	fs.String("params", "", "Parameter file (.json, .yaml, .yml, .toml) or - for JSON on stdin")
	fs.Bool("clamp-fuel", false, "Report 0 kg instead of failing when the burn exhausts the fuel")
	for _, ff := range fieldFlags {
		def, _ := kinematics.ReferenceState().Get(ff.field)
		fs.Float64(ff.flag, def, ff.usage)
	}
	_ = v.BindEnv("params")
}

// source builds the parameter source from flags that were set explicitly.
func (a *app) source(cmd *cobra.Command) (params.Source, error) {
	src := params.Source{Stdin: a.stdin, Overrides: map[string]float64{}}

	if cmd.Flags().Changed("params") {
		src.Path, _ = cmd.Flags().GetString("params")
	} else {
		src.Path = a.v.GetString("params")
	}

	for _, ff := range fieldFlags {
		if !cmd.Flags().Changed(ff.flag) {
			continue
		}
		val, err := cmd.Flags().GetFloat64(ff.flag)
		if err != nil {
			return params.Source{}, fmt.Errorf("flag --%s: %w", ff.flag, err)
		}
		src.Overrides[ff.field] = val
	}
	return src, nil
}

func fuelPolicy(cmd *cobra.Command) kinematics.FuelPolicy {
	if clamp, _ := cmd.Flags().GetBool("clamp-fuel"); clamp {
		return kinematics.FuelPolicyClamp
	}
	return kinematics.FuelPolicyError
}

func (a *app) loadState(cmd *cobra.Command) (kinematics.State, error) {
	src, err := a.source(cmd)
	if err != nil {
		return kinematics.State{}, err
	}
	if src.Path != "" {
		a.logger.Debug("loading parameters from %s", src.Path)
	}
	s, err := params.Load(src)
	if err != nil {
		return kinematics.State{}, fmt.Errorf("load parameters: %w", err)
	}
	return s, nil
}

func (a *app) runCalc(cmd *cobra.Command, args []string) error {
	log := a.logger.Named("calc")

	output, _ := cmd.Flags().GetString("output")
	output = strings.ToLower(output)
	switch output {
	case outputText, outputTable, outputJSON, outputCard:
	default:
		return fmt.Errorf("unknown output format %q (want text, table, json, or card)", output)
	}

	s, err := a.loadState(cmd)
	if err != nil {
		return err
	}

	policy := fuelPolicy(cmd)
	log.Debug("state=%+v policy=%s", s, policy)

	res, err := kinematics.NewCalculator(kinematics.Options{FuelPolicy: policy}).Calculate(s)
	if err != nil {
		var fe *kinematics.FuelExhaustionError
		if errors.As(err, &fe) {
			return fmt.Errorf("calculate: %w (use --clamp-fuel to report 0 kg instead)", err)
		}
		return fmt.Errorf("calculate: %w", err)
	}
	if res.FuelClamped {
		log.Warn("burn of %s exhausts %s of fuel; remaining fuel clamped to 0 kg",
			report.FormatValue(s.FuelBurnRateKgPerS*s.ElapsedSeconds, "kg"),
			report.FormatValue(s.StartingFuelKg, "kg"))
	}

	switch output {
	case outputTable:
		report.WriteTable(a.stdout, s, res)
	case outputJSON:
		if err := report.NewExport(s, res, policy, a.now().UTC()).WriteJSON(a.stdout); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
	case outputCard:
		fmt.Fprintln(a.stdout, report.RenderCard(s, res))
	default:
		report.WriteText(a.stdout, res)
	}
	return nil
}

func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	if !a.isTTY() {
		return errors.New("tui requires a terminal; use calc for scripted output")
	}

	s, err := a.loadState(cmd)
	if err != nil {
		return err
	}

	model := ui.New(s, fuelPolicy(cmd), a.logger.Named("tui"))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithInput(a.stdin), tea.WithOutput(a.stdout))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := a.rootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
