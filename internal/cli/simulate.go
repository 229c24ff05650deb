package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/lazypower/lovesim/internal/counter"
	"github.com/lazypower/lovesim/internal/engine"
	"github.com/lazypower/lovesim/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
)

var (
	simFile    string
	simJSON    bool
	simNoCount bool
	simFlags   = engine.DefaultProfile()
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one simulation and print the probabilities",
	Long: `Run one simulation. Inputs start from the form defaults, are overlaid by
--file (a JSON profile, as accepted by POST /api/simulate) and finally by any
flags given explicitly. Numbers outside their range are clamped.`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.StringVarP(&simFile, "file", "f", "", "read the profile from a JSON file (- for stdin)")
	f.BoolVar(&simJSON, "json", false, "print the API response instead of a table")
	f.BoolVar(&simNoCount, "no-count", false, "do not increment the run counter")

	p := &simFlags
	f.StringVar((*string)(&p.SoloDuration), "solo-duration", string(p.SoloDuration), "time single: lt_6m, 6m_2y, gt_2y, never")
	f.StringVar((*string)(&p.Gender), "gender", string(p.Gender), "female or male")
	f.StringVar((*string)(&p.AgeGroup), "age-group", string(p.AgeGroup), "early_20s, late_20s, early_30s, late_30s, 40_plus")
	f.StringVar((*string)(&p.Experience), "experience", string(p.Experience), "dating experience: yes or no")
	f.Float64Var(&p.AppearanceSelf, "appearance-self", p.AppearanceSelf, "self-rated appearance 1-10")
	f.Float64Var(&p.AppearanceOthers, "appearance-others", p.AppearanceOthers, "appearance as rated by others 1-10")
	f.StringVar((*string)(&p.StyleEffort), "style-effort", string(p.StyleEffort), "none, occasional, invested")
	f.StringVar((*string)(&p.SkinHairCare), "skin-hair-care", string(p.SkinHairCare), "basic, regular, professional")
	f.StringVar((*string)(&p.BodyCare), "body-care", string(p.BodyCare), "none, weekly_1_2, weekly_3_plus, pt_diet")
	f.StringVar((*string)(&p.MannerEffort), "manner-effort", string(p.MannerEffort), "none, occasional, active")
	f.StringVar((*string)(&p.HealthCare), "health-care", string(p.HealthCare), "none, trying, done")
	f.StringVar((*string)(&p.ActivityRange), "activity-range", string(p.ActivityRange), "home_office, neighborhood, downtown, travel")
	f.IntVar(&p.NetworkSize, "network-size", p.NetworkSize, "people you could be introduced through, 0-50")
	f.IntVar(&p.NetworkQuality, "network-quality", p.NetworkQuality, "network quality 1-5")
	f.Float64Var(&p.WorkGenderRatio, "work-gender-ratio", p.WorkGenderRatio, "share of the other gender at work, 0-100")
	f.StringVar((*string)(&p.LivingEnv), "living-env", string(p.LivingEnv), "parents or independent")
	f.StringVar((*string)(&p.Proactiveness), "proactiveness", string(p.Proactiveness), "almost_never, quarterly, monthly, weekly")
	f.IntVar(&p.Resilience, "resilience", p.Resilience, "resilience to rejection 1-5")
	f.IntVar(&p.Confidence, "confidence", p.Confidence, "confidence 1-10")
	f.IntVar(&p.Openness, "openness", p.Openness, "openness 1-5")
	f.IntVar(&p.HighFilters, "high-filters", p.HighFilters, "non-negotiable requirements 0-10")
	f.IntVar(&p.MediumFilters, "medium-filters", p.MediumFilters, "strong preferences 0-10")
	f.IntVar(&p.LowFilters, "low-filters", p.LowFilters, "mild preferences 0-10")
	f.BoolVar(&p.ApplyResults, "apply-results", p.ApplyResults, "willing to act on the results")
	f.StringVar((*string)(&p.Activity1), "activity1", string(p.Activity1), "first activity (see GET /api/options)")
	f.StringVar((*string)(&p.Activity2), "activity2", string(p.Activity2), "second activity")
	f.StringVar((*string)(&p.ActivityFreq), "activity-freq", string(p.ActivityFreq), "lt_monthly, monthly, weekly, twice_weekly")
	f.StringVar((*string)(&p.NoveltyTier), "novelty-tier", string(p.NoveltyTier), "none, yearly, quarterly, proactive")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	p, err := profileFromInputs(cmd.Flags(), simFile, simFlags, cmd.InOrStdin())
	if err != nil {
		return err
	}

	runner := &report.Runner{Scorer: engine.Default()}
	if !simNoCount {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tracker := counter.OpenTracker(cfg, nil)
		defer tracker.Close()
		runner.Tracker = tracker
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rep, err := runner.Run(ctx, report.SourceCLI, p)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if simJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	printReport(out, rep, !simNoCount)
	return nil
}

// profileFromInputs layers defaults, then the JSON file, then explicitly set
// flags. flagValues holds the parsed flag values.
func profileFromInputs(fs *pflag.FlagSet, file string, flagValues engine.Profile, stdin io.Reader) (engine.Profile, error) {
	p := engine.DefaultProfile()

	if file != "" {
		var r io.Reader = stdin
		if file != "-" {
			fh, err := os.Open(file)
			if err != nil {
				return p, fmt.Errorf("open profile: %w", err)
			}
			defer fh.Close()
			r = fh
		}
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return p, fmt.Errorf("decode profile %s: %w", file, err)
		}
	}

	dst := reflect.ValueOf(&p).Elem()
	src := reflect.ValueOf(flagValues)
	fs.Visit(func(f *pflag.Flag) {
		if i, ok := profileFieldIndex[strings.ReplaceAll(f.Name, "-", "_")]; ok {
			dst.Field(i).Set(src.Field(i))
		}
	})
	return p, nil
}

// profileFieldIndex maps Profile JSON names to struct field indexes.
var profileFieldIndex = func() map[string]int {
	t := reflect.TypeOf(engine.Profile{})
	idx := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		idx[name] = i
	}
	return idx
}()

func printReport(w io.Writer, rep report.Report, counted bool) {
	fmt.Fprintf(w, "%s %.1f / 100\n\n", bold("Base score"), rep.BaseScore)
	fmt.Fprintln(w, gray(fmt.Sprintf("  %-10s %10s %14s", "horizon", "encounter", "relationship")))
	for _, h := range rep.Horizons {
		label := fmt.Sprintf("%d months", h.Months)
		line := fmt.Sprintf("  %-10s %9.1f%% %13.1f%%", label, h.Encounter, h.Relationship)
		if h.Months == engine.HeadlineHorizon {
			line = bold(line)
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", bold("Reaction:"), cyan(rep.Reaction))
	fmt.Fprintf(w, "%s %s\n", bold("Advice:  "), cyan(rep.Advice))
	fmt.Fprintf(w, "%s %.1f %s\n", bold("Filters: "), rep.FilterWeight, warningColor(rep.FilterWarning))

	if !counted {
		return
	}
	if rep.CountOK {
		fmt.Fprintf(w, "\n%s simulations run so far\n", bold(humanize.Comma(rep.Count)))
	} else {
		fmt.Fprintf(w, "\n%s\n", gray("run counter unavailable"))
	}
}

func warningColor(fw engine.FilterWarning) string {
	switch fw {
	case engine.FilterWarningStrong:
		return red("(" + string(fw) + ")")
	case engine.FilterWarningMild:
		return yellow("(" + string(fw) + ")")
	default:
		return green("(" + string(fw) + ")")
	}
}
