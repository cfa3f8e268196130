package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"glassful/internal/driver"
	"glassful/internal/project"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [dir]",
	Short: "Translate every *.glsl.rs file of a directory or project",
	Long: `Build translates all *.glsl.rs sources below a directory in parallel.
Settings come from the nearest glassful.toml when one exists; flags given
on the command line win.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringP("out", "o", "", "output directory (default: next to the sources)")
	buildCmd.Flags().IntP("jobs", "j", 0, "parallel workers (0 = GOMAXPROCS)")
	buildCmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
	buildCmd.Flags().Bool("no-cache", false, "disable the translation cache")
}

// buildPlan is the merged result of glassful.toml and flags.
type buildPlan struct {
	title    string
	src      string
	out      string
	jobs     int
	maxDiags int
	cache    bool
	cacheDir string
}

func planBuild(cmd *cobra.Command, args []string) (buildPlan, error) {
	start := "."
	if len(args) == 1 {
		start = args[0]
	}
	maxDiags, err := maxDiagnostics(cmd)
	if err != nil {
		return buildPlan{}, err
	}
	plan := buildPlan{title: filepath.Base(start), src: start, maxDiags: maxDiags, cache: true}

	manifest, ok, err := project.LoadManifest(start)
	if err != nil {
		return buildPlan{}, err
	}
	if ok {
		cfg := manifest.Config
		plan.title = cfg.Project.Name
		plan.src = manifest.SrcDir()
		plan.out = manifest.OutDir()
		plan.jobs = cfg.Build.Jobs
		plan.cache = cfg.Cache.Enabled
		plan.cacheDir = manifest.CacheDir()
		if !cmd.Root().PersistentFlags().Changed("max-diagnostics") {
			plan.maxDiags = cfg.Build.MaxDiagnostics
		}
	}

	flags := cmd.Flags()
	if flags.Changed("out") {
		plan.out, _ = flags.GetString("out")
	}
	if flags.Changed("jobs") {
		plan.jobs, _ = flags.GetInt("jobs")
	}
	if noCache, _ := flags.GetBool("no-cache"); noCache {
		plan.cache = false
	}
	return plan, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	plan, err := planBuild(cmd, args)
	if err != nil {
		return err
	}
	uiValue, _ := cmd.Flags().GetString("ui")
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if plan.cache {
		cache, err = driver.OpenDiskCache(plan.cacheDir)
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
	}

	timer := newTimer(cmd)
	opts := driver.DirOptions{
		Src:            plan.src,
		Out:            plan.out,
		Jobs:           plan.jobs,
		MaxDiagnostics: plan.maxDiags,
		Cache:          cache,
		Timer:          timer,
	}

	var results []driver.FileResult
	if shouldUseTUI(mode) {
		results, err = runBuildWithUI(cmd.Context(), plan.title, opts)
	} else {
		results, err = driver.TranslateDir(cmd.Context(), opts)
	}
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	printTimings(cmd, timer)
	return summarize(cmd, results)
}

func summarize(cmd *cobra.Command, results []driver.FileResult) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	failed := 0
	for _, r := range results {
		switch r.Status {
		case driver.StatusOK, driver.StatusCached:
			continue
		}
		failed++
		if msg, ok := describeFault(r.Err); ok {
			fmt.Fprintf(errOut, "%s: %s\n", r.Path, msg)
			continue
		}
		if rerr := renderDiagnostics(cmd, errOut, r.Err); !errorAlreadyReported(rerr) {
			fmt.Fprintf(errOut, "%s: %v\n", r.Path, r.Err)
		}
	}
	fmt.Fprintf(out, "translated %d of %d files\n", len(results)-failed, len(results))
	if failed > 0 {
		return reportedError{err: fmt.Errorf("%d files failed", failed)}
	}
	return nil
}
