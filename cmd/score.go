// cmd/score.go
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nedc-bench/nedc-score/score"
)

var (
	scoreRefDir     string
	scoreHypDir     string
	scoreConfigPath string
	scoreOutPath    string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a corpus of reference/hypothesis CSV_BI pairs under all five algorithms",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := score.DefaultConfig()
		if scoreConfigPath != "" {
			loaded, err := score.LoadConfig(scoreConfigPath)
			if err != nil {
				logrus.Fatalf("loading config: %v", err)
			}
			cfg = loaded
		}

		pairs, err := discoverPairs(scoreRefDir, scoreHypDir)
		if err != nil {
			logrus.Fatalf("discovering file pairs: %v", err)
		}
		logrus.Infof("Scoring %d reference/hypothesis pairs from %s and %s", len(pairs), scoreRefDir, scoreHypDir)

		perAlgorithm := make(map[score.Algorithm][]score.PerFileResult, 5)
		var skipped []string
		for _, p := range pairs {
			ref, err := readCSVBI(p.refPath)
			if err != nil {
				logrus.Warnf("skipping %s: %v", p.name, err)
				skipped = append(skipped, p.name)
				continue
			}
			hyp, err := readCSVBI(p.hypPath)
			if err != nil {
				logrus.Warnf("skipping %s: %v", p.name, err)
				skipped = append(skipped, p.name)
				continue
			}
			results, err := score.Evaluate(ref, hyp, cfg)
			if err != nil {
				logrus.Warnf("skipping %s: %v", p.name, err)
				skipped = append(skipped, p.name)
				continue
			}
			for alg, r := range results {
				perAlgorithm[alg] = append(perAlgorithm[alg], r)
			}
		}

		out := os.Stdout
		if scoreOutPath != "" {
			f, err := os.Create(scoreOutPath)
			if err != nil {
				logrus.Fatalf("creating output file: %v", err)
			}
			defer f.Close()
			out = f
		}

		combined := make(map[score.Algorithm]score.AggregateResult, 5)
		for alg, results := range perAlgorithm {
			combined[alg] = score.Aggregate(alg, results, cfg.Epoch.EpochDuration, skipped)
		}
		score.WriteCombinedSummary(out, combined)
		logrus.Info("Scoring complete.")
	},
}

type filePair struct {
	name    string
	refPath string
	hypPath string
}

// discoverPairs matches files present in both directories by base name, the
// way a corpus of reference and hypothesis annotations is laid out on disk:
// one file per session, same name under each directory.
func discoverPairs(refDir, hypDir string) ([]filePair, error) {
	refEntries, err := os.ReadDir(refDir)
	if err != nil {
		return nil, fmt.Errorf("reading reference directory %s: %w", refDir, err)
	}
	var pairs []filePair
	for _, entry := range refEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv_bi") {
			continue
		}
		hypPath := filepath.Join(hypDir, entry.Name())
		if _, err := os.Stat(hypPath); err != nil {
			logrus.Warnf("no hypothesis file for %s, skipping", entry.Name())
			continue
		}
		pairs = append(pairs, filePair{
			name:    entry.Name(),
			refPath: filepath.Join(refDir, entry.Name()),
			hypPath: hypPath,
		})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].name < pairs[j].name })
	return pairs, nil
}

func readCSVBI(path string) (*score.AnnotationFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return score.ParseCSVBI(f, filepath.Base(path))
}

func init() {
	scoreCmd.Flags().StringVar(&scoreRefDir, "ref", "", "Directory of reference CSV_BI annotation files")
	scoreCmd.Flags().StringVar(&scoreHypDir, "hyp", "", "Directory of hypothesis CSV_BI annotation files")
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to a YAML scoring configuration (defaults applied when omitted)")
	scoreCmd.Flags().StringVar(&scoreOutPath, "out", "", "Path to write the combined summary (stdout when omitted)")
	_ = scoreCmd.MarkFlagRequired("ref")
	_ = scoreCmd.MarkFlagRequired("hyp")
}
