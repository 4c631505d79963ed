// cmd/parity.go
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nedc-bench/nedc-score/score"
	"github.com/nedc-bench/nedc-score/score/parity"
)

var (
	parityRefDir        string
	parityHypDir        string
	parityCandConfig    string
	parityReferenceConf string
)

var parityCmd = &cobra.Command{
	Use:   "parity",
	Short: "Compare a candidate scoring configuration against a reference configuration over a corpus",
	Run: func(cmd *cobra.Command, args []string) {
		candCfg := score.DefaultConfig()
		if parityCandConfig != "" {
			loaded, err := score.LoadConfig(parityCandConfig)
			if err != nil {
				logrus.Fatalf("loading candidate config: %v", err)
			}
			candCfg = loaded
		}
		refCfg := score.DefaultConfig()
		if parityReferenceConf != "" {
			loaded, err := score.LoadConfig(parityReferenceConf)
			if err != nil {
				logrus.Fatalf("loading reference config: %v", err)
			}
			refCfg = loaded
		}

		pairs, err := discoverPairs(parityRefDir, parityHypDir)
		if err != nil {
			logrus.Fatalf("discovering file pairs: %v", err)
		}
		logrus.Infof("Running parity check over %d pairs", len(pairs))

		var filePairs []parity.FilePair
		for _, p := range pairs {
			ref, err := readCSVBI(p.refPath)
			if err != nil {
				logrus.Warnf("skipping %s: %v", p.name, err)
				continue
			}
			hyp, err := readCSVBI(p.hypPath)
			if err != nil {
				logrus.Warnf("skipping %s: %v", p.name, err)
				continue
			}
			filePairs = append(filePairs, parity.FilePair{Name: p.name, Ref: ref, Hyp: hyp})
		}

		candidate := func(ref, hyp *score.AnnotationFile, _ score.Config) (map[score.Algorithm]score.PerFileResult, error) {
			return score.Evaluate(ref, hyp, candCfg)
		}
		reference := func(ref, hyp *score.AnnotationFile, _ score.Config) (map[score.Algorithm]score.PerFileResult, error) {
			return score.Evaluate(ref, hyp, refCfg)
		}

		harness := parity.NewHarness(candCfg.Tolerance)
		report, err := harness.Run(filePairs, candidate, reference, candCfg)
		if err != nil {
			logrus.Fatalf("parity run failed: %v", err)
		}

		if report.Passed() {
			fmt.Fprintln(os.Stdout, "parity: PASS, 0 discrepancies")
			return
		}
		fmt.Fprintf(os.Stdout, "parity: FAIL, %d discrepancies\n", len(report.Discrepancies))
		for _, d := range report.Discrepancies {
			fmt.Fprintln(os.Stdout, d.String())
		}
		os.Exit(1)
	},
}

func init() {
	parityCmd.Flags().StringVar(&parityRefDir, "ref", "", "Directory of reference CSV_BI annotation files")
	parityCmd.Flags().StringVar(&parityHypDir, "hyp", "", "Directory of hypothesis CSV_BI annotation files")
	parityCmd.Flags().StringVar(&parityCandConfig, "candidate-config", "", "Path to the candidate YAML scoring configuration")
	parityCmd.Flags().StringVar(&parityReferenceConf, "reference-config", "", "Path to the reference YAML scoring configuration")
	_ = parityCmd.MarkFlagRequired("ref")
	_ = parityCmd.MarkFlagRequired("hyp")
}
