package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/aeromech/composite/tsaiwu"
	"github.com/spf13/cobra"
)

var (
	checkMaterialPath string
	checkStress       tsaiwu.Stress
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate the Tsai-Wu criterion for a stress state",
	Long: `Evaluate the Tsai-Wu failure criterion for a material loaded by the
given stress state. Normal stresses are positive in tension.

Examples:
  composite check --material carbon.json --x -6.6e8 --yz 1.29e8
  composite check -m carbon.json --x 5.5e7 --y 5.5e7`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkMaterialPath, "material", "m", "", "Path to material JSON file [required]")
	checkCmd.MarkFlagRequired("material")
	checkCmd.Flags().Float64Var(&checkStress.X, "x", 0, "Normal stress along axis 1")
	checkCmd.Flags().Float64Var(&checkStress.Y, "y", 0, "Normal stress along axis 2")
	checkCmd.Flags().Float64Var(&checkStress.Z, "z", 0, "Normal stress along axis 3")
	checkCmd.Flags().Float64Var(&checkStress.XY, "xy", 0, "Shear stress in the xy plane")
	checkCmd.Flags().Float64Var(&checkStress.XZ, "xz", 0, "Shear stress in the xz plane")
	checkCmd.Flags().Float64Var(&checkStress.YZ, "yz", 0, "Shear stress in the yz plane")
}

func runCheck(cmd *cobra.Command, args []string) error {
	name, strengths, err := loadMaterial(checkMaterialPath)
	if err != nil {
		return err
	}
	crit, err := tsaiwu.New(strengths)
	if err != nil {
		return err
	}
	res, err := crit.Evaluate(checkStress)
	if err != nil && !errors.Is(err, tsaiwu.ErrDegenerateSolve) && !errors.Is(err, tsaiwu.ErrNoRealRoot) {
		return err
	}
	printVerdict(name, crit, res, err)
	return nil
}

func printVerdict(name string, crit *tsaiwu.Criterion, res tsaiwu.Result, solveErr error) {
	fmt.Println()
	fmt.Println("TSAI-WU FAILURE CHECK")
	fmt.Println("───────────────────────────────────────────────")
	if name != "" {
		fmt.Printf("  Material: %s\n", name)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  F1:\t%.6g\tF11:\t%.6g\n", crit.F1, crit.F11)
	fmt.Fprintf(w, "  F2:\t%.6g\tF22:\t%.6g\n", crit.F2, crit.F22)
	fmt.Fprintf(w, "  F3:\t%.6g\tF33:\t%.6g\n", crit.F3, crit.F33)
	fmt.Fprintf(w, "  F44:\t%.6g\tF12:\t%.6g\n", crit.F44, crit.F12)
	fmt.Fprintf(w, "  F55:\t%.6g\tF13:\t%.6g\n", crit.F55, crit.F13)
	fmt.Fprintf(w, "  F66:\t%.6g\tF23:\t%.6g\n", crit.F66, crit.F23)
	w.Flush()
	fmt.Println()
	fmt.Printf("  %s\n", res.Report())
	if solveErr != nil {
		fmt.Printf("  note: %v\n", solveErr)
	}
	fmt.Println()
}
