package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/aeromech/composite/section"
	"github.com/aeromech/composite/tsaiwu"
	"github.com/spf13/cobra"
)

var (
	sectionMaterialPath string
	sectionBox          section.Box
	sectionLoads        section.Loads
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Check a hollow box section under beam loads",
	Long: `Convert bending, torsion and shear at a thin-walled hollow rectangular
section into a stress state and evaluate the Tsai-Wu criterion for it.

Examples:
  composite section -m carbon.json --height 0.02 --width 0.002 --thickness 0.0012 \
      --bending 100 --shear -1000`,
	RunE: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	sectionCmd.Flags().StringVarP(&sectionMaterialPath, "material", "m", "", "Path to material JSON file [required]")
	sectionCmd.MarkFlagRequired("material")
	sectionCmd.Flags().Float64Var(&sectionBox.H, "height", 0, "Outer section height")
	sectionCmd.Flags().Float64Var(&sectionBox.B, "width", 0, "Outer section width")
	sectionCmd.Flags().Float64Var(&sectionBox.T, "thickness", 0, "Wall thickness")
	sectionCmd.Flags().Float64Var(&sectionLoads.Bending, "bending", 0, "Bending moment at the section")
	sectionCmd.Flags().Float64Var(&sectionLoads.ProfileTorque, "profile-torque", 0, "Profile-induced torque")
	sectionCmd.Flags().Float64Var(&sectionLoads.Shear, "shear", 0, "Shear force at the section")
	sectionCmd.Flags().Float64Var(&sectionLoads.TailTorque, "tail-torque", 0, "Tailboom torque")
}

func runSection(cmd *cobra.Command, args []string) error {
	name, strengths, err := loadMaterial(sectionMaterialPath)
	if err != nil {
		return err
	}
	crit, err := tsaiwu.New(strengths)
	if err != nil {
		return err
	}
	props, err := sectionBox.Properties()
	if err != nil {
		return err
	}
	st, err := section.Stresses(sectionBox, sectionLoads)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("SECTION PROPERTIES")
	fmt.Println("───────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ix:\t%.6g\n", props.Ix)
	fmt.Fprintf(w, "  Iy:\t%.6g\n", props.Iy)
	fmt.Fprintf(w, "  J:\t%.6g\n", props.J)
	fmt.Fprintf(w, "  Q:\t%.6g\n", props.Q)
	fmt.Fprintf(w, "  sigma_x:\t%.6g\n", st.X)
	fmt.Fprintf(w, "  tau_yz:\t%.6g\n", st.YZ)
	w.Flush()

	res, err := crit.Evaluate(st)
	if err != nil && !errors.Is(err, tsaiwu.ErrDegenerateSolve) && !errors.Is(err, tsaiwu.ErrNoRealRoot) {
		return err
	}
	printVerdict(name, crit, res, err)
	return nil
}
