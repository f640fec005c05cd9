/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/notargets/gocsc/InputParameters"
)

// RandomCmd represents the random command
var RandomCmd = &cobra.Command{
	Use:   "random",
	Short: "Build a seeded random sparse or Hermitian matrix and check it",
	Long: `Build a seeded random sparse matrix with a fixed number of entries per
column, or with --hermitian a random Hermitian diagonally dominant matrix of
size rows. The same seed always produces the same matrix.`,
	Run: func(cmd *cobra.Command, args []string) {
		ip := &InputParameters.GeneratorParameters{Title: "Random", Kind: InputParameters.Random}
		if h, _ := cmd.Flags().GetBool("hermitian"); h {
			ip.Title, ip.Kind = "Random Hermitian", InputParameters.Hermitian
		}
		ip.Rows, _ = cmd.Flags().GetInt("rows")
		ip.Cols, _ = cmd.Flags().GetInt("cols")
		ip.Density, _ = cmd.Flags().GetFloat64("density")
		ip.Seed, _ = cmd.Flags().GetUint64("seed")
		ip.Definite, _ = cmd.Flags().GetBool("definite")
		ip.Complex, _ = cmd.Flags().GetBool("complex")
		ip.Check, _ = cmd.Flags().GetBool("check")
		ip.Offset, _ = cmd.Flags().GetInt("offset")
		ip.Workers, _ = cmd.Flags().GetInt("workers")
		if ip.Cols == 0 {
			ip.Cols = ip.Rows
		}
		runAndReport(ip)
	},
}

func init() {
	rootCmd.AddCommand(RandomCmd)
	RandomCmd.Flags().IntP("rows", "r", 100, "number of rows, also the Hermitian size")
	RandomCmd.Flags().Int("cols", 0, "number of columns, defaults to rows")
	RandomCmd.Flags().Float64P("density", "d", 0.05, "fraction of entries present, in (0, 1]")
	RandomCmd.Flags().Uint64P("seed", "s", 1, "random seed")
	RandomCmd.Flags().Bool("hermitian", false, "build a Hermitian diagonally dominant matrix")
	RandomCmd.Flags().Bool("definite", true, "make the Hermitian diagonal dominance strict")
	RandomCmd.Flags().BoolP("complex", "c", false, "use complex128 elements")
	RandomCmd.Flags().Bool("check", false, "compare against dense gonum results")
	RandomCmd.Flags().Int("offset", 0, "index base used for the exported arrays, 0 or 1")
	RandomCmd.Flags().IntP("workers", "w", 0, "goroutines for the parallel product, 0 for GOMAXPROCS")
}
