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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/gocsc/InputParameters"
)

// LaplacianCmd represents the laplacian command
var LaplacianCmd = &cobra.Command{
	Use:   "laplacian",
	Short: "Build the 1D or 2D finite difference Laplacian and check it",
	Long: `Build the 1D (Nx only) or 2D (Nx and Ny) finite difference Laplacian with
Dirichlet boundaries. With --check the dense spectrum is compared against the
closed form eigenvalues.`,
	Run: func(cmd *cobra.Command, args []string) {
		ip := &InputParameters.GeneratorParameters{Title: "Laplacian"}
		ip.Nx, _ = cmd.Flags().GetInt("nx")
		ip.Ny, _ = cmd.Flags().GetInt("ny")
		ip.Complex, _ = cmd.Flags().GetBool("complex")
		ip.Check, _ = cmd.Flags().GetBool("check")
		ip.Offset, _ = cmd.Flags().GetInt("offset")
		ip.Workers, _ = cmd.Flags().GetInt("workers")
		ip.Kind = InputParameters.Laplacian1D
		if ip.Ny > 0 {
			ip.Kind = InputParameters.Laplacian2D
		}
		runAndReport(ip)
	},
}

func init() {
	rootCmd.AddCommand(LaplacianCmd)
	LaplacianCmd.Flags().IntP("nx", "x", 10, "number of interior points in x")
	LaplacianCmd.Flags().IntP("ny", "y", 0, "number of interior points in y, 0 for the 1D operator")
	LaplacianCmd.Flags().BoolP("complex", "c", false, "use complex128 elements")
	LaplacianCmd.Flags().Bool("check", false, "compare against dense gonum results")
	LaplacianCmd.Flags().Int("offset", 0, "index base used for the exported arrays, 0 or 1")
	LaplacianCmd.Flags().IntP("workers", "w", 0, "goroutines for the parallel product, 0 for GOMAXPROCS")
}

// runAndReport generates and checks, prints the report and exits non zero
// when a check failed.
func runAndReport(ip *InputParameters.GeneratorParameters) {
	r, err := Generate(ip)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	r.Print()
	if len(r.Failures) != 0 {
		os.Exit(1)
	}
}
