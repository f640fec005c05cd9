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

const exampleInputFile = `
########################################
Title: "Test Case"
Kind: Hermitian # Laplacian1D, Laplacian2D, Random or Hermitian
Complex: true
Rows: 200
Density: 0.02
Definite: true
Seed: 42
Offset: 1
Check: true
########################################
`

// RunCmd represents the run command
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate and check the matrix described in a YAML input file",
	Long:  `Generate and check the matrix described in a YAML input file`,
	Run: func(cmd *cobra.Command, args []string) {
		fileName, _ := cmd.Flags().GetString("inputFile")
		ip, err := processInput(fileName)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			fmt.Printf("Example File:%s\n", exampleInputFile)
			os.Exit(1)
		}
		ip.Print()
		runAndReport(ip)
	},
}

func processInput(fileName string) (ip *InputParameters.GeneratorParameters, err error) {
	var data []byte
	if len(fileName) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputFile)")
		return
	}
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	ip = &InputParameters.GeneratorParameters{}
	if err = ip.Parse(data); err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return
}

func init() {
	rootCmd.AddCommand(RunCmd)
	RunCmd.Flags().StringP("inputFile", "I", "", "YAML file describing the matrix to generate")
}
