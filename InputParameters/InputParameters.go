package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
)

type MatrixKind string

const (
	Laplacian1D MatrixKind = "Laplacian1D"
	Laplacian2D MatrixKind = "Laplacian2D"
	Random      MatrixKind = "Random"
	Hermitian   MatrixKind = "Hermitian"
)

// Parameters obtained from the YAML input file describing which matrix to
// generate and what to do with it. ghodss/yaml goes through encoding/json, so
// the keys are matched through the json tags.
type GeneratorParameters struct {
	Title    string     `json:"Title"`
	Kind     MatrixKind `json:"Kind"`
	Complex  bool       `json:"Complex"`  // complex128 elements instead of float64
	Nx       int        `json:"Nx"`       // Laplacian sizes
	Ny       int        `json:"Ny"`       //
	Rows     int        `json:"Rows"`     // Random sizes, Rows is also the Hermitian size
	Cols     int        `json:"Cols"`     //
	Density  float64    `json:"Density"`  // Random and Hermitian fill fraction
	Definite bool       `json:"Definite"` // Hermitian diagonal shift
	Seed     uint64     `json:"Seed"`
	Offset   int        `json:"Offset"`  // Index base of exported arrays, 0 or 1
	Workers  int        `json:"Workers"` // Goroutines for the multiply check, 0 = GOMAXPROCS
	Check    bool       `json:"Check"`   // Compare against dense reference results
}

func (ip *GeneratorParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, ip); err != nil {
		return err
	}
	return ip.Validate()
}

// Validate normalizes the kind name and checks the sizes it needs.
func (ip *GeneratorParameters) Validate() error {
	for _, k := range []MatrixKind{Laplacian1D, Laplacian2D, Random, Hermitian} {
		if strings.EqualFold(string(ip.Kind), string(k)) {
			ip.Kind = k
		}
	}
	switch ip.Kind {
	case Laplacian1D:
		if ip.Nx < 1 {
			return fmt.Errorf("%s needs Nx >= 1, have %d", ip.Kind, ip.Nx)
		}
	case Laplacian2D:
		if ip.Nx < 1 || ip.Ny < 1 {
			return fmt.Errorf("%s needs Nx, Ny >= 1, have %d, %d", ip.Kind, ip.Nx, ip.Ny)
		}
	case Random:
		if ip.Rows < 1 || ip.Cols < 1 {
			return fmt.Errorf("%s needs Rows, Cols >= 1, have %d, %d", ip.Kind, ip.Rows, ip.Cols)
		}
	case Hermitian:
		if ip.Rows < 1 {
			return fmt.Errorf("%s needs Rows >= 1, have %d", ip.Kind, ip.Rows)
		}
	default:
		return fmt.Errorf("unknown matrix kind %q", ip.Kind)
	}
	if ip.Offset != 0 && ip.Offset != 1 {
		return fmt.Errorf("offset must be 0 or 1, have %d", ip.Offset)
	}
	return nil
}

func (ip *GeneratorParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= Kind\n", ip.Kind)
	fmt.Printf("%v\t\t\t= Complex\n", ip.Complex)
	switch ip.Kind {
	case Laplacian1D, Laplacian2D:
		fmt.Printf("[%d, %d]\t\t\t= Nx, Ny\n", ip.Nx, ip.Ny)
	default:
		fmt.Printf("[%d, %d]\t\t= Rows, Cols\n", ip.Rows, ip.Cols)
		fmt.Printf("%8.5f\t\t= Density\n", ip.Density)
		fmt.Printf("%v\t\t\t= Definite\n", ip.Definite)
		fmt.Printf("%d\t\t\t= Seed\n", ip.Seed)
	}
	fmt.Printf("%d\t\t\t= Offset\n", ip.Offset)
	fmt.Printf("%d\t\t\t= Workers\n", ip.Workers)
	fmt.Printf("%v\t\t\t= Check\n", ip.Check)
}
