// Package main provides the ReMat CLI.
package main

import (
	"fmt"
	"os"

	"github.com/remat-ml/remat/remat"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("ReMat %s\n", version)
			return
		case "demo":
			demo()
			return
		}
	}

	fmt.Println("ReMat - Type-Erased Matrix Handles for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Run a host round-trip through a handle")
}

// demo writes a pattern through a handle and reads it back, printing the
// descriptor and a checksum.
func demo() {
	m, err := remat.NewMat(remat.Shape{8, 8}, remat.Uint8)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create matrix: %v\n", err)
		os.Exit(1)
	}

	commits := 0
	handle := remat.New(remat.NewRefAdapter(m, func() { commits++ }))

	view, err := handle.Access(remat.Write)
	if err != nil {
		fmt.Fprintf(os.Stderr, "write access: %v\n", err)
		os.Exit(1)
	}
	for i := range view.AsUint8() {
		view.AsUint8()[i] = uint8(i)
	}
	view.Release()

	view, err = handle.Access(remat.Read)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read access: %v\n", err)
		os.Exit(1)
	}
	defer view.Release()

	sum := 0
	for _, b := range view.AsUint8() {
		sum += int(b)
	}

	fmt.Printf("desc:     %s\n", handle.Desc())
	fmt.Printf("commits:  %d\n", commits)
	fmt.Printf("checksum: %d\n", sum)
}
