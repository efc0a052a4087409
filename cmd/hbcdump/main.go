// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	hermes "github.com/Pilfer/hermes-go"
)

var (
	wantHeader   bool
	wantDebug    bool
	wantDisasm   bool
	verifyFooter bool
)

func prettyPrint(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func dumpFile(path string, cmd *cobra.Command) {
	log.Printf("Processing filename %s", path)

	hf, err := hermes.Open(path, &hermes.Options{VerifyFooter: verifyFooter})
	if err != nil {
		log.Printf("error while opening file %s: %v", path, err)
		return
	}
	defer hf.Close()

	if wantHeader {
		fmt.Println(prettyPrint(hf.Header))
	}

	if wantDebug {
		fmt.Println(prettyPrint(hf.DebugInfo.Header))
	}

	if wantDisasm {
		for _, fb := range hf.FunctionBytecode {
			name := hf.FunctionDisplayName(uint32(fb.FunctionIndex))
			fmt.Printf("function #%d (%s):\n", fb.FunctionIndex, name)
			lines, err := hermes.Disassemble(hf, fb)
			if err != nil {
				log.Printf("disassembly failed for function #%d: %v", fb.FunctionIndex, err)
				continue
			}
			for _, l := range lines {
				fmt.Println("  " + l)
			}
		}
	}

	if len(hf.Anomalies) > 0 {
		fmt.Println(prettyPrint(hf.Anomalies))
	}
}

func dump(cmd *cobra.Command, args []string) {
	dumpFile(args[0], cmd)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "hbcdump",
		Short: "A Hermes Bytecode file parser",
		Long:  "An HBC container parser built for Hermes bytecode inspection",
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("hbcdump version 0.0.1")
		},
	}

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Dumps an HBC file",
		Long:  "Dumps the container header, debug-info header, and per-function disassembly",
		Args:  cobra.ExactArgs(1),
		Run:   dump,
	}

	dumpCmd.Flags().BoolVarP(&wantHeader, "header", "", true, "Dump container header")
	dumpCmd.Flags().BoolVarP(&wantDebug, "debug", "", false, "Dump debug-info header")
	dumpCmd.Flags().BoolVarP(&wantDisasm, "disasm", "", false, "Disassemble every function")
	dumpCmd.Flags().BoolVarP(&verifyFooter, "verify", "", false, "Verify the SHA-1 footer")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
