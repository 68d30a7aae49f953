// Copyright (c) 2024 The Falcon Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"nanocc/compile"
)

var (
	flagLex     bool
	flagParse   bool
	flagLLVM    bool
	flagCodegen bool
	flagDebug   bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nanocc [--lex|--parse|--llvm|--codegen] <input_file>",
		Short: "An ahead-of-time compiler for a strict subset of C",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompile,
		// main prints the single "Error: <message>" line itself.
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.Flags().BoolVar(&flagLex, "lex", false, "print tokens and exit")
	cmd.Flags().BoolVar(&flagParse, "parse", false, "print the AST and exit")
	cmd.Flags().BoolVar(&flagLLVM, "llvm", false, "write the linear IR and exit")
	cmd.Flags().BoolVar(&flagCodegen, "codegen", false, "run all stages through the backend but write nothing")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "log every stage transition")
	cmd.MarkFlagsMutuallyExclusive("lex", "parse", "llvm", "codegen")
	return cmd
}

func runCompile(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if flagDebug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	driver := compile.NewDriver(log)
	output, err := driver.Run(args[0], selectedStage())
	if err != nil {
		return err
	}
	if output != "" {
		fmt.Print(output)
	}
	return nil
}

func selectedStage() compile.Stage {
	switch {
	case flagLex:
		return compile.StageLex
	case flagParse:
		return compile.StageParse
	case flagLLVM:
		return compile.StageLLVM
	case flagCodegen:
		return compile.StageCodegen
	default:
		return compile.StageFull
	}
}
