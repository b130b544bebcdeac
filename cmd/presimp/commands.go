package main

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/predrag3141/FPGroup/knownanswertest"
	"github.com/predrag3141/FPGroup/presfile"
)

func newSimplifyCmd(e *env) *cobra.Command {
	var output string
	var verify bool
	cmd := &cobra.Command{
		Use:   "simplify",
		Short: "Simplify a presentation and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.presentation(cmd)
			if err != nil {
				return err
			}
			before := p.String()
			start := time.Now()
			h, err := p.IntelligentSimplify()
			if err != nil {
				return err
			}
			e.logger.Info("simplified",
				zap.String("input", before),
				zap.Int("generators", p.CountGenerators()),
				zap.Int("relators", p.CountRelators()),
				zap.Duration("elapsed", time.Since(start)),
			)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, p.String())
			if h != nil {
				fmt.Fprintln(out, h.String())
				if verify {
					fmt.Fprintf(out, "verified: %t\n", h.Verify())
				}
			}
			if output != "" {
				if err := savePresentation(output, p); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the simplified presentation to this YAML file")
	cmd.Flags().BoolVar(&verify, "verify", false, "check that relators map to the identity")
	return cmd
}

func newAbelianiseCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "abelianise",
		Aliases: []string{"abelianize"},
		Short:   "Print the abelianisation",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.presentation(cmd)
			if err != nil {
				return err
			}
			ab, err := p.Abelianisation()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ab.Text(utf8Flag(cmd)))
			return nil
		},
	}
}

func newRecogniseCmd(e *env) *cobra.Command {
	var simplify bool
	cmd := &cobra.Command{
		Use:     "recognise",
		Aliases: []string{"recognize"},
		Short:   "Name the group if it is recognised",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.presentation(cmd)
			if err != nil {
				return err
			}
			if simplify {
				if _, err := p.IntelligentSimplify(); err != nil {
					return err
				}
			}
			name, err := p.RecogniseGroup(utf8Flag(cmd))
			if err != nil {
				return err
			}
			if name == "" {
				name = "unknown"
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
	cmd.Flags().BoolVar(&simplify, "simplify", true, "simplify before recognising")
	return cmd
}

func newExtensionCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "extension",
		Short: "Look for a splitting as an extension of a group by Z",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.presentation(cmd)
			if err != nil {
				return err
			}
			monodromy, err := p.IdentifyExtensionOverZ()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if monodromy == nil {
				fmt.Fprintln(out, "not recognised as an extension over Z")
				return nil
			}
			fmt.Fprintln(out, p.String())
			fmt.Fprintln(out, monodromy.String())
			return nil
		},
	}
}

func newKATCmd(e *env) *cobra.Command {
	var catalogue string
	var logEvery int
	cmd := &cobra.Command{
		Use:   "kat",
		Short: "Run the known-answer catalogue and write reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := knownanswertest.DefaultCatalogue()
			if catalogue != "" {
				var err error
				if c, err = presfile.LoadCatalogueFile(catalogue); err != nil {
					return err
				}
			}
			kl, err := knownanswertest.NewKATLog(e.v.GetString("kat.dir"), logEvery, e.logger)
			if err != nil {
				return err
			}
			numFailed := 0
			for _, entry := range c.Presentations {
				p, err := entry.Presentation()
				if err != nil {
					return err
				}
				pc := knownanswertest.NewPresentationContext(entry.Name, p)
				if err = pc.Run(); err != nil {
					return err
				}
				if err = kl.ReportProgress(pc); err != nil {
					return err
				}
				if err = pc.Check(entry.Expect); err != nil {
					numFailed++
					e.logger.Warn("known answer mismatch", zap.Error(err))
				}
			}
			summary, err := kl.ReportResults()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d runs, %d changed, %d unverified, %d failed\n",
				summary.NumRuns, summary.NumChanged, summary.NumUnverified, numFailed)
			if numFailed > 0 {
				return errors.Errorf("%d known answers failed", numFailed)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&catalogue, "catalogue", "", "catalogue YAML file (default: built-in catalogue)")
	cmd.Flags().IntVar(&logEvery, "log-every", 10, "log progress every n runs")
	return cmd
}
