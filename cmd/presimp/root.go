package main

// Copyright (c) 2025 Colin McRae

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/predrag3141/FPGroup/group"
	"github.com/predrag3141/FPGroup/logging"
	"github.com/predrag3141/FPGroup/presfile"
)

const envPrefix = "PRESIMP"

// env holds what every command needs once flags and config are read
type env struct {
	v      *viper.Viper
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{v: viper.New()}
	var configFile string
	root := &cobra.Command{
		Use:           "presimp",
		Short:         "Simplify and recognise finitely presented groups",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.init(cmd, configFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "YAML config file")
	flags.String("log-format", "console", "log format: console, json or logfmt")
	flags.String("log-level", "warn", "log level")
	flags.StringP("file", "f", "", "presentation YAML file")
	flags.IntP("gens", "n", 0, "number of generators when relators are given with --rel")
	flags.StringArrayP("rel", "r", nil, "relator such as \"a b A B\" or \"g0^2 g1\" (repeatable)")
	flags.Bool("utf8", false, "write Z as ℤ")
	_ = e.v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = e.v.BindPFlag("log.level", flags.Lookup("log-level"))

	root.AddCommand(
		newSimplifyCmd(e),
		newAbelianiseCmd(e),
		newRecogniseCmd(e),
		newExtensionCmd(e),
		newKATCmd(e),
	)
	return root
}

func (e *env) init(cmd *cobra.Command, configFile string) error {
	e.v.SetEnvPrefix(envPrefix)
	e.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	e.v.AutomaticEnv()
	e.v.SetDefault("kat.dir", "kat")
	if configFile != "" {
		e.v.SetConfigFile(configFile)
		if err := e.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %s", configFile)
		}
	}
	logger, err := logging.New("presimp", logging.Config{
		Format: e.v.GetString("log.format"),
		Level:  e.v.GetString("log.level"),
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	e.logger = logger
	return nil
}

// presentation reads the input from --file or from --gens and --rel
func (e *env) presentation(cmd *cobra.Command) (*group.Presentation, error) {
	flags := cmd.Flags()
	file, _ := flags.GetString("file")
	rels, _ := flags.GetStringArray("rel")
	gens, _ := flags.GetInt("gens")
	if file != "" {
		if len(rels) > 0 {
			return nil, errors.New("use either --file or --rel")
		}
		e.logger.Debug("loading", zap.String("file", file))
		return presfile.LoadFile(file)
	}
	if gens == 0 && len(rels) == 0 {
		return nil, errors.New("no presentation: give --file or --gens and --rel")
	}
	return group.NewFromStrings(gens, rels...)
}

func utf8Flag(cmd *cobra.Command) bool {
	utf8, _ := cmd.Flags().GetBool("utf8")
	return utf8
}
