/*
Copyright © 2021 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package unitsutil holds the commands of the units command-line tool.
package unitsutil

import (
	"fmt"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spatialmodel/units"
	"github.com/spatialmodel/units/unit"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

// Log receives the log messages of every command.
var Log logrus.FieldLogger = logrus.StandardLogger()

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to the commands.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel specifies the least severe level of log message
              to print: one of panic, fatal, error, warning, info or debug.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "from",
			usage: `
              from specifies the name of the unit the value is given in,
              for example "hour". Run "units catalog" for the list of names.`,
			shorthand:  "f",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "to",
			usage: `
              to specifies the name of the unit to convert the value to.`,
			shorthand:  "t",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "term",
			usage: `
              term specifies one term of a composite unit as NAME=EXPONENT,
              for example "meter=1". Repeat the flag for each term; the
              terms are kept in the order given.`,
			defaultVal: termFlag,
			flagsets:   []*pflag.FlagSet{dimsCmd.Flags()},
		},
		{
			name: "format",
			usage: `
              format specifies the output format of the catalog listing:
              text, json or toml.`,
			defaultVal: "text",
			flagsets:   []*pflag.FlagSet{catalogCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("UNITS")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case pflag.Value:
				set.VarP(option.defaultVal.(pflag.Value), option.name, option.shorthand, option.usage)
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(convertCmd)
	Root.AddCommand(dimsCmd)
	Root.AddCommand(catalogCmd)
}

// setConfig reads the configuration file, if any, and sets the log level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("units: problem reading configuration file: %v", err)
		}
	}
	lvl, err := logrus.ParseLevel(Cfg.GetString("LogLevel"))
	if err != nil {
		return fmt.Errorf("units: invalid LogLevel: %v", err)
	}
	if l, ok := Log.(*logrus.Logger); ok {
		l.SetLevel(lvl)
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "units",
	Short: "Convert between units of measure.",
	Long: `units converts values between the units of the time, length, mass and
electric current catalogs and reports the dimensions of composite units.
Use the subcommands specified below to access the functionality.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'UNITS_var' where 'var' is the
name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of units.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "units v%s\n", units.Version)
	},
	DisableAutoGenTag: true,
}

var convertCmd = &cobra.Command{
	Use:   "convert VALUE",
	Short: "Convert a value from one unit to another.",
	Long: `convert converts VALUE, given in the unit named by --from, to the unit
named by --to. Both units must measure the same dimension, for example

	units convert 90 --from minute --to hour`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := cast.ToFloat64E(args[0])
		if err != nil {
			return fmt.Errorf("units: invalid value %q: %v", args[0], err)
		}
		from, to := Cfg.GetString("from"), Cfg.GetString("to")
		r, err := Convert(v, from, to)
		if err != nil {
			return err
		}
		Log.WithFields(logrus.Fields{
			"value": v,
			"from":  from,
			"to":    to,
		}).Debug("converted value")
		fmt.Fprintf(cmd.OutOrStdout(), "%g %s\n", r, to)
		return nil
	},
	DisableAutoGenTag: true,
}

var dimsCmd = &cobra.Command{
	Use:   "dims",
	Short: "Print the dimensions of a composite unit.",
	Long: `dims builds a composite unit from the --term flags and prints its
dimensions and the number of base units it equals, for example

	units dims --term kilometer=1 --term hour=-1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer termFlag.reset(cmd.Flags().Lookup("term"))
		c, err := ParseTerms(GetStringSlice("term", Cfg))
		if err != nil {
			return err
		}
		Log.WithFields(logrus.Fields{
			"terms": len(c.Terms),
		}).Debug("built composite unit")
		fmt.Fprintf(cmd.OutOrStdout(), "%s [%s] = %g base units\n", c, c.Dims(), c.AmountOfBase())
		return nil
	},
	DisableAutoGenTag: true,
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the unit catalogs.",
	Long: `catalog lists every unit of every catalog with the number of base
units it equals. The output format is chosen with --format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := Cfg.GetString("format")
		Log.WithFields(logrus.Fields{
			"format":   format,
			"catalogs": len(unit.Catalogs()),
		}).Debug("listing catalogs")
		return WriteCatalogs(cmd.OutOrStdout(), format)
	},
	DisableAutoGenTag: true,
}
