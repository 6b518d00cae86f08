// Command hashmap drives a string map from a script of put, get, del,
// values and len commands. It is mostly useful for watching the map
// grow while keys are added.
package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RomanDudnik/HashMapMethods/hashmap"
)

var version = "dev" // this will be set by the linker

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}

// newRootCmd creates the root command and binds its flags to viper.
// A fresh command is built per call so tests do not share flag state.
func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetDefault("capacity", hashmap.DefaultCapacity)
	v.SetDefault("log.level", "info")
	v.SetEnvPrefix("HASHMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:          "hashmap",
		Short:        "Exercise a chained hash map from a script.",
		Version:      version,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().Int("capacity", hashmap.DefaultCapacity, "initial number of buckets")
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	v.BindPFlag("capacity", cmd.PersistentFlags().Lookup("capacity"))
	v.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(newRunCmd(v))
	return cmd
}

// newLogger builds a console logger writing to stderr at the configured
// level. Unknown levels fall back to info.
func newLogger(v *viper.Viper, cmd *cobra.Command) zerolog.Logger {
	level, err := zerolog.ParseLevel(v.GetString("log.level"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
