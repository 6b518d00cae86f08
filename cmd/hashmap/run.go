package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RomanDudnik/HashMapMethods/stringmap"
)

func newRunCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "run [script]",
		Short: "Run a script read from a file or stdin.",
		Long: `Run executes one command per line against a fresh string map:

  put <key> <value>   associate value with key
  get <key>           print the value of key or <nil>
  del <key>           remove key
  values              print every value, one per line
  len                 print the number of keys and buckets

Blank lines and lines starting with # are ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(v, cmd)
			capacity := v.GetInt("capacity")
			if capacity < 1 {
				return errors.Errorf("capacity must be at least 1, got %d", capacity)
			}

			in := cmd.InOrStdin()
			name := "stdin"
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "open script")
				}
				defer f.Close()
				in, name = f, args[0]
			}

			m := stringmap.NewWithCapacity(capacity)
			m.OnResize(func(oldCap, newCap int) {
				log.Debug().
					Int("from", oldCap).
					Int("to", newCap).
					Int("size", m.Length()).
					Msg("map grew")
			})
			log.Debug().Str("script", name).Int("capacity", capacity).Msg("running script")
			if err := runScript(in, cmd.OutOrStdout(), m, log); err != nil {
				return errors.Wrapf(err, "script %s", name)
			}
			log.Info().
				Int("size", m.Length()).
				Int("capacity", m.Capacity()).
				Msg("script finished")
			return nil
		},
	}
}

var arity = map[string]int{
	"put":    2,
	"get":    1,
	"del":    1,
	"values": 0,
	"len":    0,
}

// runScript executes each line of r against m, writing results to w.
func runScript(r io.Reader, w io.Writer, m *stringmap.Map, log zerolog.Logger) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		op, args := fields[0], fields[1:]
		want, ok := arity[op]
		if !ok {
			return errors.Errorf("line %d: unknown command %q", lineNo, op)
		}
		if len(args) != want {
			return errors.Errorf("line %d: %s takes %d arguments, got %d",
				lineNo, op, want, len(args))
		}
		log.Debug().Int("line", lineNo).Str("op", op).Strs("args", args).Msg("exec")
		if err := exec(w, m, op, args); err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}
	}
	return errors.Wrap(scanner.Err(), "read script")
}

func exec(w io.Writer, m *stringmap.Map, op string, args []string) error {
	var err error
	switch op {
	case "put":
		m.Put(args[0], args[1])
	case "get":
		if v, ok := m.Get(args[0]); ok {
			_, err = fmt.Fprintln(w, v)
		} else {
			_, err = fmt.Fprintln(w, "<nil>")
		}
	case "del":
		m.Remove(args[0])
	case "values":
		for i := m.Iterator(); i.HasNext() && err == nil; {
			_, err = fmt.Fprintln(w, i.Next())
		}
	case "len":
		_, err = fmt.Fprintf(w, "size=%d capacity=%d\n", m.Length(), m.Capacity())
	}
	return err
}
