// Command bindings prints the default binding file or checks one.
//
//	bindings dump > bindings.yaml
//	bindings check bindings.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/milk9111/actionmap/input"
)

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: bindings dump | bindings check <file>")
	}
	flag.Parse()

	var err error
	switch flag.Arg(0) {
	case "dump":
		err = dump(os.Stdout)
	case "check":
		if flag.NArg() != 2 {
			flag.Usage()
			os.Exit(2)
		}
		err = check(os.Stdout, flag.Arg(1))
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func dump(w io.Writer) error {
	data, err := input.MarshalConfig(input.DefaultBindings(), input.DefaultGestureSpecs())
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func check(w io.Writer, path string) error {
	cfg, err := input.LoadConfig(path)
	if err != nil {
		return err
	}

	for _, a := range input.Actions() {
		b, err := cfg.Bindings.Binding(a)
		if err != nil {
			return err
		}
		controls := make([]string, 0, len(b.Keys)+len(b.GamePad))
		for _, k := range b.Keys {
			controls = append(controls, "key:"+k.String())
		}
		for _, c := range b.GamePad {
			controls = append(controls, "pad:"+c.String())
		}
		if cfg.Gestures != nil {
			if r, _ := cfg.Gestures.Rule(a); r.Pressed != nil || r.Triggered != nil {
				controls = append(controls, "pointer")
			}
		}
		if len(controls) == 0 {
			controls = append(controls, "(unbound)")
		}
		fmt.Fprintf(w, "%-32s %s\n", a, strings.Join(controls, " "))
	}
	if cfg.Gestures == nil {
		fmt.Fprintln(w, "gestures: defaults")
	}
	return nil
}
