package cmd

import (
	"fmt"

	"github.com/go-drift/ggui/pkg/errors"
	"github.com/go-drift/ggui/pkg/skin"
)

func init() {
	RegisterCommand(&Command{
		Name:  "skin",
		Short: "Dump or check skin assets",
		Long: `Dump or check skin assets.

  ggui skin dump          Print the active skin as a YAML asset. With
                          --skin, the asset is layered over the baseline
                          first, so the output is complete.
  ggui skin check FILE    Load FILE, report styles no control uses (with
                          the closest known name) and fail on errors.
  ggui skin keys          List the style keys controls look up.`,
		Usage: "ggui skin <dump|check|keys> [FILE]",
		Run:   runSkin,
	})
}

func runSkin(env *Env, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("skin requires a subcommand: dump, check or keys")
	}
	switch args[0] {
	case "dump":
		data, err := skin.LoadOptional(env.Config.Skin.Path)
		if err != nil {
			return err
		}
		return skin.DataFromSkin(data.Skin()).Encode(env.Out)
	case "check":
		if len(args) < 2 {
			return fmt.Errorf("skin check requires a file path")
		}
		return checkSkin(env, args[1])
	case "keys":
		for _, k := range skin.KnownKeys {
			fmt.Fprintln(env.Out, k)
		}
		return nil
	}
	return fmt.Errorf("unknown skin subcommand %q", args[0])
}

func checkSkin(env *Env, path string) error {
	data, err := skin.LoadFile(path)
	if err != nil {
		return err
	}
	rec := &errors.Recorder{}
	errors.SetHandler(rec)
	defer errors.SetHandler(&errors.LogHandler{Verbose: env.Config.Log.Verbose})

	s := data.Skin()
	for _, e := range rec.Errors {
		fmt.Fprintf(env.Out, "warning: %v\n", e.Err)
	}
	fmt.Fprintf(env.Out, "%s: %d styles, %d warnings\n", path, len(s.Keys()), len(rec.Errors))
	return nil
}
