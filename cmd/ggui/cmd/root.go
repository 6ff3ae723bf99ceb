// Package cmd implements the ggui CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (demo, render, skin, tree).
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/go-drift/ggui/cmd/ggui/internal/config"
	"github.com/go-drift/ggui/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Env is what a command runs with.
type Env struct {
	Config config.Config
	Out    io.Writer
}

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(env *Env, args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "ggui",
	Short: "ggui - declarative UI descriptions compiled to widget trees",
	Long: `ggui compiles builder procedures into retained widget trees and
drives them with a per-tick interaction loop.

Use "ggui <command> --help" for more information about a command.`,
	Usage: "ggui <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return Run(os.Args[1:], os.Stdout)
}

// Run runs the CLI with args, writing command output to out.
func Run(args []string, out io.Writer) error {
	if len(args) == 0 {
		printHelp(out, rootCmd)
		return nil
	}

	// Handle global flags
	var (
		configPath   string
		filteredArgs []string
		overrides    = map[string]string{}
	)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(out, rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(out, "ggui version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			overrides["log.verbose"] = "true"
		case "--config", "--skin":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a file path", arg)
			}
			if arg == "--config" {
				configPath = args[i+1]
			} else {
				overrides["skin.path"] = args[i+1]
			}
			i++
		default:
			if v, ok := strings.CutPrefix(arg, "--config="); ok {
				configPath = v
				continue
			}
			if v, ok := strings.CutPrefix(arg, "--skin="); ok {
				overrides["skin.path"] = v
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(out, rootCmd)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(out, rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(out, cmd)
			return nil
		}
	}

	cfg, err := loadConfig(configPath, overrides)
	if err != nil {
		return err
	}
	errors.SetHandler(&errors.LogHandler{Verbose: cfg.Log.Verbose})
	return cmd.Run(&Env{Config: cfg, Out: out}, cmdArgs)
}

func loadConfig(path string, overrides map[string]string) (config.Config, error) {
	v, err := config.New(path)
	if err != nil {
		return config.Config{}, err
	}
	applyOverrides(v, overrides)
	return config.Decode(v)
}

func applyOverrides(v *viper.Viper, overrides map[string]string) {
	for k, val := range overrides {
		v.Set(k, val)
	}
}

// flagValue consumes "--name value" or "--name=value" at args[i]. It
// returns the value and the number of arguments consumed, zero when
// args[i] is not the flag.
func flagValue(args []string, i int, name string) (string, int, error) {
	arg := args[i]
	if v, ok := strings.CutPrefix(arg, name+"="); ok {
		return v, 1, nil
	}
	if arg != name {
		return "", 0, nil
	}
	if i+1 >= len(args) {
		return "", 0, fmt.Errorf("%s requires a value", name)
	}
	return args[i+1], 2, nil
}

func printHelp(out io.Writer, cmd *Command) {
	fmt.Fprintln(out, cmd.Long)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s\n", cmd.Usage)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(out, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	fmt.Fprintln(out, "  -h, --help           Show help for a command")
	fmt.Fprintln(out, "  -v, --version        Show version information")
	fmt.Fprintln(out, "  --config FILE        Read settings from FILE (default: ./ggui.yaml)")
	fmt.Fprintln(out, "  --skin FILE          Use the skin asset in FILE")
	fmt.Fprintln(out, "  --verbose            Log diagnostics with stack traces")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Environment:")
	fmt.Fprintln(out, "  GGUI_CONFIG          Config file (lower priority than --config)")
	fmt.Fprintln(out, "  GGUI_<KEY>           Override a setting, e.g. GGUI_RENDER_WIDTH=640")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples:")
	fmt.Fprintln(out, "  ggui demo                 Run the sample pages in the terminal")
	fmt.Fprintln(out, "  ggui render -o out.png    Draw the sample page to a PNG file")
	fmt.Fprintln(out, "  ggui skin check my.yaml   Validate a skin asset")
}

func printCommandHelp(out io.Writer, cmd *Command) {
	fmt.Fprintln(out, cmd.Long)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s\n", cmd.Usage)
}
