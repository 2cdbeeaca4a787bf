package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/rgen/pkg/config"
	"github.com/abdul-hamid-achik/rgen/pkg/generator"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an rgen.yaml config file",
	Long: `Create rgen.yaml in the current directory.

When run in a terminal, init prompts for the input file, output file and
emitter. Otherwise (or with --yes) it uses the flag values.

Examples:
  rgen init
  rgen init --input Sources/App/Router.swift --yes
  rgen init --input Router.swift --emitter builder --force`,
	Run: runInit,
}

var (
	initInput   string
	initOutput  string
	initEmitter string
	initYes     bool
	initForce   bool
)

func init() {
	initCmd.Flags().StringVarP(&initInput, "input", "i", "", "Swift source file with annotated route enums")
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "", "Output file (default: Router.Generate.swift next to the input)")
	initCmd.Flags().StringVar(&initEmitter, "emitter", generator.EmitterTemplate, "Emitter: template or builder")
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Skip prompts and use flag values")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	path := configFile
	if path == "" {
		path = config.FileName + ".yaml"
	}

	if !jsonOutput {
		fmt.Printf("\n  %s Init\n\n", cyan("rgen"))
	}

	cfg := config.Default()
	cfg.Input = initInput
	cfg.Output = initOutput
	cfg.Emitter = initEmitter

	if !initYes && !jsonOutput && isatty.IsTerminal(os.Stdin.Fd()) {
		if cfg.Input == "" {
			cfg.Input = detectInput(".")
		}
		if err := promptConfig(cfg); err != nil {
			fmt.Printf("  %s Cancelled\n", yellow("!"))
			return
		}
	}

	if err := writeInitConfig(cfg, path, initForce); err != nil {
		fail("init failed", err)
	}

	next := []string{"rgen generate", "rgen watch"}
	if jsonOutput {
		printSuccess(InitOutput{
			File:      path,
			Input:     cfg.Input,
			Output:    cfg.OutputPath(),
			Emitter:   cfg.Emitter,
			NextSteps: next,
		})
		return
	}

	fmt.Printf("  %s Created %s\n\n", green("✓"), path)
	fmt.Println("  Next steps:")
	for _, s := range next {
		fmt.Printf("    %s\n", cyan(s))
	}
	fmt.Println()
}

func promptConfig(cfg *config.Config) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Input file").
				Description("Swift source file with annotated route enums").
				Value(&cfg.Input).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("input file is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Output file").
				Description("Leave empty for Router.Generate.swift next to the input").
				Value(&cfg.Output),
			huh.NewSelect[string]().
				Title("Emitter").
				Options(
					huh.NewOption("Template (customizable)", generator.EmitterTemplate),
					huh.NewOption("Builder (built-in only)", generator.EmitterBuilder),
				).
				Value(&cfg.Emitter),
		),
	)
	return form.Run()
}

// writeInitConfig validates cfg and writes it to path. An existing file is
// kept unless force is set.
func writeInitConfig(cfg *config.Config, path string, force bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return config.Write(cfg, path)
}

// detectInput returns the first Swift file under dir that declares an
// @pattern annotation, or "".
func detectInput(dir string) string {
	var found string
	_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			name := d.Name()
			if path != dir && (strings.HasPrefix(name, ".") || name == "Pods" || name == "build" || name == "DerivedData") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".swift" || filepath.Base(path) == generator.DefaultOutputName {
			return nil
		}
		content, err := os.ReadFile(path)
		if err == nil && strings.Contains(string(content), "@pattern") {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	return found
}
