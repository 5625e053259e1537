package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tiny-planets/internal/materials"
	"github.com/vovakirdan/tiny-planets/internal/materials/scenefile"
	"github.com/vovakirdan/tiny-planets/internal/platform/tui"
)

var (
	flagSelect  []string
	flagWorkers int
	flagDump    bool
	flagPlain   bool
)

var materialsCmd = &cobra.Command{
	Use:   "materials <scene.yaml>...",
	Short: "Analyze the materials used by scene files",
	Long: `Load scene files, scan the selected objects and their descendants, and
list every distinct material their renderers use.

Objects are selected with slash-separated paths from a root object. With no
--select, every root object of every scene is analyzed.

In a terminal the list is interactive:
  Enter  - Select the objects using the material
  Space  - Add or remove the material's objects from the selection
  M      - Select the material itself
  D      - Toggle the hierarchy dump

Examples:
  planets materials testdata/scenes/game.yaml
  planets materials level1.yaml level2.yaml --select Level/Ship --select Sky
  planets materials testdata/scenes/game.yaml --plain --dump`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMaterials,
}

func init() {
	materialsCmd.Flags().StringArrayVar(&flagSelect, "select", nil, "Object path to analyze (repeatable)")
	materialsCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Scene files loaded in parallel (0 = one per CPU)")
	materialsCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the hierarchy dump")
	materialsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive list")
}

func runMaterials(cmd *cobra.Command, args []string) error {
	logger, err := stderrLogger()
	if err != nil {
		return err
	}

	scenes, err := scenefile.LoadAll(args, flagWorkers)
	if err != nil {
		return err
	}
	for _, sc := range scenes {
		for _, ref := range sc.Unresolved {
			logger.Warn("undeclared material", "scene", sc.Path, "ref", ref)
		}
	}

	roots, err := scenefile.Select(scenes, flagSelect)
	if err != nil {
		return err
	}

	analyzer := materials.NewAnalyzer(logger)
	analyzer.Analyze(roots)

	fd := int(os.Stdout.Fd())
	if flagPlain || !term.IsTerminal(fd) {
		printMaterials(analyzer)
		return nil
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width, height = w, h
	}
	selection, err := tui.RunAnalyzer(analyzer, width, height)
	if err != nil {
		return err
	}
	if mat := analyzer.ActiveMaterial(); mat != nil {
		fmt.Printf("Selected material: %s (%s)\n", mat.Name, mat.AssetPath)
	}
	for _, o := range selection {
		fmt.Println(o.Name)
	}
	return nil
}

func printMaterials(a *materials.Analyzer) {
	fmt.Printf("Materials: %d\n", a.Len())
	fmt.Println()

	rows := a.Rows()
	if len(rows) > 0 {
		nameW, shaderW := len("Material"), len("Shader")
		for _, r := range rows {
			nameW = max(nameW, len(r.Name))
			shaderW = max(shaderW, len(r.Shader))
		}

		fmt.Printf("  %-*s  %-*s  %-7s  %s\n", nameW, "Material", shaderW, "Shader", "Objects", "Path")
		fmt.Printf("  %-*s  %-*s  %-7s  %s\n", nameW, "--------", shaderW, "------", "-------", "----")
		for _, r := range rows {
			fmt.Printf("  %-*s  %-*s  %-7d  %s\n", nameW, r.Name, shaderW, r.Shader, r.Objects, r.Path)
		}
	}

	if diags := a.Diagnostics(); len(diags) > 0 {
		fmt.Println()
		for _, d := range diags {
			fmt.Println(d.String())
		}
	}

	if flagDump {
		fmt.Println()
		fmt.Print(strings.TrimRight(a.Dump(), "\n") + "\n")
	}
}
