package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiny-planets/internal/scene"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List the scene build list",
	Long: `Shows the scenes of the build list in load order, and every scene
registered in the binary.`,
	Args: cobra.NoArgs,
	RunE: runScenes,
}

func runScenes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Println("Build list:")
	fmt.Println()
	fmt.Printf("  %-5s  %-10s  %s\n", "Index", "Scene", "Registered")
	fmt.Printf("  %-5s  %-10s  %s\n", "-----", "-----", "----------")
	for i, name := range cfg.Scenes.Build {
		registered := "yes"
		if !scene.Exists(name) {
			registered = "no"
		}
		fmt.Printf("  %-5d  %-10s  %s\n", i, name, registered)
	}

	fmt.Println()
	fmt.Println("Registered scenes:")
	fmt.Println()
	for _, info := range scene.List() {
		fmt.Printf("  %-10s  %s\n", info.Name, info.Summary)
	}
	return nil
}
