package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devupkit/devup/internal/docker"
	"github.com/devupkit/devup/internal/ui"
)

var rmCmd = &cobra.Command{
	Use:   "rm <name|id>...",
	Short: "Remove devup-managed containers",
	Long: `Force-remove one or more devup-managed containers by name or ID.

Only containers started by devup can be removed; other containers are
never touched.`,
	Args: cobra.MinimumNArgs(1),
	RunE: removeContainers,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func removeContainers(cmd *cobra.Command, args []string) error {
	engine, err := docker.NewClient()
	if err != nil {
		return err
	}
	defer engine.Close()

	managed, err := engine.ListManaged(cmd.Context())
	if err != nil {
		return err
	}

	for _, arg := range args {
		info, ok := findManaged(managed, arg)
		if !ok {
			return fmt.Errorf("no managed container %q", arg)
		}
		if err := engine.RemoveContainer(cmd.Context(), info.ID); err != nil {
			return err
		}
		fmt.Println(ui.Green("Removed " + info.Name))
	}
	return nil
}

// findManaged matches arg against managed container names and ID prefixes.
func findManaged(managed []docker.Info, arg string) (docker.Info, bool) {
	for _, ctr := range managed {
		if ctr.Name == arg || strings.HasPrefix(ctr.ID, arg) {
			return ctr, true
		}
	}
	return docker.Info{}, false
}
