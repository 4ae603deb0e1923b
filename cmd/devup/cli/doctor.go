package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devupkit/devup/internal/config"
	"github.com/devupkit/devup/internal/docker"
	"github.com/devupkit/devup/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnostic information about the devup environment",
	Long: `Displays diagnostic information for debugging:
- devup version
- Docker daemon reachability
- Default network configuration`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	fmt.Println(ui.Bold("devup doctor"))
	fmt.Printf("  version: %s\n", version)

	globalCfg, _ := config.LoadGlobal()
	fmt.Printf("  default network: %s\n", globalCfg.Network)

	engine, err := docker.NewClient()
	if err != nil {
		fmt.Printf("  docker client: %s %v\n", ui.FailTag(), err)
		return nil
	}
	defer engine.Close()

	if err := engine.Ping(cmd.Context()); err != nil {
		fmt.Printf("  docker daemon: %s %v\n", ui.FailTag(), err)
		return nil
	}
	fmt.Printf("  docker daemon: %s reachable\n", ui.OKTag())

	containers, err := engine.ListManaged(cmd.Context())
	if err != nil {
		fmt.Printf("  managed containers: %s %v\n", ui.FailTag(), err)
		return nil
	}
	fmt.Printf("  managed containers: %d\n", len(containers))

	return nil
}
