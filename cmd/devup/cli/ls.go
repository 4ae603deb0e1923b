package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/devupkit/devup/internal/docker"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List devup-managed containers",
	Long: `List containers started by devup, running or stopped.

Only containers carrying the devup service label are shown.`,
	RunE: listContainers,
}

func init() {
	rootCmd.AddCommand(lsCmd)
}

func listContainers(cmd *cobra.Command, args []string) error {
	engine, err := docker.NewClient()
	if err != nil {
		return err
	}
	defer engine.Close()

	containers, err := engine.ListManaged(cmd.Context())
	if err != nil {
		return err
	}

	if len(containers) == 0 {
		fmt.Println("No managed containers.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tNAME\tSERVICE\tIMAGE\tSTATUS\tCREATED\n")
	for _, ctr := range containers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			ctr.ID, ctr.Name, ctr.Service, ctr.Image, ctr.Status, formatAge(ctr.Created))
	}
	return w.Flush()
}

// formatAge renders a created timestamp as a coarse relative age.
func formatAge(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
