package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open [id]",
	Short: "Open a problem's external page in the browser",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := a.problem(id)
		if err != nil {
			return err
		}
		if p.Link == "" {
			return fmt.Errorf("problem %d has no link", id)
		}

		a.state.RecordView(p)
		fmt.Fprintf(cmd.OutOrStdout(), "🌐 Opening %s...\n", p.Link)
		return openBrowser(p.Link)
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func openBrowser(url string) error {
	var err error
	switch runtime.GOOS {
	case "linux":
		err = exec.Command("xdg-open", url).Start()
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = fmt.Errorf("unsupported platform")
	}
	if err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
