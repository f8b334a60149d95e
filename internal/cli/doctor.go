package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/chromeless/internal/cli/styles"
	"github.com/bnema/chromeless/internal/winchrome"
	"github.com/bnema/chromeless/internal/x11chrome"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Probe platform backends and show the resolved configuration",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, args []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}
	cfg := a.Config.Get()

	report := styles.DoctorReport{
		Config: styles.DoctorConfigReport{
			ConfigFile:    a.Config.GetConfigFile(),
			PlacementPath: cfg.Placement.Path,
		},
	}

	win := styles.DoctorBackendCheck{Name: "Win32 (user32 + DWM)", Available: winchrome.Available()}
	if win.Available {
		if winchrome.CompositionEnabled() {
			win.Detail = "desktop composition active"
		} else {
			win.Detail = "composition attributes unavailable, chrome degrades to flat borders"
		}
	} else {
		win.Detail = "not a Windows session"
	}

	x11 := styles.DoctorBackendCheck{Name: "X11 (EWMH)", Available: x11chrome.Available()}
	if x11.Available {
		x11.Detail = "DISPLAY set, window manager drives move and resize"
	} else {
		x11.Detail = "no DISPLAY in environment"
	}

	report.Backends = []styles.DoctorBackendCheck{win, x11}
	report.OverallOK = win.Available || x11.Available

	renderer := styles.NewDoctorRenderer(styles.NewTheme())
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(report))
	return nil
}
