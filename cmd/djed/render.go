package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/djed/internal/config"
	"github.com/vango-dev/djed/internal/errors"
)

func renderCmd(load func() (*config.Config, error)) *cobra.Command {
	var (
		demo  string
		ticks int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a demo and print its markup after every tick",
		Long: `Mount a demo into an in-memory document, send it tick messages and
print the markup after each drain together with a summary of the
document mutations the tick caused.

Examples:
  djed render
  djed render --demo todo --ticks 4
  djed render --config djed.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("demo") {
				cfg.Demo.Name = demo
			}
			if cmd.Flags().Changed("ticks") {
				if ticks < 0 {
					return errors.New("E122").WithDetail(fmt.Sprintf("--ticks = %d", ticks))
				}
				cfg.Demo.Ticks = ticks
			}
			return runRender(cmd.OutOrStdout(), newStack(cfg, os.Stderr))
		},
	}

	cmd.Flags().StringVarP(&demo, "demo", "d", config.DefaultDemo, "Demo to mount (counter, todo)")
	cmd.Flags().IntVarP(&ticks, "ticks", "n", 0, "Number of tick messages to send (default from config)")

	return cmd
}

func runRender(w io.Writer, rt *stack) error {
	s, err := newSession(rt.cfg.Demo.Name, rt.sched)
	if err != nil {
		return err
	}
	defer s.destroy()

	rt.logger.Debug("demo mounted", "demo", s.name, "ticks", rt.cfg.Demo.Ticks)
	fmt.Fprintf(w, "# %s: mounted\n%s\n", s.name, s.HTML())
	for i := 1; i <= rt.cfg.Demo.Ticks; i++ {
		journal := s.Tick()
		fmt.Fprintf(w, "# tick %d: %s\n%s\n", i, summarize(journal), s.HTML())
	}
	return nil
}
