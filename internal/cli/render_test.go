package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestFlagOrConfig(t *testing.T) {
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "x", Run: func(*cobra.Command, []string) {}}
		cmd.Flags().Int("count", 24, "")
		return cmd
	}

	t.Run("config wins when flag untouched", func(t *testing.T) {
		cmd := newCmd()
		cmd.SetArgs(nil)
		if err := cmd.Execute(); err != nil {
			t.Fatal(err)
		}
		got := 24
		flagOrConfig(cmd, "count", &got, 7)
		if got != 7 {
			t.Errorf("got %d, want config value 7", got)
		}
	})

	t.Run("explicit flag wins over config", func(t *testing.T) {
		cmd := newCmd()
		cmd.SetArgs([]string{"--count", "3"})
		if err := cmd.Execute(); err != nil {
			t.Fatal(err)
		}
		got := 3
		flagOrConfig(cmd, "count", &got, 7)
		if got != 3 {
			t.Errorf("got %d, want flag value 3", got)
		}
	})
}
