package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dojanjanjan/charm-reservations/internal/auth"
)

func newPinCmd() *cobra.Command {
	pin := &cobra.Command{
		Use:   "pin",
		Short: "Staff PIN helpers",
	}
	pin.AddCommand(newPinHashCmd())
	return pin
}

func newPinHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <pin>",
		Short: "Hash a staff PIN for the STAFF_PIN_HASH setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := strings.TrimSpace(args[0])
			if p == "" {
				return fmt.Errorf("pin must not be empty")
			}
			h, err := auth.HashPIN(p)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "export STAFF_PIN_HASH='%s'\n", h)
			return nil
		},
	}
}
