// main.go - Operator CLI for the shielded pool.
//
// All commands act on a local state store; there is no network surface.
//
// Usage:
//
//	zkcash init --authority <hex32>
//	zkcash transact <bundle.json>
//	zkcash set-deposit-limit <lamports> --authority <hex32>
//	zkcash set-config [--deposit-rate bp] [--withdrawal-rate bp] [--fee-error-margin bp] --authority <hex32>
//	zkcash fund <hex32> <lamports>
//	zkcash status
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"zkcash/internal/account"
	"zkcash/internal/merkle"
	"zkcash/internal/pool"
	"zkcash/internal/store"
)

var (
	configPath string
	authority  string
)

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}

// openPool wires config, store and logger for one command invocation.
func openPool() (*pool.Pool, *store.Store, func(), error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	log := newLogger(cfg.LogLevel)
	st, err := store.Open(cfg.StorePath)
	if err != nil {
		return nil, nil, nil, err
	}
	admin, err := cfg.Admin()
	if err != nil {
		st.Close()
		return nil, nil, nil, err
	}
	return pool.New(st, log, admin), st, func() { st.Close() }, nil
}

func requireAuthority() (account.Address, error) {
	if authority == "" {
		return account.Address{}, fmt.Errorf("--authority is required")
	}
	return account.AddressFromHex(authority)
}

func main() {
	root := &cobra.Command{
		Use:           "zkcash",
		Short:         "Shielded pool state machine operator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "zkcash.json", "path to the CLI config file")
	root.PersistentFlags().StringVar(&authority, "authority", "", "authority address (hex)")

	root.AddCommand(initCmd(), transactCmd(), statusCmd(), setDepositLimitCmd(), setConfigCmd(), fundCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the tree, vault and global config",
		RunE: func(cmd *cobra.Command, args []string) error {
			auth, err := requireAuthority()
			if err != nil {
				return err
			}
			p, _, done, err := openPool()
			if err != nil {
				return err
			}
			defer done()
			return p.Initialize(auth)
		},
	}
}

func transactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transact <bundle.json>",
		Short: "Submit a shielded transaction bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := LoadBundle(args[0])
			if err != nil {
				return err
			}
			p, _, done, err := openPool()
			if err != nil {
				return err
			}
			defer done()
			return p.Transact(params)
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show tree, vault and counter state",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, done, err := openPool()
			if err != nil {
				return err
			}
			defer done()

			treeAddr, _, err := account.Tree()
			if err != nil {
				return err
			}
			blob, err := st.GetAccount(treeAddr)
			if err != nil {
				return fmt.Errorf("pool not initialized: %w", err)
			}
			var tree merkle.TreeState
			if err := tree.UnmarshalBinary(blob); err != nil {
				return err
			}
			vaultAddr, _, err := account.Vault()
			if err != nil {
				return err
			}
			vaultBal, err := st.Balance(vaultAddr)
			if err != nil {
				return err
			}

			fmt.Printf("root:           %x\n", tree.Root)
			fmt.Printf("next index:     %d / %d\n", tree.NextIndex, tree.Capacity())
			fmt.Printf("max deposit:    %d\n", tree.MaxDepositAmount)
			fmt.Printf("vault balance:  %d\n", vaultBal)
			return nil
		},
	}
}

func setDepositLimitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-deposit-limit <lamports>",
		Short: "Update the per-tree deposit cap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("limit: %w", err)
			}
			auth, err := requireAuthority()
			if err != nil {
				return err
			}
			p, _, done, err := openPool()
			if err != nil {
				return err
			}
			defer done()
			return p.UpdateDepositLimit(auth, limit)
		},
	}
}

func setConfigCmd() *cobra.Command {
	var depositRate, withdrawalRate, errorMargin int32
	cmd := &cobra.Command{
		Use:   "set-config",
		Short: "Update fee rates (basis points); omitted flags stay unchanged",
		RunE: func(cmd *cobra.Command, args []string) error {
			auth, err := requireAuthority()
			if err != nil {
				return err
			}
			pick := func(name string, v int32) (*uint16, error) {
				if !cmd.Flags().Changed(name) {
					return nil, nil
				}
				if v < 0 || v > 65535 {
					return nil, fmt.Errorf("%s out of range", name)
				}
				u := uint16(v)
				return &u, nil
			}
			dep, err := pick("deposit-rate", depositRate)
			if err != nil {
				return err
			}
			wdr, err := pick("withdrawal-rate", withdrawalRate)
			if err != nil {
				return err
			}
			margin, err := pick("fee-error-margin", errorMargin)
			if err != nil {
				return err
			}
			p, _, done, err := openPool()
			if err != nil {
				return err
			}
			defer done()
			return p.UpdateGlobalConfig(auth, dep, wdr, margin)
		},
	}
	cmd.Flags().Int32Var(&depositRate, "deposit-rate", 0, "deposit fee rate in basis points")
	cmd.Flags().Int32Var(&withdrawalRate, "withdrawal-rate", 0, "withdrawal fee rate in basis points")
	cmd.Flags().Int32Var(&errorMargin, "fee-error-margin", 0, "fee tolerance in basis points")
	return cmd
}

func fundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fund <hex32> <lamports>",
		Short: "Credit a local account (development only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := account.AddressFromHex(args[0])
			if err != nil {
				return err
			}
			amount, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("amount: %w", err)
			}
			_, st, done, err := openPool()
			if err != nil {
				return err
			}
			defer done()
			current, err := st.Balance(addr)
			if err != nil {
				return err
			}
			u := store.NewUpdate()
			u.SetBalance(addr, current+amount)
			return st.Commit(u)
		},
	}
}
