package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/RonaldMishiev/LocalBolt/arith"
	"github.com/RonaldMishiev/LocalBolt/calc"
	"github.com/RonaldMishiev/LocalBolt/common"
	"github.com/RonaldMishiev/LocalBolt/common/utils"
	"github.com/spf13/cobra"
)

func newPowCmd() *cobra.Command {
	var (
		policy string
		useBig bool
		hex    bool
	)
	cmd := &cobra.Command{
		Use:   "pow [flags] <base> <exponent>",
		Short: "Compute base^exponent by recursive squaring",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if useBig {
				base, err := utils.ParseBigInt(args[0])
				if err != nil {
					return err
				}
				exponent, err := utils.ParseBigInt(args[1])
				if err != nil {
					return err
				}
				if !exponent.IsInt64() {
					return fmt.Errorf("%w: exponent %s out of range", arith.ErrInvalidArgument, exponent)
				}
				v, err := arith.BigPower(base, exponent.Int64())
				if err != nil {
					return err
				}
				if hex {
					fmt.Fprintln(cmd.OutOrStdout(), utils.BigInt2Hex0x(v))
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), v.String())
				}
				return nil
			}

			p, err := arith.ParsePolicy(policy)
			if err != nil {
				return err
			}
			base, err := utils.ParseInt32(args[0])
			if err != nil {
				return err
			}
			exponent, err := utils.ParseInt32(args[1])
			if err != nil {
				return err
			}
			v, err := arith.PowerWithPolicy(base, exponent, p)
			if err != nil {
				return err
			}
			if hex {
				fmt.Fprintf(cmd.OutOrStdout(), "%#x\n", v)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&policy, "policy", "fail", "overflow policy: fail, wrap or saturate")
	cmd.Flags().BoolVar(&useBig, "big", false, "use arbitrary precision, ignores --policy")
	cmd.Flags().BoolVar(&hex, "hex", false, "print the result in hex")
	return cmd
}

func newModCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mod [flags] <a> <b>",
		Short: "Compute the truncated remainder a % b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := utils.ParseInt32(args[0])
			if err != nil {
				return err
			}
			b, err := utils.ParseInt32(args[1])
			if err != nil {
				return err
			}
			v, err := arith.Mod(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func addServiceFlags(cmd *cobra.Command, config *calc.Config) {
	cmd.Flags().StringVar(&config.PersistenceType, "store", "syncmap", "result store: syncmap, file or badgerdb")
	cmd.Flags().StringVar(&config.PersistenceOptions, "store-options", "", "result store options as JSON")
	cmd.Flags().StringVar(&config.Policy, "policy", "fail", "default overflow policy: fail, wrap or saturate")
	cmd.Flags().IntVar(&config.Concurrency, "concurrency", common.DefaultConcurrency, "max requests evaluated at once")
}

func newBatchCmd() *cobra.Command {
	var config calc.Config
	cmd := &cobra.Command{
		Use:   "batch [flags] <op:a:b[:policy]>...",
		Short: "Evaluate requests concurrently and print a table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs := make([]calc.Request, 0, len(args))
			for _, arg := range args {
				req, err := calc.ParseRequest(arg)
				if err != nil {
					return err
				}
				reqs = append(reqs, req)
			}
			c, err := calc.NewCalculator(config)
			if err != nil {
				return err
			}
			defer c.Close()
			fmt.Fprintln(cmd.OutOrStdout(), calc.RenderTable(c.Batch(cmd.Context(), reqs)))
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	addServiceFlags(cmd, &config)
	return cmd
}

func newServeCmd() *cobra.Command {
	var config calc.Config
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := calc.NewCalculator(config)
			if err != nil {
				return err
			}
			defer c.Close()
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return calc.NewServer(c, config.GetListenAddr()).Serve(ctx)
		},
	}
	addServiceFlags(cmd, &config)
	cmd.Flags().StringVar(&config.ListenAddr, "addr", common.DefaultListenAddr, "listen address")
	return cmd
}

