package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/haukened/rr-dnsctl/internal/dns/wire"
)

func newCmdRecords() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "records",
		Short:         "Inspect record sets in a managed zone",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(cmd *cobra.Command, args []string) error { return cmd.Help() },
	}
	cmd.AddCommand(newCmdRecordsList(), newCmdRecordsExport())
	return cmd
}

func newCmdRecordsList() *cobra.Command {
	return &cobra.Command{
		Use:   "list <zone>",
		Short: "List record sets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient()
			if err != nil {
				return err
			}
			rrsets, err := client.ListRecordSets(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTYPE\tTTL\tDATA")
			for _, rs := range rrsets {
				for _, data := range rs.RRDatas {
					fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", rs.Name, rs.Type, rs.TTL, data)
				}
			}
			return w.Flush()
		},
	}
}

// newCmdRecordsExport renders a zone's record sets as BIND-style zone
// lines, one line per data value.
func newCmdRecordsExport() *cobra.Command {
	return &cobra.Command{
		Use:   "export <zone>",
		Short: "Export record sets as zone lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient()
			if err != nil {
				return err
			}
			rrsets, err := client.ListRecordSets(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, rs := range rrsets {
				fmt.Println(wire.ToRecord(rs).String())
			}
			return nil
		},
	}
}
