package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/haukened/rr-dnsctl/internal/dns/wire"
)

func newCmdZones() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "zones",
		Short:         "Manage managed zones",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(cmd *cobra.Command, args []string) error { return cmd.Help() },
	}
	cmd.AddCommand(newCmdZonesList(), newCmdZonesGet(), newCmdZonesCreate(), newCmdZonesDelete())
	return cmd
}

func newCmdZonesList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List managed zones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient()
			if err != nil {
				return err
			}
			zones, err := client.ListZones(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDNS NAME\tID")
			for _, z := range zones {
				fmt.Fprintf(w, "%s\t%s\t%s\n", z.Name, z.DNSName, z.ID)
			}
			return w.Flush()
		},
	}
}

func newCmdZonesGet() *cobra.Command {
	return &cobra.Command{
		Use:   "get <zone>",
		Short: "Show one managed zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient()
			if err != nil {
				return err
			}
			z, err := client.GetZone(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Name:        %s\n", z.Name)
			fmt.Printf("DNS name:    %s\n", z.DNSName)
			if z.Description != "" {
				fmt.Printf("Description: %s\n", z.Description)
			}
			if z.ID != "" {
				fmt.Printf("ID:          %s\n", z.ID)
			}
			for _, ns := range z.NameServers {
				fmt.Printf("Name server: %s\n", ns)
			}
			return nil
		},
	}
}

func newCmdZonesCreate() *cobra.Command {
	var dnsName string
	var description string

	cmd := &cobra.Command{
		Use:   "create <zone>",
		Short: "Create a managed zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient()
			if err != nil {
				return err
			}
			created, err := client.CreateZone(cmd.Context(), wire.Zone{
				Name:        args[0],
				DNSName:     dnsName,
				Description: description,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created zone %s (%s)\n", created.Name, created.DNSName)
			return nil
		},
	}
	cmd.Flags().StringVar(&dnsName, "dns-name", "", "Zone apex as a FQDN, e.g. example.com. (required)")
	cmd.Flags().StringVar(&description, "description", "", "Free-form zone description")
	_ = cmd.MarkFlagRequired("dns-name")
	return cmd
}

func newCmdZonesDelete() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <zone>",
		Short: "Delete a managed zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient()
			if err != nil {
				return err
			}
			if err := client.DeleteZone(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted zone %s\n", args[0])
			return nil
		},
	}
}
