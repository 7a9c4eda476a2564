package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/haukened/rr-dnsctl/internal/dns/common/log"
	"github.com/haukened/rr-dnsctl/internal/dns/common/utils"
	"github.com/haukened/rr-dnsctl/internal/dns/domain"
	"github.com/haukened/rr-dnsctl/internal/dns/repos/journal"
	"github.com/haukened/rr-dnsctl/internal/dns/repos/rrcache"
	"github.com/haukened/rr-dnsctl/internal/dns/repos/zonefile"
	"github.com/haukened/rr-dnsctl/internal/dns/services/importer"
)

func newCmdImport() *cobra.Command {
	var zoneName string

	cmd := &cobra.Command{
		Use:   "import <file-or-directory>",
		Short: "Import zone-file records into managed zones",
		Long: "Parses one zone file, or every zone file in a directory, and submits\n" +
			"the records as changes against the matching managed zones. Records\n" +
			"already applied (journaled) or already live with identical data are\n" +
			"skipped.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			if info.IsDir() && zoneName != "" {
				return fmt.Errorf("--zone applies to single-file imports only")
			}

			defaultTTL := time.Duration(cfg.DefaultTTL) * time.Second
			zones := make(map[string][]domain.ResourceRecord)
			if info.IsDir() {
				zones, err = zonefile.LoadDirectory(path, defaultTTL)
			} else {
				var root string
				var records []domain.ResourceRecord
				root, records, err = zonefile.LoadFile(path, defaultTTL)
				if err == nil {
					zones[root] = records
				}
			}
			if err != nil {
				return err
			}

			svc, closeJournal, err := buildImporter()
			if err != nil {
				return err
			}
			defer closeJournal()

			// deterministic zone order
			roots := make([]string, 0, len(zones))
			for root := range zones {
				roots = append(roots, root)
			}
			sort.Strings(roots)

			for _, root := range roots {
				zone := zoneName
				if zone == "" {
					zone = managedZoneName(root)
				}
				report, err := svc.Import(cmd.Context(), zone, zones[root])
				if err != nil {
					return fmt.Errorf("import %s: %w", root, err)
				}
				printReport(root, report)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&zoneName, "zone", "", "Managed zone to import into (default: derived from the file's zone root)")
	return cmd
}

// buildImporter wires the importer service and its collaborators. The
// returned func closes the journal database.
func buildImporter() (*importer.Service, func(), error) {
	client, err := buildClient()
	if err != nil {
		return nil, nil, err
	}
	jnl, err := journal.Open(cfg.JournalPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open journal: %w", err)
	}
	cache, err := rrcache.New(int(cfg.CacheSize))
	if err != nil {
		jnl.Close()
		return nil, nil, fmt.Errorf("create snapshot cache: %w", err)
	}
	svc, err := importer.New(importer.Options{
		ControlPlane: client,
		Journal:      jnl,
		Cache:        cache,
		WaitForDone:  cfg.WaitForDone,
		Logger:       log.GetLogger(),
	})
	if err != nil {
		jnl.Close()
		return nil, nil, err
	}
	closeJournal := func() {
		if err := jnl.Close(); err != nil {
			log.Warn(map[string]any{"error": err}, "error closing journal")
		}
	}
	return svc, closeJournal, nil
}

// managedZoneName derives a zone resource name from a zone root FQDN:
// the registrable apex with dots replaced by dashes, e.g. "example.com."
// and "www.example.com." both become "example-com".
func managedZoneName(root string) string {
	apex := utils.ApexZone(root)
	return strings.ReplaceAll(strings.TrimSuffix(apex, "."), ".", "-")
}

func printReport(root string, r *importer.Report) {
	status := "pending"
	if r.Done {
		status = "done"
	}
	if r.ChangeID == "" {
		fmt.Printf("%s: nothing to do (%d journaled, %d unchanged)\n",
			root, r.SkippedJournaled, r.SkippedExisting)
		return
	}
	fmt.Printf("%s: change %s %s (%d added, %d replaced, %d journaled, %d unchanged)\n",
		root, r.ChangeID, status, r.Added, r.Replaced, r.SkippedJournaled, r.SkippedExisting)
}
