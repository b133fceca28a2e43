package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/REOL/cloudflare/pkg/dnscheck"
)

var verifyType string

var verifyCmd = &cobra.Command{
	Use:   "verify <domain>",
	Short: "Check record propagation",
	Long:  "List provider records and query live DNS to check each one is visible.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runVerify(args[0], verifyType)
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVarP(&verifyType, "type", "t", "", "Only verify records of this type")
}

func runVerify(domain, recordType string) {
	cfg, client := setup()

	ctx := context.Background()
	records, err := client.List(ctx, domain, recordType)
	if err != nil {
		fatal(err)
	}

	if len(records) == 0 {
		fmt.Println("No records found.")
		return
	}

	resolver := dnscheck.New(dnscheck.WithServer(cfg.Resolver))

	var visible, missing, skipped int
	for _, rec := range records {
		if rec.Content == "" {
			fmt.Printf("? %s %s: no content to compare\n", rec.Type, rec.Name)
			skipped++
			continue
		}

		ok, err := resolver.Verify(ctx, rec)
		switch {
		case err != nil:
			fmt.Printf("! %s %s: %v\n", rec.Type, rec.Name, err)
			missing++
		case ok:
			fmt.Printf("+ %s %s -> %s\n", rec.Type, rec.Name, rec.Content)
			visible++
		default:
			fmt.Printf("- %s %s: not visible at %s\n", rec.Type, rec.Name, cfg.Resolver)
			missing++
		}
	}

	fmt.Printf("\n%d visible, %d missing, %d skipped\n", visible, missing, skipped)
	if missing > 0 {
		fatal(fmt.Errorf("%d record(s) not yet visible in DNS", missing))
	}
}
