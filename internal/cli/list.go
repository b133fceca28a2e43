package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var listType string

var listCmd = &cobra.Command{
	Use:   "list <domain>",
	Short: "List DNS records",
	Long:  "List the DNS records of a domain or subdomain, following pagination.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runList(args[0], listType)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listType, "type", "t", "", "Filter by record type (A, CNAME, MX, ...)")
}

func runList(domain, recordType string) {
	_, client := setup()

	records, err := client.List(context.Background(), domain, recordType)
	if err != nil {
		fatal(err)
	}

	if len(records) == 0 {
		fmt.Println("No records found.")
		return
	}

	printRecords(records)
}
