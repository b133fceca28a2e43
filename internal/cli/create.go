package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/REOL/cloudflare/pkg/api"
)

var (
	createType     string
	createTTL      int
	createPriority int
)

var createCmd = &cobra.Command{
	Use:   "create <name> <content>",
	Short: "Create a DNS record",
	Long: "Create a DNS record and print the resulting provider state.\n" +
		"Content must be an IP address literal; the legacy API enforces this\n" +
		"for every record type.",
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runCreate(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&createType, "type", "t", "A", "Record type (A, CNAME, MX, ...)")
	createCmd.Flags().IntVar(&createTTL, "ttl", api.TTLAutomatic, "TTL in seconds (1 means automatic)")
	createCmd.Flags().IntVar(&createPriority, "priority", 0, "Record priority (sent only when nonzero)")
}

func runCreate(name, content string) {
	_, client := setup()

	records, err := client.Create(context.Background(), name, content, api.CreateOptions{
		Type:     createType,
		TTL:      createTTL,
		Priority: createPriority,
	})
	if err != nil {
		fatal(err)
	}

	fmt.Printf("Created %s. Current records:\n", name)
	printRecords(records)
}
