package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteType string

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete DNS records",
	Long: "Delete every record matching the given name (and type, when set).\n" +
		"Deleting the bare registrable domain's A record is refused.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runDelete(args[0], deleteType)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().StringVarP(&deleteType, "type", "t", "", "Only delete records of this type")
}

func runDelete(name, recordType string) {
	_, client := setup()

	if err := client.Delete(context.Background(), name, recordType); err != nil {
		fatal(err)
	}

	fmt.Println("Deletion requested. The provider may apply it with some delay.")
}
