package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/REOL/cloudflare/pkg/dnsname"
	"github.com/REOL/cloudflare/pkg/sshutil"
	"github.com/REOL/cloudflare/pkg/zonefile"
)

var (
	exportOutput string
	exportRemote string
)

var exportCmd = &cobra.Command{
	Use:   "export <domain>",
	Short: "Export records as a zone file",
	Long: "Render the domain's records as BIND-style zone file text, written to\n" +
		"stdout, a local file, or a remote host over SFTP (using the [ssh]\n" +
		"section of the configuration).",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runExport(args[0])
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "-", "Local output path (- for stdout)")
	exportCmd.Flags().StringVar(&exportRemote, "remote", "", "Remote output path, written over SFTP")
}

func runExport(domain string) {
	cfg, client := setup()

	ctx := context.Background()
	records, err := client.List(ctx, domain, "")
	if err != nil {
		fatal(err)
	}

	zone := dnsname.ExtractDomain(domain)
	text := zonefile.Format(zone, records)

	switch {
	case exportRemote != "":
		sshClient, err := sshutil.NewClient(&sshutil.Config{
			Host:           cfg.SSH.Host,
			Port:           cfg.SSH.Port,
			User:           cfg.SSH.User,
			Password:       cfg.SSH.Password,
			KeyFile:        cfg.SSH.KeyFile,
			KnownHostsFile: knownHostsPath(),
		})
		if err != nil {
			fatal(err)
		}
		if err := sshClient.Connect(ctx); err != nil {
			fatal(err)
		}
		defer sshClient.Close()

		if err := sshClient.WriteFile(exportRemote, []byte(text), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("Exported %d record(s) to %s:%s\n", len(records), cfg.SSH.Host, exportRemote)

	case exportOutput == "-":
		fmt.Print(text)

	default:
		if err := os.WriteFile(exportOutput, []byte(text), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("Exported %d record(s) to %s\n", len(records), exportOutput)
	}
}

// knownHostsPath returns the user's known_hosts file.
func knownHostsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.ssh/known_hosts"
}
