// cfdns manages DNS records for domains hosted on Cloudflare through the
// legacy GET-based client API.
package main

import "github.com/REOL/cloudflare/internal/cli"

func main() {
	cli.Execute()
}
