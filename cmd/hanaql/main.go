// hanaql - SAP HANA Cloud SQL query CLI
//
// hanaql executes a single read-only SELECT statement against a SAP HANA
// Cloud database and renders the result as a fixed-width text table.
package main

import (
	"github.com/hanaql/hanaql/internal/cli"
)

func main() {
	cli.Execute()
}
