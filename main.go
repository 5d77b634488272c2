// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/br5secrule/addonpack/cmd/addonpack"

func main() {
	cmd.Execute()
}
