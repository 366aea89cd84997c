// Command ocpt discovers an object-centric process tree from an OCEL event
// log and reports its conformance (spec §6).
package main

import "github.com/opendfg/ocpt/cmd/ocpt/cmd"

func main() {
	cmd.Execute()
}
