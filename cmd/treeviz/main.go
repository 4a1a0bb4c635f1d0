// Command treeviz renders task hierarchies described by treefiles and
// demonstrates the stop/terminate/consume cascades on a canned tree.
package main

func main() {
	Execute()
}
