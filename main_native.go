//go:build !wasm

package main

import "fmt"

// The contract only does real work as a wasm guest; the native binary exists
// so the module builds and tests on the host.
func main() {
	fmt.Println("edition_sale is a wasm contract, build it with GOARCH=wasm")
}
