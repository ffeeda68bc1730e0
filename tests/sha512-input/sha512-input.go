// Writes an input file for merkle-fixtures: line i is "i:<digest>", where
// the first digest is the SHA-512 hash of stdin and each following one is
// the hash of the previous digest.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"sigsum.org/merkle-fixtures/pkg/crypto"
)

func main() {
	log.SetFlags(0)
	n := 1
	if len(os.Args) > 1 {
		var err error
		n, err = strconv.Atoi(os.Args[1])
		if err != nil {
			log.Fatalf("invalid number: %v", err)
		}
		if n < 1 {
			log.Fatalf("count must be positive, but got %d", n)
		}
	}
	h, err := crypto.HashFile(os.Stdin)
	if err != nil {
		log.Fatalf("failed reading input: %v", err)
	}
	fmt.Printf("# %d chained sha512 digests\n", n)
	for i := 0; i < n; i++ {
		fmt.Printf("%d:%x\n", i, h)
		h = crypto.HashBytes(h[:])
	}
}
