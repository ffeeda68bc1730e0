package fixture

import (
	"sigsum.org/merkle-fixtures/pkg/log"
)

type Summary struct {
	Digests int
	Leaves  int
	Nodes   int
}

// Generate reads the digests from store, derives all leaf and node
// records, and writes them back to store.  Nothing is written unless all
// records could be derived.
func Generate(store Store) (Summary, error) {
	digests, err := store.ReadDigests()
	if err != nil {
		return Summary{}, err
	}
	log.Debug("read %d digests", len(digests))

	leaves, err := MakeLeaves(digests)
	if err != nil {
		return Summary{}, err
	}
	nodes, err := MakeNodes(digests)
	if err != nil {
		return Summary{}, err
	}

	if err := store.WriteLeaves(leaves); err != nil {
		return Summary{}, err
	}
	log.Debug("wrote %d leaf records", len(leaves))
	if err := store.WriteNodes(nodes); err != nil {
		return Summary{}, err
	}
	log.Debug("wrote %d node records", len(nodes))

	return Summary{Digests: len(digests), Leaves: len(leaves), Nodes: len(nodes)}, nil
}
