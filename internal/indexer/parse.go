package indexer

import (
	"fmt"
	"strings"

	"roleScope/internal/strval"
)

// ParseContractIDs validates and normalizes contract id filters.
func ParseContractIDs(inputs []string) ([]string, error) {
	ids := make([]string, 0, len(inputs))
	for _, input := range inputs {
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if !strval.ValidateContractAddress(input) {
			return nil, fmt.Errorf("invalid contract id: %s", input)
		}
		ids = append(ids, input)
	}
	return ids, nil
}
