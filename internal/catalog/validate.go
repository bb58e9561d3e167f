package catalog

import (
	"fmt"
	"strings"
)

// ValidateRaw checks semantic constraints of a RawCatalog.
func ValidateRaw(cfg RawCatalog) error {
	var errs []string

	if len(cfg.Characters) == 0 {
		errs = append(errs, "characters must not be empty")
	}

	seen := make(map[string]int, len(cfg.Characters))
	for i, c := range cfg.Characters {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			errs = append(errs, fmt.Sprintf("characters[%d].name is required", i))
		} else if j, dup := seen[strings.ToLower(name)]; dup {
			errs = append(errs, fmt.Sprintf("characters[%d].name %q duplicates characters[%d]", i, name, j))
		} else {
			seen[strings.ToLower(name)] = i
		}
		// powerScore
		if c.PowerScore == nil {
			errs = append(errs, fmt.Sprintf("characters[%d].powerScore is required", i))
		} else if *c.PowerScore < 0 {
			errs = append(errs, fmt.Sprintf("characters[%d].powerScore must be >= 0", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
