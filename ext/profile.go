package ext

import (
	"encoding/json"
	"fmt"
	"os"
)

// Profile is a reusable, named set of extension specs, loaded from a
// JSON file so a user doesn't have to repeat a long run of "-e" flags.
// Modeled on the teacher's timing/latency JSON config: a plain struct
// with json tags, loaded with encoding/json and wrapped errors.
type Profile struct {
	Extensions []string `json:"extensions"`
}

// LoadProfile reads and parses an extension profile from path.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read extension profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse extension profile: %w", err)
	}

	return &p, nil
}

// Apply adds every extension spec in the profile to the registry. It
// stops at the first invalid spec, matching AddSpec's error.
func (p *Profile) Apply(r *Registry) error {
	for _, spec := range p.Extensions {
		if err := r.AddSpec(spec); err != nil {
			return fmt.Errorf("extension profile: %w", err)
		}
	}
	return nil
}
