// Package catalog retrieves the public school catalog from a SubjectiveKit
// server. The catalog is a single schools.json document listing every school
// users can pull a timetable from.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/subjectivelabs/sj/internal/subjective"
)

// DefaultServer is the SubjectiveKit CDN used when no --server is given.
const DefaultServer = "https://cdn.subjective.candra.dev/"

// Fetch downloads and parses the school catalog from server.
func Fetch(ctx context.Context, server string) ([]subjective.School, error) {
	url := strings.TrimSuffix(server, "/") + "/schools.json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("couldn't reach SubjectiveKit at %q (check your connection and server): %w", server, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("SubjectiveKit at %q answered %s", server, resp.Status)
	}

	var schools []subjective.School
	if err := json.NewDecoder(resp.Body).Decode(&schools); err != nil {
		return nil, fmt.Errorf("couldn't parse school catalog: %w", err)
	}
	return schools, nil
}
