package pokeapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const DefaultBaseUrl = "https://pokeapi.co/api/v2/"

func ResourceUrl(baseUrl string, query Query) string {
	name := url.PathEscape(strings.ToLower(strings.TrimSpace(query.RawInput)))
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(baseUrl, "/"), query.Mode.Resource(), name)
}

// BuildRequest performs no I/O. Blank input fails with BlankInput.
func BuildRequest(ctx context.Context, baseUrl string, query Query) (*http.Request, error) {
	if !query.Mode.Valid() {
		return nil, fmt.Errorf("build request: invalid lookup mode %d", int(query.Mode))
	}
	if query.Blank() {
		return nil, blankInput(query.Mode)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ResourceUrl(baseUrl, query), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	return req, nil
}
