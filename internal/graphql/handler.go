package graphql

import (
	"net/http"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/pmorken/settings-hub/internal/settings"
)

// NewHandler parses the schema against the resolver set and returns the
// HTTP handler serving it. Panics on a schema/resolver mismatch, which is a
// programming error caught at startup.
func NewHandler(svc *settings.Service) http.Handler {
	schema := graphql.MustParseSchema(Schema, NewResolver(svc))
	return &relay.Handler{Schema: schema}
}
