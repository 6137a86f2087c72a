package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestDocRegistered(t *testing.T) {
	req := require.New(t)
	doc, err := swag.ReadDoc()
	req.NoError(err)

	parsed := map[string]interface{}{}
	req.NoError(json.Unmarshal([]byte(doc), &parsed))
	req.Contains(parsed["paths"], "/explore/{sessionId}/pass")
	req.Equal("SwipeBid API", parsed["info"].(map[string]interface{})["title"])
}
