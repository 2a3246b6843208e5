package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maltehedderich/agents-course-gaia-challenge/internal/domain/entity"
)

type staticTool struct {
	name entity.ToolName
	desc string
}

func (t staticTool) Name() entity.ToolName { return t.name }
func (t staticTool) Description() string   { return t.desc }

func (t staticTool) Parameters() map[string]interface{} {
	return map[string]interface{}{"type": "object"}
}

func (t staticTool) Execute(context.Context, string) (string, error) {
	return "", nil
}

func TestRegistryGetAndAll(t *testing.T) {
	registry := NewToolRegistry()
	registry.Register(staticTool{name: entity.ToolGoogleSearch, desc: "search"})
	registry.Register(staticTool{name: entity.ToolDecodeText, desc: "decode"})

	tool, ok := registry.Get(entity.ToolGoogleSearch)
	require.True(t, ok)
	assert.Equal(t, entity.ToolGoogleSearch, tool.Name())

	_, ok = registry.Get(entity.ToolName("missing"))
	assert.False(t, ok)

	all := registry.All()
	require.Len(t, all, 2)
	assert.Equal(t, entity.ToolGoogleSearch, all[0].Name())
	assert.Equal(t, entity.ToolDecodeText, all[1].Name())
}

func TestRegistryDefinitionsKeepRegistrationOrder(t *testing.T) {
	registry := NewToolRegistry()
	registry.Register(staticTool{name: entity.ToolWikipediaSearch, desc: "wiki"})
	registry.Register(staticTool{name: entity.ToolYoutubeSearch, desc: "youtube"})
	registry.Register(staticTool{name: entity.ToolGoogleSearch, desc: "search"})

	defs := registry.Definitions()
	require.Len(t, defs, 3)
	assert.Equal(t, "wikipedia_search", defs[0].Name)
	assert.Equal(t, "youtube_search", defs[1].Name)
	assert.Equal(t, "google_search", defs[2].Name)
	assert.Equal(t, "wiki", defs[0].Description)
	assert.Equal(t, "object", defs[0].Parameters["type"])
}

func TestRegistryReRegisterReplacesWithoutDuplicating(t *testing.T) {
	registry := NewToolRegistry()
	registry.Register(staticTool{name: entity.ToolGoogleSearch, desc: "first"})
	registry.Register(staticTool{name: entity.ToolGoogleSearch, desc: "second"})

	require.Len(t, registry.All(), 1)
	tool, ok := registry.Get(entity.ToolGoogleSearch)
	require.True(t, ok)
	assert.Equal(t, "second", tool.Description())
}
