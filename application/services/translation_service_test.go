package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTranslationService_Translate(t *testing.T) {
	svc := NewTranslationService(nil, zap.NewNop())
	ctx := context.Background()

	t.Run("translates known vocabulary", func(t *testing.T) {
		out, err := svc.Translate(ctx, "I had a dream about a mountain", "en", "it")
		require.NoError(t, err)
		assert.Contains(t, out, "sogno")
		assert.Contains(t, out, "montagna")
	})

	t.Run("same language returns text unchanged", func(t *testing.T) {
		out, err := svc.Translate(ctx, "a dream about water", "en", "en-us")
		require.NoError(t, err)
		assert.Equal(t, "a dream about water", out)
	})

	t.Run("unknown words pass through", func(t *testing.T) {
		out, err := svc.Translate(ctx, "zanzibar dream", "en", "es")
		require.NoError(t, err)
		assert.Contains(t, out, "zanzibar")
		assert.Contains(t, out, "sueño")
	})

	t.Run("unsupported language codes normalize to english", func(t *testing.T) {
		out, err := svc.Translate(ctx, "sogno", "xx", "it")
		require.NoError(t, err)
		assert.Contains(t, out, "sogno")
	})
}

func TestTranslationService_SupportedLanguages(t *testing.T) {
	svc := NewTranslationService(nil, zap.NewNop())
	langs := svc.SupportedLanguages()
	assert.Contains(t, langs, "en")
	assert.Contains(t, langs, "it")
	assert.Contains(t, langs, "es")
	assert.Contains(t, langs, "fr")
	assert.Contains(t, langs, "de")
}
