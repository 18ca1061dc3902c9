package pipeline_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuple-mapper/header"
	"tuple-mapper/model"
	"tuple-mapper/pipeline"
	"tuple-mapper/step"
)

func tasksDescription() header.Description {
	return header.Describe(
		header.Attr("name"),
		header.Attr("tasks", header.Grouped(), header.Array(header.Describe(header.Attr("title")))),
	)
}

func TestCache_Get(t *testing.T) {
	t.Parallel()

	cache := pipeline.NewCache()

	first, err := cache.Get(header.MustCoerce(tasksDescription()))
	require.NoError(t, err)

	second, err := cache.Get(header.MustCoerce(tasksDescription()))
	require.NoError(t, err)

	assert.Same(t, first, second, "equal headers share one pipeline")
	assert.Equal(t, 1, cache.Len())

	other, err := cache.Get(header.MustCoerce(tasksDescription().WithModel(model.Struct[owner]())))
	require.NoError(t, err)

	assert.NotSame(t, first, other, "models are part of the key")
	assert.Equal(t, 2, cache.Len())

	cache.Reset()
	assert.Equal(t, 0, cache.Len())

	_, err = cache.Get(nil)
	require.ErrorIs(t, err, pipeline.ErrNilHeader)
}

func TestCache_ModelIdentity(t *testing.T) {
	t.Parallel()

	t.Run("value and pointer struct models", func(t *testing.T) {
		t.Parallel()

		cache := pipeline.NewCache()
		desc := header.Describe(header.Attr("name"))

		byValue, err := cache.Get(header.MustCoerce(desc.WithModel(model.Struct[person]())))
		require.NoError(t, err)

		byPointer, err := cache.Get(header.MustCoerce(desc.WithModel(model.Struct[*person]())))
		require.NoError(t, err)

		assert.Equal(t, 2, cache.Len())

		_, err = pipeline.CallAs[person](byValue, []step.Tuple{{"name": "Jane"}})
		require.NoError(t, err)

		out, err := pipeline.CallAs[*person](byPointer, []step.Tuple{{"name": "Jane"}})
		require.NoError(t, err)
		assert.Equal(t, []*person{{Name: "Jane"}}, out)

		again, err := cache.Get(header.MustCoerce(desc.WithModel(model.Struct[*person]())))
		require.NoError(t, err)
		assert.Same(t, byPointer, again)
	})

	t.Run("constructors sharing a name", func(t *testing.T) {
		t.Parallel()

		cache := pipeline.NewCache()
		upper := model.FuncOf("User", func(map[string]any) (string, error) { return "upper", nil })
		lower := model.FuncOf("User", func(map[string]any) (string, error) { return "lower", nil })

		build := func(m model.Model) *header.Header {
			return header.MustCoerce(header.Describe(
				header.Attr("tasks", header.Grouped(), header.Array(header.Describe(header.Attr("title")).WithModel(m))),
			))
		}

		assert.Equal(t, build(upper).Fingerprint(), build(lower).Fingerprint())

		for m, expected := range map[model.Model]string{upper: "upper", lower: "lower"} {
			p, err := cache.Get(build(m))
			require.NoError(t, err)

			out, err := p.CallTuples([]step.Tuple{{"title": "Task One"}})
			require.NoError(t, err)
			assert.Equal(t, []any{expected}, out[0]["tasks"])
		}

		assert.Equal(t, 2, cache.Len())
	})
}

func TestCache_Concurrent(t *testing.T) {
	t.Parallel()

	cache := pipeline.NewCache()
	pipelines := make([]*pipeline.Pipeline, 32)

	var wg sync.WaitGroup

	for i := range pipelines {
		wg.Add(1)

		go func() {
			defer wg.Done()

			p, err := cache.Get(header.MustCoerce(tasksDescription()))
			if err == nil {
				pipelines[i] = p
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, cache.Len())

	for _, p := range pipelines {
		assert.Same(t, pipelines[0], p)
	}
}
