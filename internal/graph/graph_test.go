package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/courseplan/internal/catalog"
)

// buildCatalog inserts the given courses and returns the catalog. Keys map
// to their prerequisite lists; titles are derived from keys.
func buildCatalog(t *testing.T, prereqs map[string][]string) *catalog.Catalog {
	t.Helper()
	cat := catalog.New()
	for key, deps := range prereqs {
		require.NoError(t, cat.Insert(catalog.NewCourse(key, "Title for "+key, deps...)))
	}
	return cat
}

func TestRebuild(t *testing.T) {
	t.Run("derives dependents from prerequisites", func(t *testing.T) {
		cat := buildCatalog(t, map[string][]string{
			"CS101":   nil,
			"CS201":   {"CS101"},
			"CS301":   {"CS201", "CS101"},
			"MATH101": nil,
		})
		engine := New(cat)
		engine.Rebuild(t.Context())

		cs101, _ := cat.Find("CS101")
		assert.Equal(t, []string{"CS201", "CS301"}, cs101.Dependents.Sorted())

		cs201, _ := cat.Find("CS201")
		assert.Equal(t, []string{"CS301"}, cs201.Dependents.Sorted())

		cs301, _ := cat.Find("CS301")
		assert.Empty(t, cs301.Dependents.Sorted())

		// No declared relation means no derived edge.
		math101, _ := cat.Find("MATH101")
		assert.Empty(t, math101.Dependents.Sorted())
	})

	t.Run("is idempotent", func(t *testing.T) {
		cat := buildCatalog(t, map[string][]string{
			"CS101": nil,
			"CS201": {"CS101"},
		})
		engine := New(cat)

		engine.Rebuild(t.Context())
		first := make(map[string][]string)
		for course := range cat.All() {
			first[course.Key] = course.Dependents.Sorted()
		}

		engine.Rebuild(t.Context())
		for course := range cat.All() {
			assert.Equal(t, first[course.Key], course.Dependents.Sorted(), "course %s", course.Key)
		}
	})

	t.Run("skips dangling prerequisites", func(t *testing.T) {
		cat := buildCatalog(t, map[string][]string{
			"CS201": {"CS999"},
		})
		engine := New(cat)
		engine.Rebuild(t.Context())

		cs201, _ := cat.Find("CS201")
		assert.Empty(t, cs201.Dependents.Sorted())
	})

	t.Run("clears stale dependents", func(t *testing.T) {
		cat := buildCatalog(t, map[string][]string{
			"CS101": nil,
			"CS201": {"CS101"},
		})
		engine := New(cat)
		engine.Rebuild(t.Context())

		// Simulate stale derived state and check a rebuild wipes it.
		cs101, _ := cat.Find("CS101")
		cs101.Dependents.Add("ZZ999")

		engine.Rebuild(t.Context())
		cs101, _ = cat.Find("CS101")
		assert.Equal(t, []string{"CS201"}, cs101.Dependents.Sorted())
	})
}

func TestHasCycle(t *testing.T) {
	t.Run("missing start key", func(t *testing.T) {
		engine := New(buildCatalog(t, map[string][]string{"CS101": nil}))
		engine.Rebuild(t.Context())

		_, err := engine.HasCycle(t.Context(), "CS999")
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("acyclic chain", func(t *testing.T) {
		engine := New(buildCatalog(t, map[string][]string{
			"CS101": nil,
			"CS201": {"CS101"},
			"CS301": {"CS201"},
		}))
		engine.Rebuild(t.Context())

		for _, key := range []string{"CS101", "CS201", "CS301"} {
			cyclic, err := engine.HasCycle(t.Context(), key)
			require.NoError(t, err)
			assert.False(t, cyclic, "start %s", key)
		}
	})

	t.Run("direct two-course cycle", func(t *testing.T) {
		engine := New(buildCatalog(t, map[string][]string{
			"CS101": {"CS201"},
			"CS201": {"CS101"},
		}))
		engine.Rebuild(t.Context())

		cyclic, err := engine.HasCycle(t.Context(), "CS101")
		require.NoError(t, err)
		assert.True(t, cyclic)
	})

	t.Run("longer cycle", func(t *testing.T) {
		engine := New(buildCatalog(t, map[string][]string{
			"CS101": {"CS401"},
			"CS201": {"CS101"},
			"CS301": {"CS201"},
			"CS401": {"CS301"},
		}))
		engine.Rebuild(t.Context())

		cyclic, err := engine.HasCycle(t.Context(), "CS301")
		require.NoError(t, err)
		assert.True(t, cyclic)
	})

	t.Run("cycle not reachable from start", func(t *testing.T) {
		// CS101 <- CS201 is clean; the XX cycle is a separate component.
		engine := New(buildCatalog(t, map[string][]string{
			"CS101": nil,
			"CS201": {"CS101"},
			"XX100": {"XX200"},
			"XX200": {"XX100"},
		}))
		engine.Rebuild(t.Context())

		cyclic, err := engine.HasCycle(t.Context(), "CS201")
		require.NoError(t, err)
		assert.False(t, cyclic)

		cyclic, err = engine.HasCycle(t.Context(), "XX100")
		require.NoError(t, err)
		assert.True(t, cyclic)
	})

	t.Run("diamond is not a cycle", func(t *testing.T) {
		// CS401 requires CS301 and CS302, both requiring CS101. The shared
		// prerequisite is a fully-explored subgraph on the second visit,
		// not a back-edge.
		engine := New(buildCatalog(t, map[string][]string{
			"CS101": nil,
			"CS301": {"CS101"},
			"CS302": {"CS101"},
			"CS401": {"CS301", "CS302"},
		}))
		engine.Rebuild(t.Context())

		cyclic, err := engine.HasCycle(t.Context(), "CS401")
		require.NoError(t, err)
		assert.False(t, cyclic)
	})

	t.Run("self-reference is a cycle", func(t *testing.T) {
		engine := New(buildCatalog(t, map[string][]string{
			"CS101": {"CS101"},
		}))
		engine.Rebuild(t.Context())

		cyclic, err := engine.HasCycle(t.Context(), "CS101")
		require.NoError(t, err)
		assert.True(t, cyclic)
	})

	t.Run("dangling prerequisites are leaves", func(t *testing.T) {
		engine := New(buildCatalog(t, map[string][]string{
			"CS201": {"CS999", "CS101"},
			"CS101": nil,
		}))
		engine.Rebuild(t.Context())

		cyclic, err := engine.HasCycle(t.Context(), "CS201")
		require.NoError(t, err)
		assert.False(t, cyclic)
	})
}

func TestPrerequisiteOrder(t *testing.T) {
	planKeys := func(plan []*catalog.Course) []string {
		keys := make([]string, len(plan))
		for i, c := range plan {
			keys[i] = c.Key
		}
		return keys
	}

	t.Run("missing start key", func(t *testing.T) {
		engine := New(buildCatalog(t, map[string][]string{"CS101": nil}))
		engine.Rebuild(t.Context())

		_, err := engine.PrerequisiteOrder(t.Context(), "CS999")
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("no prerequisites yields empty plan", func(t *testing.T) {
		engine := New(buildCatalog(t, map[string][]string{"CS101": nil}))
		engine.Rebuild(t.Context())

		plan, err := engine.PrerequisiteOrder(t.Context(), "CS101")
		require.NoError(t, err)
		assert.Empty(t, plan)
	})

	t.Run("chain yields prerequisites first", func(t *testing.T) {
		engine := New(buildCatalog(t, map[string][]string{
			"CS101": nil,
			"CS201": {"CS101"},
			"CS301": {"CS201"},
		}))
		engine.Rebuild(t.Context())

		plan, err := engine.PrerequisiteOrder(t.Context(), "CS301")
		require.NoError(t, err)
		assert.Equal(t, []string{"CS101", "CS201"}, planKeys(plan))
	})

	t.Run("start key is excluded from its own plan", func(t *testing.T) {
		engine := New(buildCatalog(t, map[string][]string{
			"CS101": nil,
			"CS201": {"CS101"},
		}))
		engine.Rebuild(t.Context())

		plan, err := engine.PrerequisiteOrder(t.Context(), "CS201")
		require.NoError(t, err)
		assert.Equal(t, []string{"CS101"}, planKeys(plan))
	})

	t.Run("diamond visits shared prerequisite once", func(t *testing.T) {
		engine := New(buildCatalog(t, map[string][]string{
			"CS101": nil,
			"CS301": {"CS101"},
			"CS302": {"CS101"},
			"CS401": {"CS301", "CS302"},
		}))
		engine.Rebuild(t.Context())

		plan, err := engine.PrerequisiteOrder(t.Context(), "CS401")
		require.NoError(t, err)

		keys := planKeys(plan)
		assert.Len(t, keys, 3)
		assert.Equal(t, "CS101", keys[0], "shared root must come first")
		assert.ElementsMatch(t, []string{"CS101", "CS301", "CS302"}, keys)
	})

	t.Run("every course appears after its transitive prerequisites", func(t *testing.T) {
		engine := New(buildCatalog(t, map[string][]string{
			"CS100":   nil,
			"MATH100": nil,
			"CS200":   {"CS100", "MATH100"},
			"CS250":   {"CS100"},
			"CS300":   {"CS200", "CS250"},
			"CS400":   {"CS300", "MATH100"},
		}))
		engine.Rebuild(t.Context())

		plan, err := engine.PrerequisiteOrder(t.Context(), "CS400")
		require.NoError(t, err)

		position := make(map[string]int)
		for i, course := range plan {
			position[course.Key] = i
		}
		for _, course := range plan {
			for _, prereqKey := range course.Prerequisites {
				prereqPos, ok := position[prereqKey]
				require.True(t, ok, "prerequisite %s of %s missing from plan", prereqKey, course.Key)
				assert.Less(t, prereqPos, position[course.Key],
					"%s must come before %s", prereqKey, course.Key)
			}
		}
	})

	t.Run("cycle fails instead of returning a partial plan", func(t *testing.T) {
		engine := New(buildCatalog(t, map[string][]string{
			"CS101": {"CS201"},
			"CS201": {"CS101"},
		}))
		engine.Rebuild(t.Context())

		plan, err := engine.PrerequisiteOrder(t.Context(), "CS101")
		assert.ErrorIs(t, err, ErrCycle)
		assert.Nil(t, plan)
	})

	t.Run("dangling prerequisites are skipped, not errors", func(t *testing.T) {
		engine := New(buildCatalog(t, map[string][]string{
			"CS101": nil,
			"CS201": {"CS999", "CS101"},
		}))
		engine.Rebuild(t.Context())

		plan, err := engine.PrerequisiteOrder(t.Context(), "CS201")
		require.NoError(t, err)
		assert.Equal(t, []string{"CS101"}, planKeys(plan))
	})

	t.Run("duplicate prerequisite declarations appear once", func(t *testing.T) {
		engine := New(buildCatalog(t, map[string][]string{
			"CS101": nil,
			"CS201": {"CS101", "CS101"},
		}))
		engine.Rebuild(t.Context())

		plan, err := engine.PrerequisiteOrder(t.Context(), "CS201")
		require.NoError(t, err)
		assert.Equal(t, []string{"CS101"}, planKeys(plan))
	})
}
