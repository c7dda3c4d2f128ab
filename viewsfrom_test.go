package viewsfrom

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/viewsfrom/animate"
	"github.com/npillmayer/viewsfrom/animate/tween"
	"github.com/npillmayer/viewsfrom/view"
	"github.com/npillmayer/viewsfrom/viewdbg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagsOf(views []view.View) []string {
	tags := make([]string, len(views))
	for i, v := range views {
		tags[i] = fmt.Sprint(v.Tag())
	}
	return tags
}

func TestSampleQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "viewsfrom.query")
	defer teardown()
	//
	root := Sample()
	t.Logf("sample:\n%s", viewdbg.Print(root))
	views, err := From(root).Find()
	require.NoError(t, err)
	assert.Equal(t, strings.Split("A B C D E F G H", " "), tagsOf(views))
	views, err = From(root).IncludingRoots().Find()
	require.NoError(t, err)
	assert.Equal(t, strings.Split("root A B C D E F G H", " "), tagsOf(views))
	var g view.View
	for _, v := range views {
		if v.Tag() == "G" {
			g = v
		}
	}
	views, err = From(root).ExcludeViews(g).ExcludingChildrenOfFilteredGroups().Find()
	require.NoError(t, err)
	assert.Equal(t, strings.Split("A B C D E F", " "), tagsOf(views))
}

func TestStaggeredFadeIn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "viewsfrom.animate")
	defer teardown()
	//
	root := Sample()
	player := tween.NewPlayer()
	provider, err := player.Provider(tween.Spec{
		Property:    tween.Alpha,
		From:        0,
		To:          1,
		Duration:    200 * time.Millisecond,
		StartOffset: 100 * time.Millisecond,
	})
	require.NoError(t, err)
	s, err := From(root).Not().WithVisibility(view.Visible).AnimateWith(provider)
	require.NoError(t, err)
	done := false
	err = s.WithDelayBetweenEachChild(250 * time.Millisecond).
		WithVisibilityBeforeAnimation(view.Visible).
		WithEndAction(func() { done = true }).
		Start()
	require.NoError(t, err)
	// D and G, the latter starting at 350ms
	var offsets []time.Duration
	for _, v := range []view.View{root.ChildAt(1).(view.Group).ChildAt(1), root.ChildAt(2).(view.Group).ChildAt(1)} {
		assert.Equal(t, view.Visible, v.Visibility())
		offsets = append(offsets, v.(interface{ Animation() view.Animation }).Animation().StartOffset())
	}
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 350 * time.Millisecond}, offsets)
	player.Update(500 * time.Millisecond)
	assert.False(t, done)
	player.Update(50 * time.Millisecond)
	assert.True(t, done)
	assert.Equal(t, animate.Completed, s.State())
}

func TestAnimateExplicitViews(t *testing.T) {
	_, err := Animate(nil, nil)
	assert.ErrorIs(t, err, view.ErrInvalidArgument)
	s, err := Animate(nil, func() view.Animation { return nil })
	require.NoError(t, err)
	require.NoError(t, s.Start())
	assert.Equal(t, animate.Completed, s.State())
}
