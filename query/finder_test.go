package query

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/viewsfrom/animate"
	"github.com/npillmayer/viewsfrom/animate/tween"
	"github.com/npillmayer/viewsfrom/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFind(t *testing.T, f *Finder) string {
	t.Helper()
	views, err := f.Find()
	require.NoError(t, err)
	return tags(views)
}

func TestFindScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "viewsfrom.query")
	defer teardown()
	//
	s := buildSample()
	for _, tc := range []struct {
		name   string
		finder *Finder
		want   string
	}{
		{"default", From(s.root), "ABCDEFGH"},
		{"including roots", From(s.root).IncludingRoots(), "rootABCDEFGH"},
		{"gone", From(s.root).WithVisibility(view.Gone), "G"},
		{"not gone", From(s.root).Not().WithVisibility(view.Gone), "ABCDEFH"},
		{"exclude G", From(s.root).ExcludeViews(s.g), "ABCDEFH"},
		{"exclude G pruned", From(s.root).ExcludeViews(s.g).ExcludingChildrenOfFilteredGroups(), "ABCDEF"},
		{"ids", From(s.root).WithID(8, 1, 42), "AH"},
		{"tags", From(s.root).WithTag("C", "E"), "CE"},
		{"tag regex", From(s.root).WithTagRegex("^[A-C]$"), "ABC"},
		{"groups", From(s.root).WithType(reflect.TypeOf(&view.Container{})), "BEG"},
		{"leaves below B", From(s.b).Not().WithType(reflect.TypeOf(&view.Container{})), "CD"},
		{"conjunction", From(s.root).WithVisibility(view.Visible).Not().WithTag("A"), "BCEFH"},
	} {
		if result := mustFind(t, tc.finder); result != tc.want {
			t.Errorf("%s: expected %s, is %s", tc.name, tc.want, result)
		}
	}
}

func TestNotIsComplement(t *testing.T) {
	s := buildSample()
	all := mustFind(t, From(s.root))
	for _, vis := range []view.Visibility{view.Visible, view.Invisible, view.Gone} {
		in := mustFind(t, From(s.root).WithVisibility(vis))
		out := mustFind(t, From(s.root).Not().WithVisibility(vis))
		if len(in)+len(out) != len(all) {
			t.Errorf("expected %q and %q to partition %q", in, out, all)
		}
		for _, r := range in {
			if strings.ContainsRune(out, r) {
				t.Errorf("expected %c to be in only one of %q | %q", r, in, out)
			}
		}
	}
}

func TestNotIsNotConsumedByFilteredWithOrExclude(t *testing.T) {
	s := buildSample()
	isA := func(v view.View) bool { return v.Tag() == "A" }
	f := From(s.root).Not().FilteredWith(isA).ExcludeViews(s.b)
	if result := mustFind(t, f); result != "A" {
		t.Errorf("expected custom predicate and exclusion to be unaffected by Not, is %s", result)
	}
	// the pending Not still applies to the next With… call
	if result := mustFind(t, f.WithTag("A")); result != "" {
		t.Errorf("expected pending Not to complement WithTag, is %s", result)
	}
}

func TestAndFromConcatenates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "viewsfrom.query")
	defer teardown()
	//
	s := buildSample()
	first := mustFind(t, From(s.b))
	second := mustFind(t, From(s.e))
	chained := From(s.b).AndFrom(s.e)
	if result := mustFind(t, chained); result != first+second {
		t.Errorf("expected %s, is %s", first+second, result)
	}
	// filters after AndFrom apply to the new roots only
	prev := From(s.root).IncludingRoots()
	next := prev.AndFrom(s.e).WithTag("F")
	if result := mustFind(t, next); result != "rootABCDEFGHF" {
		t.Errorf("expected chain result followed by F, is %s", result)
	}
	if result := mustFind(t, prev); result != "rootABCDEFGH" {
		t.Errorf("expected previous finder to be unchanged, is %s", result)
	}
	// duplicates from independent roots are kept
	if result := mustFind(t, From(s.g, s.e)); result != "HFGH" {
		t.Errorf("expected duplicates in root order, is %s", result)
	}
}

func TestOrderedByIsStableOverChain(t *testing.T) {
	s := buildSample()
	byVisibility := func(a, b view.View) int {
		return int(a.Visibility()) - int(b.Visibility())
	}
	f := From(s.root).AndFrom(s.e).OrderedBy(byVisibility)
	if result := mustFind(t, f); result != "ABCEFHFHDGG" {
		t.Errorf("expected stable order by visibility, is %s", result)
	}
}

func TestStickyErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "viewsfrom.query")
	defer teardown()
	//
	s := buildSample()
	for name, f := range map[string]*Finder{
		"no roots":        From(),
		"nil root":        From(s.root, nil),
		"empty tags":      From(s.root).WithTag(),
		"empty ids":       From(s.root).Not().WithID(),
		"bad regex":       From(s.root).WithTagRegex("("),
		"nil type":        From(s.root).WithType(nil),
		"nil predicate":   From(s.root).FilteredWith(nil),
		"nil exclusion":   From(s.root).ExcludeViews(s.g, nil),
		"nil comparator":  From(s.root).OrderedBy(nil),
		"chained error":   From(s.root).WithVisibility().AndFrom(s.e),
		"error then more": From(s.root).WithTag().WithID(1).IncludingRoots(),
	} {
		if !assert.ErrorIs(t, f.Err(), view.ErrInvalidArgument, name) {
			continue
		}
		views, err := f.Find()
		assert.ErrorIs(t, err, view.ErrInvalidArgument, name)
		assert.Nil(t, views, name)
		_, err = f.Promise()()
		assert.ErrorIs(t, err, view.ErrInvalidArgument, name)
		_, err = f.AnimateWith(func() view.Animation { return nil })
		assert.ErrorIs(t, err, view.ErrInvalidArgument, name)
	}
	f := From(s.root).WithTag()
	assert.Empty(t, f.filters, "failed call must not append a filter")
	assert.False(t, f.IncludingRoots().includeRoots, "configuration after an error must be a no-op")
}

func TestForEach(t *testing.T) {
	s := buildSample()
	var sb strings.Builder
	err := From(s.b).IncludingRoots().ForEach(func(v view.View, index, total int) {
		if total != 3 {
			t.Errorf("expected total of 3, is %d", total)
		}
		sb.WriteString(v.Tag().(string))
		sb.WriteByte(byte('0' + index))
	})
	require.NoError(t, err)
	assert.Equal(t, "B0C1D2", sb.String())
	assert.ErrorIs(t, From(s.b).ForEach(nil), view.ErrInvalidArgument)
}

func TestPromiseEqualsFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "viewsfrom.query")
	defer teardown()
	//
	s := buildSample()
	f := From(s.g, s.b).AndFrom(s.root).IncludingRoots().Not().WithTag("H")
	promise := f.Promise()
	views, err := promise()
	require.NoError(t, err)
	assert.Equal(t, mustFind(t, f), tags(views))
	again, _ := promise()
	assert.Equal(t, tags(views), tags(again), "promise must be callable repeatedly")
}

func TestAnimateWithResolvesAtStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "viewsfrom.query")
	defer teardown()
	//
	s := buildSample()
	var offsets []time.Duration
	provider := func() view.Animation { return &fixedAnimation{offsets: &offsets} }
	sched, err := From(s.b).AnimateWith(provider)
	require.NoError(t, err)
	late := view.NewLeaf(9, "late")
	view.MustAdd(s.b, late)
	ended := false
	err = sched.WithDelayBetweenEachChild(10 * time.Millisecond).
		WithEndAction(func() { ended = true }).
		Start()
	require.NoError(t, err)
	assert.Len(t, offsets, 0, "offsets are recorded on end only")
	assert.Equal(t, animate.Started, sched.State())
	anim := late.Animation().(*fixedAnimation)
	assert.Equal(t, 20*time.Millisecond, anim.offset, "view added after AnimateWith must be animated")
	anim.listener()
	assert.True(t, ended)
	assert.Equal(t, animate.Completed, sched.State())
}

func TestAnimateWithResource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "viewsfrom.query")
	defer teardown()
	//
	lib, err := tween.LoadLibrary(strings.NewReader(`
animations:
  fade_out:
    property: alpha
    from: 1
    to: 0
    duration: 100ms
`))
	require.NoError(t, err)
	s := buildSample()
	player := tween.NewPlayer()
	sched, err := From(s.root).WithVisibility(view.Visible).AnimateWithResource(lib, "fade_out", player)
	require.NoError(t, err)
	require.NoError(t, sched.WithDelayBetweenEachChild(50*time.Millisecond).Start())
	// A B C E F H, the last one starting at 250ms
	assert.Equal(t, 6, player.Running())
	player.Update(300 * time.Millisecond)
	assert.Equal(t, 1, player.Running())
	player.Update(50 * time.Millisecond)
	assert.Equal(t, animate.Completed, sched.State())
	assert.Equal(t, 0.0, s.views["H"].(*view.Leaf).Alpha())
	_, err = From(s.root).AnimateWithResource(lib, "fade_in", player)
	assert.ErrorIs(t, err, tween.ErrUnknownAnimation)
	_, err = From(s.root).AnimateWithResource(nil, "fade_out", player)
	assert.ErrorIs(t, err, view.ErrInvalidArgument)
}

type fixedAnimation struct {
	offset   time.Duration
	offsets  *[]time.Duration
	listener func()
}

func (a *fixedAnimation) StartOffset() time.Duration     { return a.offset }
func (a *fixedAnimation) SetStartOffset(d time.Duration) { a.offset = d }
func (a *fixedAnimation) SetEndListener(f func()) {
	a.listener = func() {
		*a.offsets = append(*a.offsets, a.offset)
		f()
	}
}
