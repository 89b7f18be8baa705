package tracecmp

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glyphtrace/paint"
)

func TestTraceFixtures(t *testing.T) {
	fixtures, err := LoadDir("testdata")
	require.NoError(t, err, "load fixtures")
	require.NotEmpty(t, fixtures, "no fixtures found in testdata")

	for i, fx := range fixtures {
		t.Run(fixtureName(i, fx), func(t *testing.T) {
			if err := fx.Check(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func fixtureName(i int, fx Fixture) string {
	base := strings.TrimSuffix(filepath.Base(fx.Path()), filepath.Ext(fx.Path()))
	return fmt.Sprintf("%02d_%s", i, base)
}

func TestUnbalancedFixture(t *testing.T) {
	fx := Fixture{
		Name:  "unbalanced",
		Kind:  KindPaint,
		Calls: []Call{{Op: "push_group"}, {Op: "pop_group"}, {Op: "pop_clip"}},
	}
	got, err := fx.Trace()
	require.ErrorIs(t, err, paint.ErrUnbalanced)
	assert.Equal(t, "push group\npop group mode 3\n", got)

	open := Fixture{Name: "open", Kind: KindPaint, Calls: []Call{{Op: "push_group"}}}
	_, err = open.Trace()
	assert.ErrorIs(t, err, paint.ErrUnbalanced)
}

func TestWrongReturn(t *testing.T) {
	yes := true
	fx := Fixture{
		Name:  "color glyph",
		Kind:  KindPaint,
		Calls: []Call{{Op: "color_glyph", Glyph: 1, Returns: &yes}},
	}
	_, err := fx.Trace()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned false, want true")
}

func TestMismatch(t *testing.T) {
	fx := Fixture{
		Name:  "line",
		Kind:  KindDraw,
		Calls: []Call{{Op: "move_to", Args: []float32{1, 2}}},
		Want:  []string{"M1,3"},
	}
	err := fx.Check()
	var me *MismatchError
	require.True(t, errors.As(err, &me), "err = %v", err)
	assert.Equal(t, "M1,2", me.Got)
	assert.Equal(t, "M1,3", me.Want)
}

func TestBadCalls(t *testing.T) {
	tests := []struct {
		kind string
		call Call
	}{
		{KindDraw, Call{Op: "move_to", Args: []float32{1}}},
		{KindDraw, Call{Op: "arc_to"}},
		{KindPaint, Call{Op: "color", Color: "red"}},
		{KindPaint, Call{Op: "pop_group", Mode: "Hardest"}},
		{KindPaint, Call{Op: "linear_gradient", Args: make([]float32, 6)}},
		{KindPaint, Call{Op: "sweep_gradient", Args: make([]float32, 4), Line: &ColorLine{Extend: "mirror"}}},
		{KindPaint, Call{Op: "image", Format: "png"}},
		{KindPaint, Call{Op: "paint_everything"}},
	}
	for _, tt := range tests {
		fx := Fixture{Name: "bad", Kind: tt.kind, Calls: []Call{tt.call}}
		if _, err := fx.Trace(); err == nil {
			t.Errorf("Trace(%+v) error = nil, want an error", tt.call)
		}
	}
}

func TestValidate(t *testing.T) {
	for _, fx := range []Fixture{
		{Kind: KindDraw, Calls: []Call{{Op: "close_path"}}},
		{Name: "x", Kind: "render", Calls: []Call{{Op: "close_path"}}},
		{Name: "x", Kind: KindDraw},
	} {
		if err := fx.validate(); err == nil {
			t.Errorf("validate(%+v) = nil, want an error", fx)
		}
	}
}
