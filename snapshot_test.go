package inputbar

import (
	"bytes"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotView(t *testing.T, width float64) (*View, Theme) {
	t.Helper()
	cfg := DefaultConfig()
	v, _, err := cfg.View()
	require.NoError(t, err)
	_, err = v.Layout(width)
	require.NoError(t, err)
	th, err := cfg.Theme.Resolve()
	require.NoError(t, err)
	return v, th
}

func TestSnapshot_Size(t *testing.T) {
	v, th := snapshotView(t, 320)

	img, err := Snapshot(v, th, SnapshotOptions{})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 320, 56), img.Bounds())

	img, err = Snapshot(v, th, SnapshotOptions{Scale: 2})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 640, 112), img.Bounds())
}

func TestSnapshot_NotLaidOut(t *testing.T) {
	v, err := NewView(labels(2), DefaultConstants())
	require.NoError(t, err)

	_, err = Snapshot(v, Theme{}, SnapshotOptions{})
	assert.ErrorIs(t, err, ErrNotLaidOut)
}

func TestSnapshot_DrawsIconsAndSeparators(t *testing.T) {
	v, th := snapshotView(t, 320)

	img, err := Snapshot(v, th, SnapshotOptions{})
	require.NoError(t, err)

	first, ok := v.Placement(v.Buttons()[0])
	require.True(t, ok)
	icon := first.Style.Place(first.Frame.Rect, first.Button.LabelSize(), v.Constants()).Icon
	px := img.NRGBAAt(int(icon.X+icon.W/2), int(icon.Y+icon.H/2))
	assert.Equal(t, th.Accent, px)

	right := int(first.Frame.Rect.Right()+0.5) - 1
	assert.Equal(t, th.Separator, img.NRGBAAt(right, 28))
}

func TestSnapshot_SecondRowDiffers(t *testing.T) {
	v, th := snapshotView(t, 320)
	require.True(t, v.Multiline())

	top, err := Snapshot(v, th, SnapshotOptions{})
	require.NoError(t, err)

	v.ShowRow(1, false)
	bottom, err := Snapshot(v, th, SnapshotOptions{})
	require.NoError(t, err)
	assert.NotEqual(t, top.Pix, bottom.Pix)

	// Mid animation renders without panicking and differs from both ends.
	now := time.Unix(0, 0)
	v.Now = func() time.Time { return now }
	v.ShowRow(0, true)
	mid, err := Snapshot(v, th, SnapshotOptions{At: now.Add(v.Duration / 2)})
	require.NoError(t, err)
	assert.NotEqual(t, top.Pix, mid.Pix)
}

func TestEncode_FormatFromName(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img, "-"))
	_, err := png.Decode(&buf)
	assert.NoError(t, err)

	buf.Reset()
	require.NoError(t, Encode(&buf, img, "bar.jpg"))
	assert.Equal(t, []byte{0xff, 0xd8}, buf.Bytes()[:2])

	assert.Error(t, Encode(&buf, img, "bar.xyz"))
}
