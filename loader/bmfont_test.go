package loader

import "image"
import "testing"
import "testing/fstest"

import "github.com/npillmayer/schuko/tracing/gotestingadapter"
import "github.com/stretchr/testify/require"

import "github.com/jens-hj/imgfont"
import "github.com/jens-hj/imgfont/geom"

const twoPageFnt = `info face="pixels" size=8 unicode=1
common lineHeight=10 base=8 scaleW=32 scaleH=16 pages=2 packed=0
page id=0 file="page0.png"
page id=1 file="page1.png"
chars count=3
char id=65 x=0 y=0 width=5 height=8 xoffset=1 yoffset=2 xadvance=6 page=0 chnl=15
char id=66 x=5 y=0 width=5 height=8 xoffset=0 yoffset=0 xadvance=5 page=0 chnl=15
char id=67 x=0 y=0 width=6 height=8 xoffset=0 yoffset=1 xadvance=7 page=1 chnl=15
`

func bmFontFS(t *testing.T) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		"fonts/pixels.fnt": &fstest.MapFile{Data: []byte(twoPageFnt)},
		"fonts/page0.png":  &fstest.MapFile{Data: pagePNG(t, 32, 16)},
		"fonts/page1.png":  &fstest.MapFile{Data: pagePNG(t, 32, 16)},
	}
}

func TestLoadBMFontMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "imgfont", "imgfont.loader")
	defer teardown()

	library := imgfont.NewLibrary()
	handle, err := LoadBMFont(library, bmFontFS(t), "fonts/pixels.fnt")
	require.NoError(t, err)

	font, found := library.Font(handle)
	require.True(t, found)
	require.Equal(t, 2, font.NumPages())
	require.Equal(t, 3, font.NumCharacters())

	entry, supported := font.Lookup('A')
	require.True(t, supported)
	require.Equal(t, 0, entry.Page)
	require.True(t, entry.HasAdvance)
	require.Equal(t, float32(6), entry.Advance)
	// yoffset=2 in the file is y-down; stored offsets are y-up.
	require.Equal(t, geom.XY(1, -2), entry.Offset)

	entry, supported = font.Lookup('C')
	require.True(t, supported)
	require.Equal(t, 1, entry.Page)
	require.Equal(t, float32(7), entry.Advance)
}

func TestLoadBMFontAdvancesDriveLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "imgfont", "imgfont.loader")
	defer teardown()

	library := imgfont.NewLibrary()
	handle, err := LoadBMFont(library, bmFontFS(t), "fonts/pixels.fnt")
	require.NoError(t, err)

	// Glyph widths are 5, 5 and 6, so the composited strip is 16 wide
	// even though the advances sum to 18.
	img, err := imgfont.RenderToImage(library, &imgfont.Text{Content: "ABC", Font: handle})
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 16, 8), img.Bounds())
}

func TestLoadBMFontRejections(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "imgfont", "imgfont.loader")
	defer teardown()

	cases := []struct {
		name     string
		fnt      string
		expected error
	}{
		{
			"non-unicode charset",
			"info face=\"x\" unicode=0\ncommon packed=0\npage id=0 file=\"page0.png\"\nchar id=65 x=0 y=0 width=1 height=1 page=0\n",
			ErrCharsetUnsupported,
		},
		{
			"packed pages",
			"info face=\"x\" unicode=1\ncommon packed=1\npage id=0 file=\"page0.png\"\nchar id=65 x=0 y=0 width=1 height=1 page=0\n",
			ErrPackedUnsupported,
		},
		{
			"no pages",
			"info face=\"x\" unicode=1\ncommon packed=0\nchar id=65 x=0 y=0 width=1 height=1 page=0\n",
			ErrEmptyImagePath,
		},
		{
			"no characters",
			"info face=\"x\" unicode=1\ncommon packed=0\npage id=0 file=\"page0.png\"\n",
			ErrEmptyLayout,
		},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"font.fnt":  &fstest.MapFile{Data: []byte(testCase.fnt)},
				"page0.png": &fstest.MapFile{Data: pagePNG(t, 4, 4)},
			}
			library := imgfont.NewLibrary()
			_, err := LoadBMFont(library, fsys, "font.fnt")
			require.ErrorIs(t, err, testCase.expected)
		})
	}
}

func TestParseBMLineQuotedValues(t *testing.T) {
	tag, fields := parseBMLine(`page id=3 file="sheet.png"`)
	require.Equal(t, "page", tag)
	require.Equal(t, "3", fields["id"])
	require.Equal(t, "sheet.png", fields["file"])

	tag, _ = parseBMLine("")
	require.Equal(t, "", tag)
}
