package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head>
  <title>  Night Market Guide  </title>
  <style>body { color: red; }</style>
  <script>var tracking = "ignore me";</script>
</head>
<body>
  <h1>Best stalls</h1>
  <p>Try the oyster omelette.
     Then the bubble tea.</p>
  <noscript>Enable JavaScript</noscript>
  <!-- a comment -->
  <img src="/img/stall.png">
  <img data-src="lazy.jpg">
  <img alt="no source">
  <audio src="https://cdn.example.com/tour.mp3"></audio>
  <video><source src="clip.ogg"></video>
</body>
</html>`

func TestParse(t *testing.T) {
	p, err := Parse(articleHTML, "https://food.example.com/guides/night-market")
	require.NoError(t, err)

	assert.Equal(t, "Night Market Guide", p.Title)
	assert.Equal(t, "Night Market Guide\nBest stalls\nTry the oyster omelette.\nThen the bubble tea.", p.Text)
	assert.Equal(t, []Resource{
		{URL: "https://food.example.com/img/stall.png", Index: 0},
		{URL: "https://food.example.com/guides/lazy.jpg", Index: 1},
	}, p.Images)
	assert.Equal(t, []Resource{
		{URL: "https://cdn.example.com/tour.mp3", Index: 0},
		{URL: "https://food.example.com/guides/clip.ogg", Index: 1},
	}, p.Audio)
}

func TestParse_ResourceIndexCountsEveryTag(t *testing.T) {
	html := `<body>
<img alt="decorative">
<img src="a.png">
<img src="">
<img data-src="b.jpg">
<audio controls><source src="song.ogg"></audio>
<audio src="talk.mp3"></audio>
</body>`
	p, err := Parse(html, "https://example.com/")
	require.NoError(t, err)

	assert.Equal(t, []Resource{
		{URL: "https://example.com/a.png", Index: 1},
		{URL: "https://example.com/b.jpg", Index: 3},
	}, p.Images)
	assert.Equal(t, []Resource{
		{URL: "https://example.com/song.ogg", Index: 1},
		{URL: "https://example.com/talk.mp3", Index: 2},
	}, p.Audio)
}

func TestParse_NoTitle(t *testing.T) {
	p, err := Parse("<html><body><p>Hello</p></body></html>", "https://example.com/")
	require.NoError(t, err)

	assert.Equal(t, "", p.Title)
	assert.Equal(t, "Hello", p.Text)
	assert.Empty(t, p.Images)
	assert.Empty(t, p.Audio)
}

func TestParse_EmptyDocument(t *testing.T) {
	p, err := Parse("", "https://example.com/")
	require.NoError(t, err)

	assert.Equal(t, "", p.Title)
	assert.Equal(t, "", p.Text)
	assert.NotNil(t, p.Images)
	assert.NotNil(t, p.Audio)
}

func TestParse_InvalidPageURL(t *testing.T) {
	_, err := Parse("<p>x</p>", "://bad")
	assert.Error(t, err)
}
