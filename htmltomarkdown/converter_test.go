package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/locwidget"
	"github.com/fwojciec/locwidget/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts widget region", func(t *testing.T) {
		t.Parallel()

		region := `<h2>Visit Us</h2>
<ul class="nav">
	<li class="active"><a id="all-filter_static" href="#">All Locations</a></li>
	<li><a id="frc-filter_static" href="#frc">Federal Records Centers</a></li>
</ul>
<section id="facility-index"></section>`

		md, err := htmltomarkdown.NewConverter().Convert(region)

		require.NoError(t, err)
		assert.Contains(t, md, "## Visit Us")
		assert.Contains(t, md, "[All Locations](#)")
		assert.Contains(t, md, "[Federal Records Centers](#frc)")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table><thead><tr><th>Name</th></tr></thead><tbody><tr><td>Archives II</td></tr></tbody></table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "| Name")
		assert.Contains(t, md, "Archives II")
	})

	t.Run("drops scripts", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>Hello</p><script>var x = 1;</script>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Hello")
		assert.NotContains(t, md, "var x")
	})

	t.Run("placeholder for region without text", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<section id="facility-index"></section>`)

		require.NoError(t, err)
		assert.Equal(t, htmltomarkdown.EmptyPreview, md)
	})

	t.Run("returns EINVALID for blank input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("  \n ")

		require.Error(t, err)
		assert.Equal(t, locwidget.EINVALID, locwidget.ErrorCode(err))
	})
}
