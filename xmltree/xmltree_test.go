package xmltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndAppendChild(t *testing.T) {
	root := New("info")
	root.AppendChild("name", "EEG")
	root.AppendChild("type", "eeg")

	name := root.Child("name")
	require.NotNil(t, name)
	assert.Equal(t, "EEG", name.Text())
}

func TestParse(t *testing.T) {
	root, err := Parse([]byte(`<info><name>EEG</name><channel_count>8</channel_count></info>`))
	require.NoError(t, err)

	name, err := root.RequireChildText("name")
	require.NoError(t, err)
	assert.Equal(t, "EEG", name)

	cc, err := root.RequireChildText("channel_count")
	require.NoError(t, err)
	assert.Equal(t, "8", cc)
}

func TestParse_InvalidXML(t *testing.T) {
	_, err := Parse([]byte(`<info><name>EEG</info>`))
	require.Error(t, err)
}

func TestParse_NoRoot(t *testing.T) {
	_, err := Parse([]byte(``))
	require.Error(t, err)
}

func TestRequireChildText_Missing(t *testing.T) {
	root := New("info")
	_, err := root.RequireChildText("name")
	require.Error(t, err)
}

func TestRequireChildText_Empty(t *testing.T) {
	root := New("info")
	root.AppendChild("name", "")
	_, err := root.RequireChildText("name")
	require.Error(t, err)
}

func TestSetChildTextOverwrite(t *testing.T) {
	root := New("info")
	root.AppendChild("name", "old")
	root.SetChildTextOverwrite("name", "new")

	got, err := root.RequireChildText("name")
	require.NoError(t, err)
	assert.Equal(t, "new", got)
}

func TestBytesRoundTrip(t *testing.T) {
	root := New("info")
	root.AppendChild("name", "EEG")

	data := root.Bytes()

	parsed, err := Parse(data)
	require.NoError(t, err)

	got, err := parsed.RequireChildText("name")
	require.NoError(t, err)
	assert.Equal(t, "EEG", got)
}

func TestChild_NilSafe(t *testing.T) {
	var e *Element
	assert.Nil(t, e.Child("x"))
	assert.Equal(t, "", e.Text())
}
