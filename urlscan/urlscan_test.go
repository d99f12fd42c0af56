package urlscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "two urls in order",
			text: "see https://a.com/x and http://b.org",
			want: []string{"https://a.com/x", "http://b.org"},
		},
		{
			name: "no urls",
			text: "no links here",
			want: []string{},
		},
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
		{
			name: "duplicates kept",
			text: "https://a.com https://a.com",
			want: []string{"https://a.com", "https://a.com"},
		},
		{
			name: "www prefix and query",
			text: "link: https://www.example.com/path?q=1&r=2#frag done",
			want: []string{"https://www.example.com/path?q=1&r=2#frag"},
		},
		{
			name: "one per line",
			text: "https://news.example.com/a\nhttps://blog.example.net/b\n",
			want: []string{"https://news.example.com/a", "https://blog.example.net/b"},
		},
		{
			name: "non http scheme ignored",
			text: "ftp://files.example.com/x",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_Idempotent(t *testing.T) {
	text := "a https://x.io/1 b https://y.io/2 c"
	first := Extract(text)
	second := Extract(text)
	assert.Equal(t, first, second)
}
