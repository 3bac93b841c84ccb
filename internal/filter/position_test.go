package filter

import "testing"

func TestTextPosition(t *testing.T) {
	testCases := []struct {
		name   string
		text   string
		offset int
		want   string
	}{
		{
			name:   "first paragraph",
			text:   "abc\ndef",
			offset: 1,
			want:   "paragraph 1",
		},
		{
			name:   "second paragraph",
			text:   "abc\ndef",
			offset: 5,
			want:   "paragraph 2",
		},
		{
			name:   "offset on boundary counts toward next paragraph",
			text:   "abc\ndef",
			offset: 4,
			want:   "paragraph 2",
		},
		{
			name:   "single paragraph",
			text:   "one two three",
			offset: 8,
			want:   "paragraph 1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := textPosition(tc.text, tc.offset); got != tc.want {
				t.Errorf("textPosition(%q, %d) = %q, want %q", tc.text, tc.offset, got, tc.want)
			}
		})
	}
}
