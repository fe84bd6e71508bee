package ai

import "testing"

func TestStripFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"html fence", "```html\n<div>x</div>\n```", "<div>x</div>"},
		{"json fence", "```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"bare fence", "```\n<p>y</p>\n```", "<p>y</p>"},
		{"no fence", "<section>z</section>", "<section>z</section>"},
		{"surrounding whitespace", "  \n<div>w</div>\n  ", "<div>w</div>"},
		{"fence marker mid-text survives", "<code>```</code> inline", "<code>```</code> inline"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripFences(tc.in); got != tc.want {
				t.Fatalf("StripFences(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
