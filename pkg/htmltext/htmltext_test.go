package htmltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "Empty",
			in:   "",
			want: "",
		},
		{
			name: "PlainText",
			in:   "42 MG Road, Bengaluru",
			want: "42 MG Road, Bengaluru",
		},
		{
			name: "BreakTags",
			in:   "42 MG Road<br>Bengaluru<br>560001",
			want: "42 MG Road\nBengaluru\n560001",
		},
		{
			name: "BlockElements",
			in:   "<div>42 MG Road</div><div>Bengaluru</div>",
			want: "42 MG Road\nBengaluru",
		},
		{
			name: "NestedMarkup",
			in:   "<p><strong>Demo Buyer</strong></p><p>42 MG Road</p>",
			want: "Demo Buyer\n42 MG Road",
		},
		{
			name: "CollapsesBlankLines",
			in:   "<p>one</p><p></p><p></p><p>two</p>",
			want: "one\ntwo",
		},
		{
			name: "DropsScript",
			in:   "<p>safe</p><script>alert(1)</script>",
			want: "safe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.in))
		})
	}
}
