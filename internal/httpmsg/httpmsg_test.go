package httpmsg_test

import (
	"testing"

	"go.followtheprocess.codes/recast/internal/httpmsg"
	"go.followtheprocess.codes/test"
)

func TestBody(t *testing.T) {
	tests := []struct {
		name string // Name of the test case
		raw  string // The raw message
		want string // Expected extracted body
	}{
		{
			name: "crlf separator",
			raw:  "POST /api HTTP/1.1\r\nHost: example.com\r\nContent-Type: application/json\r\n\r\n{\"a\": 1}",
			want: "{\"a\": 1}",
		},
		{
			name: "lf separator",
			raw:  "POST /api HTTP/1.1\nHost: example.com\n\n{\"a\": 1}",
			want: "{\"a\": 1}",
		},
		{
			name: "crlf wins over a later lf",
			raw:  "GET / HTTP/1.1\r\n\r\nfirst\n\nsecond",
			want: "first\n\nsecond",
		},
		{
			name: "no separator means the whole input is the body",
			raw:  "a=1&b=2",
			want: "a=1&b=2",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
		{
			name: "headers with empty body",
			raw:  "GET / HTTP/1.1\r\nHost: example.com\r\n\r\n",
			want: "",
		},
		{
			name: "body keeps its own blank lines",
			raw:  "POST / HTTP/1.1\r\n\r\nline one\n\nline two",
			want: "line one\n\nline two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, httpmsg.Body(tt.raw), tt.want)
		})
	}
}
