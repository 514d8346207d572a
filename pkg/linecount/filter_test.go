package linecount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterCheck(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		path   string
		rel    string
		want   Reason
	}{
		{name: "plain file kept", filter: NewFilter(nil, false), path: "src/main.go", rel: "main.go", want: Kept},
		{name: "hidden file", filter: NewFilter(nil, false), path: "src/.env", rel: ".env", want: Hidden},
		{name: "hidden allowed", filter: NewFilter(nil, true), path: "src/.env", rel: ".env", want: Kept},
		{name: "hidden ancestor does not hide", filter: NewFilter(nil, false), path: ".cfg/app.yaml", rel: "app.yaml", want: Kept},
		{name: "exact relative exclusion", filter: NewFilter([]string{"vendor"}, false), path: "src/vendor", rel: "vendor", want: Excluded},
		{name: "descendant of relative exclusion", filter: NewFilter([]string{"vendor"}, false), path: "src/vendor/x.go", rel: "vendor/x.go", want: Excluded},
		{name: "sibling with shared prefix", filter: NewFilter([]string{"vendor"}, false), path: "src/vendored", rel: "vendored", want: Kept},
		{name: "full path exclusion", filter: NewFilter([]string{"src/gen"}, false), path: "src/gen/a.go", rel: "gen/a.go", want: Excluded},
		{name: "unclean exclusion", filter: NewFilter([]string{"./src//gen/"}, false), path: "src/gen", rel: "gen", want: Excluded},
		{name: "root slash exclusion", filter: NewFilter([]string{"/"}, false), path: "/etc/hosts", rel: "hosts", want: Excluded},
		{name: "empty exclusions are dropped", filter: NewFilter([]string{"", "  "}, false), path: "src/a", rel: "a", want: Kept},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Check(tt.path, tt.rel))
		})
	}
}

func TestFilterAccessors(t *testing.T) {
	f := NewFilter([]string{"a/", "b"}, true)
	assert.Equal(t, []string{"a", "b"}, f.Exclusions())
	assert.True(t, f.AllowHidden())

	// returned slice is a copy
	f.Exclusions()[0] = "z"
	assert.Equal(t, []string{"a", "b"}, f.Exclusions())
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden(".git"))
	assert.True(t, IsHidden(".secret"))
	assert.False(t, IsHidden("git"))
	assert.False(t, IsHidden("a.b"))
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "skip", PolicySkip.String())
	assert.Equal(t, "strict", PolicyStrict.String())
}
