package docean_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bluewater-io/docean/v2/pkg/docean"
)

func TestListOptionsToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts *docean.ListOptions
		want string
	}{
		{
			name: "nil options",
			opts: nil,
			want: "",
		},
		{
			name: "empty options",
			opts: docean.NewListOptions(),
			want: "",
		},
		{
			name: "page and per_page",
			opts: docean.NewListOptions().WithPage(2).WithPerPage(50),
			want: "page=2&per_page=50",
		},
		{
			name: "single filter",
			opts: docean.NewListOptions().WithFilter("tag_name", "frontend"),
			want: "tag_name=frontend",
		},
		{
			name: "multi-value filter joins with commas",
			opts: docean.NewListOptions().WithFilter("region", "nyc1", "nyc3"),
			want: "region=nyc1%2Cnyc3",
		},
		{
			name: "repeated WithFilter appends",
			opts: docean.NewListOptions().WithFilter("region", "nyc1").WithFilter("region", "sfo2"),
			want: "region=nyc1%2Csfo2",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.opts.ToValues().Encode())
		})
	}
}

func TestListOptionsClone(t *testing.T) {
	t.Parallel()

	t.Run("nil receiver yields a usable empty copy", func(t *testing.T) {
		t.Parallel()

		var opts *docean.ListOptions

		clone := opts.Clone()
		assert.NotNil(t, clone)
		assert.Equal(t, "type=snapshot", clone.WithFilter("type", "snapshot").ToValues().Encode())
	})

	t.Run("copies are independent", func(t *testing.T) {
		t.Parallel()

		opts := docean.NewListOptions().WithPage(2).WithPerPage(25).WithFilter("region", "nyc1")

		clone := opts.Clone().WithFilter("region", "sfo2").WithFilter("type", "distribution")

		assert.Equal(t, "page=2&per_page=25&region=nyc1", opts.ToValues().Encode())
		assert.Equal(t, "page=2&per_page=25&region=nyc1%2Csfo2&type=distribution", clone.ToValues().Encode())
	})
}

func TestListOptionsToValuesIsDeterministic(t *testing.T) {
	t.Parallel()

	opts := docean.NewListOptions().
		WithPage(3).
		WithPerPage(docean.MaxPerPage).
		WithFilter("type", "distribution").
		WithFilter("private", "true")

	first := opts.ToValues().Encode()

	for i := 0; i < 10; i++ {
		assert.Equal(t, first, opts.ToValues().Encode())
	}
}
