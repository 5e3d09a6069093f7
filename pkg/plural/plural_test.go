package plural

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSelectsForm(t *testing.T) {
	cases := []struct {
		count int
		want  string
	}{
		{0, "many"},
		{1, "one"},
		{2, "few"},
		{4, "few"},
		{5, "many"},
		{11, "many"},
		{12, "many"},
		{14, "many"},
		{21, "one"},
		{22, "few"},
		{25, "many"},
		{101, "one"},
		{111, "many"},
		{112, "many"},
		{1001, "one"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Forms{One: "one", Few: "few", Many: "many"}.Select(tc.count), "count %d", tc.count)
	}
}

func TestPresets(t *testing.T) {
	assert.Equal(t, "1 материал", Materials(1))
	assert.Equal(t, "2 материала", Materials(2))
	assert.Equal(t, "5 материалов", Materials(5))
	assert.Equal(t, "11 материалов", Materials(11))
	assert.Equal(t, "21 материал", Materials(21))
	assert.Equal(t, "156 материалов", Materials(156))

	assert.Equal(t, "342 просмотра", Views(342))
	assert.Equal(t, "567 просмотров", Views(567))
	assert.Equal(t, "41 лайк", Likes(41))
	assert.Equal(t, "0 лайков", Likes(0))
}

func TestFormatIsDeterministicAndTotal(t *testing.T) {
	for n := 0; n < 1000; n++ {
		first := Format(n, "a", "b", "c")
		assert.Equal(t, first, Format(n, "a", "b", "c"))
		assert.NotEmpty(t, first)
	}
	assert.Equal(t, "-21 a", Format(-21, "a", "b", "c"))
}
