package realtor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testBaseURL = "https://www.realtor.com/realestateandhomes-search"

func TestPageURL(t *testing.T) {
	tests := []struct {
		name    string
		zipcode int
		page    int
		want    string
	}{
		{
			name:    "first page",
			zipcode: 75034,
			page:    1,
			want:    "https://www.realtor.com/realestateandhomes-search/75034/pg-1",
		},
		{
			name:    "later page",
			zipcode: 75034,
			page:    5,
			want:    "https://www.realtor.com/realestateandhomes-search/75034/pg-5",
		},
		{
			name:    "different zip",
			zipcode: 10001,
			page:    2,
			want:    "https://www.realtor.com/realestateandhomes-search/10001/pg-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageURL(testBaseURL, tt.zipcode, tt.page)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageURLEmbedsZipAndPageOnce(t *testing.T) {
	url := PageURL(testBaseURL, 98765, 4)

	assert.Equal(t, 1, strings.Count(url, "98765"))
	assert.Equal(t, 1, strings.Count(url, "pg-4"))
	assert.True(t, strings.HasSuffix(url, "/98765/pg-4"))
}

func TestPageURLDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t,
			PageURL(testBaseURL, 75034, 3),
			PageURL(testBaseURL, 75034, 3),
			fmt.Sprintf("iteration %d", i))
	}
}
