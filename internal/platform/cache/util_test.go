package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeUntilNextRefresh(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{
			name: "before refresh hour",
			now:  time.Date(2025, 6, 15, 5, 30, 0, 0, kst),
			want: 30 * time.Minute,
		},
		{
			name: "exactly at refresh hour rolls to tomorrow",
			now:  time.Date(2025, 6, 15, 6, 0, 0, 0, kst),
			want: 24 * time.Hour,
		},
		{
			name: "after refresh hour",
			now:  time.Date(2025, 6, 15, 22, 0, 0, 0, kst),
			want: 8 * time.Hour,
		},
		{
			name: "utc input is converted",
			now:  time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC), // 05:00 KST
			want: time.Hour,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, TimeUntilNextRefresh(tt.now))
		})
	}
}

func TestIsOpenMonth(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 10, 12, 0, 0, 0, kst)
	assert.True(t, IsOpenMonth("202501", now))
	assert.True(t, IsOpenMonth("202412", now))
	assert.False(t, IsOpenMonth("202411", now))
	assert.False(t, IsOpenMonth("2025", now))
	assert.False(t, IsOpenMonth("abcdef", now))
}
