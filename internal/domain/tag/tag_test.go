package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "career growth", Normalize("Career Growth"))
	assert.Equal(t, "career growth", Normalize("  career growth "))
	assert.Equal(t, "career growth", Normalize("Career\t Growth"))
	assert.Equal(t, "", Normalize("   "))
}

func TestNormalize_Idempotent(t *testing.T) {
	labels := []string{"Career Growth", " career  GROWTH ", "Mindset", "", "Life, Thoughts & Opinions"}
	for _, label := range labels {
		once := Normalize(label)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestDedupe_KeepsFirstSeenCasing(t *testing.T) {
	got := Dedupe([]string{"Career Growth", "career growth ", "Mindset"})
	assert.Equal(t, []string{"Career Growth", "Mindset"}, got)
}

func TestDedupe_DropsEmptyLabels(t *testing.T) {
	got := Dedupe([]string{"", "  ", "Go", "go"})
	assert.Equal(t, []string{"Go"}, got)
}

func TestDedupe_Idempotent(t *testing.T) {
	once := Dedupe([]string{"Freelancing & Business", "freelancing & business", "Mindset"})
	assert.Equal(t, once, Dedupe(once))
}

func TestContains(t *testing.T) {
	tags := []string{"Career Growth", "Mindset"}
	assert.True(t, Contains(tags, "career growth"))
	assert.True(t, Contains(tags, " CAREER  GROWTH "))
	assert.False(t, Contains(tags, "freelancing"))
	assert.False(t, Contains(nil, "anything"))
}
