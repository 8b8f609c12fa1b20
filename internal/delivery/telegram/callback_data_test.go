package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallbackBuilders(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{buildPrayerCallback(2), "prayer:2"},
		{buildVerseCallback(1, 0), "verse:1:0"},
		{buildLearnCallback(1, -3), "learn:1:-3"},
		{buildQuizStartCallback(4), "quiz:start:4"},
		{buildQuizAnswerCallback(3), "quiz:answer:3"},
		{buildQuizNextCallback(), "quiz:next"},
		{buildQuizStopCallback(), "quiz:stop"},
		{buildDailyCallback(), "daily"},
		{buildRemindToggleCallback(), "remind:toggle"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got)
		assert.LessOrEqual(t, len(tt.got), 64, "telegram limits callback data to 64 bytes")
	}
}

func TestDecodeCallback(t *testing.T) {
	cd := decodeCallback("learn:1:-3")
	assert.Equal(t, actionLearn, cd.Action)
	assert.Equal(t, []string{"1", "-3"}, cd.Params)
	assert.Equal(t, "learn:1:-3", cd.Raw)

	n, ok := cd.intParam(1)
	assert.True(t, ok)
	assert.Equal(t, -3, n)

	_, ok = cd.intParam(2)
	assert.False(t, ok)

	cd = decodeCallback("daily")
	assert.Equal(t, actionDaily, cd.Action)
	assert.Empty(t, cd.Params)

	cd = decodeCallback("quiz:answer:x")
	_, ok = cd.intParam(1)
	assert.False(t, ok)
}
