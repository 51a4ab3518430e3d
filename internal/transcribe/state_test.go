package transcribe

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestHash(t *testing.T) {
	// sha256("")
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Hash(nil))
	assert.Equal(t, Hash([]byte("abc")), Hash([]byte("abc")))
	assert.NotEqual(t, Hash([]byte("abc")), Hash([]byte("abd")))
}

func TestAudioState_Memoization(t *testing.T) {
	var s AudioState
	clip := []byte("RIFF-clip-one")

	assert.False(t, s.HasAudio())
	assert.True(t, s.NeedsRetranscription(clip), "empty state always needs work")

	s.Set(clip, strPtr("hello class"))
	assert.True(t, s.HasAudio())
	assert.False(t, s.NeedsRetranscription(clip))
	assert.False(t, s.NeedsRetranscription([]byte("RIFF-clip-one")), "equal bytes hit the cache")
	assert.True(t, s.NeedsRetranscription([]byte("RIFF-clip-two")))
	assert.Equal(t, clip, s.Audio())
	assert.Equal(t, Hash(clip), s.Hash())
	if assert.NotNil(t, s.Transcript()) {
		assert.Equal(t, "hello class", *s.Transcript())
	}
}

func TestAudioState_NilTranscriptIsCached(t *testing.T) {
	var s AudioState
	clip := []byte("silence")

	s.Set(clip, nil)
	assert.False(t, s.NeedsRetranscription(clip))
	assert.Nil(t, s.Transcript())
}

func TestAudioState_SetTranscript(t *testing.T) {
	var s AudioState

	s.SetTranscript(strPtr("ignored"))
	assert.Nil(t, s.Transcript(), "no clip held")

	s.Set([]byte("clip"), strPtr("raw"))
	s.SetTranscript(strPtr("edited"))
	assert.Equal(t, "edited", *s.Transcript())
	assert.False(t, s.NeedsRetranscription([]byte("clip")))
}

func TestAudioState_Clear(t *testing.T) {
	var s AudioState
	s.Set([]byte("clip"), strPtr("text"))

	s.Clear()
	assert.False(t, s.HasAudio())
	assert.Nil(t, s.Audio())
	assert.Nil(t, s.Transcript())
	assert.Empty(t, s.Hash())
	assert.True(t, s.NeedsRetranscription([]byte("clip")))
}

func TestAudioState_ConcurrentUse(t *testing.T) {
	var s AudioState
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			clip := []byte{byte(i)}
			s.Set(clip, nil)
			_ = s.NeedsRetranscription(clip)
			_ = s.Transcript()
		}(i)
	}
	wg.Wait()
	assert.True(t, s.HasAudio())
}
