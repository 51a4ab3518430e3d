package transcribe

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// Hash returns the hex SHA-256 digest of audio.
func Hash(audio []byte) string {
	sum := sha256.Sum256(audio)
	return hex.EncodeToString(sum[:])
}

// AudioState remembers the last audio clip and its transcript so that an
// unchanged clip is not transcribed twice. The caller owns it, typically one
// per capture session. It is safe for concurrent use.
type AudioState struct {
	mu         sync.Mutex
	audio      []byte
	hash       string
	transcript *string
}

// Set records audio and its transcript, replacing anything held before. A
// nil transcript means the clip has no transcript.
func (s *AudioState) Set(audio []byte, transcript *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audio = audio
	s.hash = Hash(audio)
	s.transcript = transcript
}

// SetTranscript replaces the transcript of the held clip, e.g. after the
// user edited it. It is a no-op when no clip is held.
func (s *AudioState) SetTranscript(transcript *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hash == "" {
		return
	}
	s.transcript = transcript
}

// NeedsRetranscription reports whether audio differs from the held clip.
// It is true when nothing is held.
func (s *AudioState) NeedsRetranscription(audio []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hash != Hash(audio)
}

// Clear forgets the held clip and transcript.
func (s *AudioState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audio = nil
	s.hash = ""
	s.transcript = nil
}

// Audio returns the held clip, or nil.
func (s *AudioState) Audio() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.audio
}

// Transcript returns the held transcript, or nil.
func (s *AudioState) Transcript() *string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript
}

// Hash returns the digest of the held clip, or "".
func (s *AudioState) Hash() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hash
}

// HasAudio reports whether a clip is held.
func (s *AudioState) HasAudio() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hash != ""
}
